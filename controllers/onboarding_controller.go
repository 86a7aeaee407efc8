package controllers

import (
	"net/http"

	"github.com/LuckyLyon/lifeos/config"
	"github.com/LuckyLyon/lifeos/models"
	"github.com/LuckyLyon/lifeos/services"
	"github.com/LuckyLyon/lifeos/store"
	"github.com/LuckyLyon/lifeos/utils"
	"github.com/gin-gonic/gin"
)

type OnboardingController struct {
	store    store.Store
	planner  *services.Planner
	resolver *services.EnergyResolver
}

func NewOnboardingController(s store.Store, planner *services.Planner, resolver *services.EnergyResolver) *OnboardingController {
	return &OnboardingController{store: s, planner: planner, resolver: resolver}
}

// Complete 引导完成：保存能量画像与首个目标，并按画像预判今天的模式、
// 生成第一份当日计划
func (oc *OnboardingController) Complete(c *gin.Context) {
	var req models.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store.SaveWeekProfile(oc.store, req.WeekProfile); err != nil {
		config.Logger.Errorw("保存能量画像失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存能量画像失败"})
		return
	}

	goal := models.Goal{
		ID:            utils.GenerateID(),
		Title:         req.Goal.Title,
		HighPlan:      req.Goal.HighPlan,
		LowPlan:       req.Goal.LowPlan,
		PreferredTime: req.Goal.PreferredTime,
		Milestones:    req.Goal.Milestones,
		History:       []models.HistoryRecord{},
	}
	goals := append(store.LoadGoals(oc.store), goal)
	if err := store.SaveGoals(oc.store, goals); err != nil {
		config.Logger.Errorw("保存目标失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存目标失败"})
		return
	}

	// 今天还没有落定状态，解析器会命中刚写入的画像
	today := utils.TodayString()
	mode := oc.resolver.ResolveMode(today)

	tasks, err := oc.planner.ApplyPlan(today, mode, true)
	if err != nil {
		config.Logger.Errorw("生成首日计划失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成首日计划失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"goal": goal,
		"plan": models.DayPlanResponse{Date: today, Mode: mode, Tasks: tasks},
	})
}
