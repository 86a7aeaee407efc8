package controllers

import (
	"net/http"
	"strconv"

	"github.com/LuckyLyon/lifeos/config"
	"github.com/LuckyLyon/lifeos/models"
	"github.com/LuckyLyon/lifeos/services"
	"github.com/LuckyLyon/lifeos/store"
	"github.com/LuckyLyon/lifeos/utils"
	"github.com/gin-gonic/gin"
)

type GoalController struct {
	store   store.Store
	tracker *services.HistoryTracker
	suggest *services.SuggestService
}

func NewGoalController(s store.Store, tracker *services.HistoryTracker, suggest *services.SuggestService) *GoalController {
	return &GoalController{store: s, tracker: tracker, suggest: suggest}
}

// ListGoals 返回全部目标（含打卡历史）
func (gc *GoalController) ListGoals(c *gin.Context) {
	goals := store.LoadGoals(gc.store)
	if goals == nil {
		goals = []models.Goal{}
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// CreateGoal 新建目标。里程碑来自建议接口的返回值，由请求显式带入
func (gc *GoalController) CreateGoal(c *gin.Context) {
	var req models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal := models.Goal{
		ID:            utils.GenerateID(),
		Title:         req.Title,
		HighPlan:      req.HighPlan,
		LowPlan:       req.LowPlan,
		PreferredTime: req.PreferredTime,
		Milestones:    req.Milestones,
		Streak:        0,
		History:       []models.HistoryRecord{},
	}

	goals := append(store.LoadGoals(gc.store), goal)
	if err := store.SaveGoals(gc.store, goals); err != nil {
		config.Logger.Errorw("保存目标失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存目标失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal 删除目标，历史随目标一并删除，不级联其他数据
func (gc *GoalController) DeleteGoal(c *gin.Context) {
	id := c.Param("id")

	goals := store.LoadGoals(gc.store)
	kept := goals[:0]
	for _, g := range goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(goals) {
		c.JSON(http.StatusNotFound, gin.H{"error": "目标不存在"})
		return
	}

	if err := store.SaveGoals(gc.store, kept); err != nil {
		config.Logger.Errorw("删除目标失败", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除目标失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "目标已删除"})
}

// GoalHeatmap 最近N天（默认14）的打卡热力图
func (gc *GoalController) GoalHeatmap(c *gin.Context) {
	id := c.Param("id")

	days := services.HeatmapWindow
	if q := c.Query("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的天数"})
			return
		}
		days = n
	}

	entries, err := gc.tracker.Heatmap(id, days)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"heatmap": entries})
}

// SuggestGoal 目标建议：返回双态方案与里程碑，调用方确认后再随创建请求提交
func (gc *GoalController) SuggestGoal(c *gin.Context) {
	var req models.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gc.suggest.Suggest(c.Request.Context(), req.Prompt))
}
