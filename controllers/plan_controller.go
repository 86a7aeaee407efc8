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

type PlanController struct {
	store    store.Store
	planner  *services.Planner
	resolver *services.EnergyResolver
	tracker  *services.HistoryTracker
}

func NewPlanController(s store.Store, planner *services.Planner, resolver *services.EnergyResolver, tracker *services.HistoryTracker) *PlanController {
	return &PlanController{store: s, planner: planner, resolver: resolver, tracker: tracker}
}

// dateParam 取并校验 :date 路径参数
func dateParam(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if _, err := utils.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期格式，应为 YYYY-MM-DD"})
		return "", false
	}
	return date, true
}

// GetDayPlan 读取某日计划（按时间排序）与当日生效模式
func (pc *PlanController) GetDayPlan(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, pc.planner.DayPlan(date))
}

// SavePlan 保存时间轴编辑器提交的任务列表
func (pc *PlanController) SavePlan(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	var req models.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.planner.SavePlan(date, req.Tasks); err != nil {
		config.Logger.Errorw("保存计划失败", "date", date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存计划失败"})
		return
	}
	c.JSON(http.StatusOK, pc.planner.DayPlan(date))
}

// GeneratePlan 针对指定日期重新生成计划。
// 与签到不同：不写打卡历史，也不触碰最近签到日期。
func (pc *PlanController) GeneratePlan(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	// 请求体可省略，省略时由解析器决定模式
	var req models.GeneratePlanRequest
	_ = c.ShouldBindJSON(&req)

	mode := req.Mode
	if mode == "" {
		mode = pc.resolver.ResolveMode(date)
	}
	if !mode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的能量模式"})
		return
	}

	tasks, err := pc.planner.ApplyPlan(date, mode, false)
	if err != nil {
		config.Logger.Errorw("生成计划失败", "date", date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成计划失败"})
		return
	}
	c.JSON(http.StatusOK, models.DayPlanResponse{Date: date, Mode: mode, Tasks: tasks})
}

// Checkin 每日签到：记录打卡历史，按所选模式生成并合并当日计划，
// 并把最近签到日期推到今天
func (pc *PlanController) Checkin(c *gin.Context) {
	var req models.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := req.Date
	if target == "" {
		target = utils.TodayString()
	} else if _, err := utils.ParseDate(target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期格式，应为 YYYY-MM-DD"})
		return
	}

	goals := store.LoadGoals(pc.store)
	if len(goals) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "还没有目标，请先添加目标"})
		return
	}

	// 为空表示给全部目标打卡
	targetIDs := req.GoalIDs
	if len(targetIDs) == 0 {
		for _, g := range goals {
			targetIDs = append(targetIDs, g.ID)
		}
	}

	record := models.HistoryRecord{
		Date:       target,
		EnergyMode: req.Mode,
		Rating:     req.Rating,
		Review:     req.Review,
	}
	for _, id := range targetIDs {
		if _, err := pc.tracker.RecordCheckIn(id, record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	tasks, err := pc.planner.ApplyPlan(target, req.Mode, true)
	if err != nil {
		config.Logger.Errorw("签到合并失败", "date", target, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "签到失败"})
		return
	}

	c.JSON(http.StatusOK, models.DayPlanResponse{Date: target, Mode: req.Mode, Tasks: tasks})
}

// CheckinStatus 今天是否还需要提示签到。
// 没有任何目标时同样提示（此时应先走引导）。
func (pc *PlanController) CheckinStatus(c *gin.Context) {
	today := utils.TodayString()
	last, _ := store.LoadLastCheckin(pc.store)
	goals := store.LoadGoals(pc.store)

	c.JSON(http.StatusOK, models.CheckinStatusResponse{
		Needed:      last != today || len(goals) == 0,
		LastCheckin: last,
	})
}
