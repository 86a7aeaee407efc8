package routes

import (
	"github.com/LuckyLyon/lifeos/config"
	"github.com/LuckyLyon/lifeos/controllers"
	"github.com/LuckyLyon/lifeos/middleware"
	"github.com/LuckyLyon/lifeos/services"
	"github.com/LuckyLyon/lifeos/store"

	"github.com/gin-gonic/gin"
)

// Deps 路由装配所需的服务集合
type Deps struct {
	Store    store.Store
	Resolver *services.EnergyResolver
	Planner  *services.Planner
	Tracker  *services.HistoryTracker
	Exporter *services.CalendarExporter
	Overlay  *services.OverlayService
	Suggest  *services.SuggestService
	Conf     config.Config
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	authController := controllers.NewAuthController(deps.Conf.AccessKey)
	planController := controllers.NewPlanController(deps.Store, deps.Planner, deps.Resolver, deps.Tracker)
	goalController := controllers.NewGoalController(deps.Store, deps.Tracker, deps.Suggest)
	calendarController := controllers.NewCalendarController(deps.Exporter, deps.Overlay)
	profileController := controllers.NewProfileController(deps.Store)
	onboardingController := controllers.NewOnboardingController(deps.Store, deps.Planner, deps.Resolver)

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", authController.Login)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		// 引导与画像
		private.POST("/onboarding", onboardingController.Complete)
		private.GET("/profile", profileController.GetProfile)
		private.PUT("/profile", profileController.UpdateProfile)

		// 签到与每日计划
		private.POST("/checkin", planController.Checkin)
		private.GET("/checkin/needed", planController.CheckinStatus)
		private.GET("/plan/:date", planController.GetDayPlan)
		private.PUT("/plan/:date", planController.SavePlan)
		private.POST("/plan/:date/generate", planController.GeneratePlan)

		// 目标管理
		private.GET("/goals", goalController.ListGoals)
		private.POST("/goals", goalController.CreateGoal)
		private.DELETE("/goals/:id", goalController.DeleteGoal)
		private.GET("/goals/:id/heatmap", goalController.GoalHeatmap)
		private.POST("/goals/suggest", goalController.SuggestGoal)

		// 日历
		private.GET("/calendar/overlay", calendarController.MonthOverlay)
		private.GET("/calendar/export", calendarController.ExportICS)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
