package app

import (
	"skill_tracker_backend/internal/config"
	"skill_tracker_backend/internal/middleware"
	"skill_tracker_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		// 账户
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.GET("/user/summary", c.user.GetSummary)

		// 技能目录
		authGroup.GET("/skills", c.skill.List)
		authGroup.POST("/skills", c.skill.Create)
		authGroup.GET("/skills/:id", c.skill.Get)
		authGroup.PUT("/skills/:id", c.skill.Update)
		authGroup.DELETE("/skills/:id", c.skill.Delete)
		authGroup.GET("/skills/:id/stats", c.skill.GetStats)

		// 练习记录
		authGroup.GET("/progress", c.progress.List)
		authGroup.POST("/progress", c.progress.Create)
		authGroup.GET("/progress/:id", c.progress.Get)
		authGroup.DELETE("/progress/:id", c.progress.Delete)

		// 学习目标
		authGroup.GET("/goals", c.goal.List)
		authGroup.POST("/goals", c.goal.Create)
		authGroup.GET("/goals/:id", c.goal.Get)
		authGroup.PUT("/goals/:id", c.goal.Update)
		authGroup.DELETE("/goals/:id", c.goal.Delete)
		authGroup.POST("/goals/:id/toggle", c.goal.Toggle)

		// 学习资源
		authGroup.GET("/resources", c.resource.List)
		authGroup.POST("/resources", c.resource.Create)
		authGroup.GET("/resources/:id", c.resource.Get)
		authGroup.PUT("/resources/:id", c.resource.Update)
		authGroup.DELETE("/resources/:id", c.resource.Delete)
		authGroup.POST("/resources/:id/toggle", c.resource.Toggle)

		// 仪表盘和图表
		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
		authGroup.GET("/dashboard/charts", c.dashboard.GetChartData)

		// 通知
		authGroup.GET("/notifications", c.notification.List)
		authGroup.POST("/notifications/:id/read", c.notification.MarkRead)
		authGroup.POST("/notifications/read-all", c.notification.MarkAllRead)

		// 成就
		authGroup.GET("/achievements", c.achievement.List)
	}
}
