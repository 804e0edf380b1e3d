package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/krishna-dhulipalla/OutreachOps/controllers"
	"github.com/krishna-dhulipalla/OutreachOps/middleware"
)

// RegisterDashboardRoutes 注册今日看板相关路由
func RegisterDashboardRoutes(router *gin.Engine) {
	dashboardGroup := router.Group("/api/dashboard")
	dashboardGroup.Use(middleware.AuthMiddleware())

	// 今日看板
	dashboardGroup.GET("/today", controllers.GetTodayBoard)

	// 跟进任务操作
	dashboardGroup.POST("/tasks/:id/done", controllers.MarkTaskDone)
	dashboardGroup.POST("/tasks/:id/snooze", controllers.SnoozeTask)
	dashboardGroup.POST("/tasks/:id/close", controllers.CloseTask)
}
