package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/krishna-dhulipalla/OutreachOps/controllers"
	"github.com/krishna-dhulipalla/OutreachOps/middleware"
)

// RegisterAnalyticsRoutes 注册统计分析相关路由
func RegisterAnalyticsRoutes(router *gin.Engine) {
	analyticsGroup := router.Group("/api/analytics")
	analyticsGroup.Use(middleware.AuthMiddleware())

	// 周报统计
	analyticsGroup.GET("/weekly", controllers.GetWeeklyAnalytics)
}
