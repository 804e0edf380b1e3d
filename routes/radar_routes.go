package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/krishna-dhulipalla/OutreachOps/controllers"
	"github.com/krishna-dhulipalla/OutreachOps/middleware"
)

// RegisterRadarRoutes 注册行业动态相关路由
func RegisterRadarRoutes(router *gin.Engine) {
	radarGroup := router.Group("/api/radar")
	radarGroup.Use(middleware.AuthMiddleware())

	// 新闻搜索代理
	radarGroup.GET("", controllers.GetRadarNews)
}
