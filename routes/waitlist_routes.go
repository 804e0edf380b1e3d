package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/krishna-dhulipalla/OutreachOps/controllers"
	"github.com/krishna-dhulipalla/OutreachOps/middleware"
)

// RegisterWaitlistRoutes 注册待联系公司相关路由
func RegisterWaitlistRoutes(router *gin.Engine) {
	waitlistGroup := router.Group("/api/waitlist")
	waitlistGroup.Use(middleware.AuthMiddleware())

	// 获取待联系列表
	waitlistGroup.GET("", controllers.GetWaitlist)

	// 添加待联系公司
	waitlistGroup.POST("", controllers.AddWaitlistItem)

	// 标记为已转化
	waitlistGroup.POST("/:id/convert", controllers.ConvertWaitlistItem)
}
