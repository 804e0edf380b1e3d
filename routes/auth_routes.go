package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/krishna-dhulipalla/OutreachOps/controllers"
	"github.com/krishna-dhulipalla/OutreachOps/middleware"
)

// RegisterAuthRoutes 注册认证相关路由
func RegisterAuthRoutes(router *gin.Engine) {
	authGroup := router.Group("/api/auth")

	// 登录
	authGroup.POST("/login", controllers.Login)

	// 验证token
	authGroup.GET("/validate", middleware.AuthMiddleware(), controllers.ValidateToken)
}
