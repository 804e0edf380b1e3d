package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/krishna-dhulipalla/OutreachOps/controllers"
	"github.com/krishna-dhulipalla/OutreachOps/middleware"
)

// RegisterCompanyRoutes 注册公司相关路由
func RegisterCompanyRoutes(router *gin.Engine) {
	companyGroup := router.Group("/api/companies")
	companyGroup.Use(middleware.AuthMiddleware())

	// 获取公司列表汇总
	companyGroup.GET("", controllers.GetCompanyList)
}
