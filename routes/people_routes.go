package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/krishna-dhulipalla/OutreachOps/controllers"
	"github.com/krishna-dhulipalla/OutreachOps/middleware"
)

// RegisterPeopleRoutes 注册联系人相关路由
func RegisterPeopleRoutes(router *gin.Engine) {
	peopleGroup := router.Group("/api/people")
	peopleGroup.Use(middleware.AuthMiddleware())

	// 获取联系人列表
	peopleGroup.GET("", controllers.GetPeopleList)

	// 创建联系人
	peopleGroup.POST("", controllers.CreatePerson)

	// 获取联系人详情
	peopleGroup.GET("/:id", controllers.GetPersonDetail)

	// 为联系人添加触点
	peopleGroup.POST("/:id/touchpoints", controllers.AddTouchpoint)
}
