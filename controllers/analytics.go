package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/krishna-dhulipalla/OutreachOps/models"
	"github.com/krishna-dhulipalla/OutreachOps/repository"
	"github.com/krishna-dhulipalla/OutreachOps/service"
	"github.com/krishna-dhulipalla/OutreachOps/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetWeeklyAnalytics 周报统计
// week_start参数缺失或非法时回退到包含今天的那一周
func GetWeeklyAnalytics(c *gin.Context) {
	window := service.ComputeWeekWindow(c.Query("week_start"), time.Now())

	ctx := context.Background()
	collection := repository.Collection(repository.TouchpointsCollection)

	// 半开区间[startUTC, endUTC)
	cursor, err := collection.Find(ctx, bson.M{
		"date": bson.M{
			"$gte": window.StartUTC,
			"$lt":  window.EndUTC,
		},
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var touchpoints []models.Touchpoint
	if err = cursor.All(ctx, &touchpoints); err != nil {
		utils.HandleError(c, err)
		return
	}

	resp := service.BuildWeeklyAnalytics(window, touchpoints)

	utils.LogInfo(map[string]interface{}{
		"weekStart":       resp.WeekStart,
		"touchpointCount": len(touchpoints),
	}, "生成周报统计成功")

	c.JSON(http.StatusOK, resp)
}
