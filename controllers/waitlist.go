package controllers

import (
	"context"
	"net/http"

	"github.com/krishna-dhulipalla/OutreachOps/models"
	"github.com/krishna-dhulipalla/OutreachOps/repository"
	"github.com/krishna-dhulipalla/OutreachOps/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetWaitlist 获取待联系公司列表（只返回active状态）
func GetWaitlist(c *gin.Context) {
	ctx := context.Background()

	collection := repository.Collection(repository.WaitlistCollection)
	opts := options.Find().SetSort(bson.D{
		{Key: "priority", Value: 1},
		{Key: "plannedActionDate", Value: 1},
	})

	cursor, err := collection.Find(ctx, bson.M{"status": "active"}, opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var items []models.WaitlistItem
	if err = cursor.All(ctx, &items); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"count": len(items),
	}, "获取待联系列表成功")

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddWaitlistItem 添加待联系公司
func AddWaitlistItem(c *gin.Context) {
	var input models.WaitlistCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	if input.Priority == "" {
		input.Priority = "B"
	}

	newItem := models.WaitlistItem{
		Name:              input.Name,
		Company:           input.Company,
		PlannedActionDate: input.PlannedActionDate,
		Reason:            input.Reason,
		Priority:          input.Priority,
		Status:            "active",
		OutreachChannels:  input.OutreachChannels,
		Links:             input.Links,
	}

	ctx := context.Background()
	collection := repository.Collection(repository.WaitlistCollection)
	result, err := collection.InsertOne(ctx, newItem)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	newItem.ID = result.InsertedID.(primitive.ObjectID)

	utils.LogInfo(map[string]interface{}{
		"itemId":  newItem.ID.Hex(),
		"company": newItem.Company,
	}, "添加待联系公司成功")

	c.JSON(http.StatusCreated, gin.H{
		"message": "添加待联系公司成功",
		"item":    newItem,
	})
}

// ConvertWaitlistItem 将待联系公司标记为已转化
// 转化后条目不再出现在待联系列表中，由调用方另行创建联系人
func ConvertWaitlistItem(c *gin.Context) {
	id := c.Param("id")
	itemObjId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的条目ID"))
		return
	}

	ctx := context.Background()
	collection := repository.Collection(repository.WaitlistCollection)

	result, err := collection.UpdateOne(ctx, bson.M{"_id": itemObjId}, bson.M{
		"$set": bson.M{"status": "converted"},
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "待联系条目不存在"})
		return
	}

	utils.LogInfo(map[string]interface{}{
		"itemId": id,
	}, "待联系公司已转化")

	utils.SuccessResponse(c, nil, "待联系公司已转化")
}
