package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/krishna-dhulipalla/OutreachOps/models"
	"github.com/krishna-dhulipalla/OutreachOps/repository"
	"github.com/krishna-dhulipalla/OutreachOps/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const upcomingTaskLimit = 10

// GetTodayBoard 今日看板：逾期、今日到期和即将到期的跟进任务
func GetTodayBoard(c *gin.Context) {
	ctx := context.Background()

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.Add(24 * time.Hour)

	collection := repository.Collection(repository.FollowUpsCollection)

	overdue, err := findOpenTasks(ctx, collection, bson.M{"dueDate": bson.M{"$lt": today}}, 0)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	dueToday, err := findOpenTasks(ctx, collection, bson.M{"dueDate": bson.M{"$gte": today, "$lt": tomorrow}}, 0)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	upcoming, err := findOpenTasks(ctx, collection, bson.M{"dueDate": bson.M{"$gte": tomorrow}}, upcomingTaskLimit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	resp := models.TodayBoardResponse{
		Overdue:  overdue,
		DueToday: dueToday,
		Upcoming: upcoming,
	}

	utils.LogInfo(map[string]interface{}{
		"overdue":  len(overdue),
		"dueToday": len(dueToday),
		"upcoming": len(upcoming),
	}, "获取今日看板成功")

	c.JSON(http.StatusOK, resp)
}

// findOpenTasks 查询未完成的跟进任务并附带联系人/公司名称
func findOpenTasks(ctx context.Context, collection *mongo.Collection, filter bson.M, limit int64) ([]models.FollowUpTask, error) {
	filter["status"] = models.FollowUpStatusOpen

	opts := options.Find().SetSort(bson.M{"dueDate": 1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var followUps []models.FollowUp
	if err = cursor.All(ctx, &followUps); err != nil {
		return nil, err
	}

	tasks := make([]models.FollowUpTask, 0, len(followUps))
	for _, fu := range followUps {
		task := models.FollowUpTask{FollowUp: fu}

		personName, companyName, err := lookupTaskContext(ctx, fu.PersonId)
		if err != nil {
			return nil, err
		}
		task.PersonName = personName
		task.CompanyName = companyName

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// lookupTaskContext 查找跟进任务所属的联系人和公司名称
func lookupTaskContext(ctx context.Context, personId string) (string, string, error) {
	personObjId, err := primitive.ObjectIDFromHex(personId)
	if err != nil {
		return "", "", nil
	}

	var person models.Person
	peopleCollection := repository.Collection(repository.PeopleCollection)
	err = peopleCollection.FindOne(ctx, bson.M{"_id": personObjId}).Decode(&person)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", "", nil
		}
		return "", "", err
	}

	companyName := ""
	if companyObjId, err := primitive.ObjectIDFromHex(person.CompanyId); err == nil {
		var company models.Company
		companiesCollection := repository.Collection(repository.CompaniesCollection)
		if err := companiesCollection.FindOne(ctx, bson.M{"_id": companyObjId}).Decode(&company); err == nil {
			companyName = company.Name
		} else if err != mongo.ErrNoDocuments {
			return "", "", err
		}
	}

	return person.Name, companyName, nil
}

// MarkTaskDone 将跟进任务标记为已完成
func MarkTaskDone(c *gin.Context) {
	updateTaskStatus(c, bson.M{"status": models.FollowUpStatusDone}, "跟进任务已完成")
}

// SnoozeTask 推迟跟进任务，默认推迟2天
func SnoozeTask(c *gin.Context) {
	id := c.Param("id")
	taskObjId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的任务ID"))
		return
	}

	days := 2
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.HandleError(c, utils.CreateBadRequestError("无效的days参数"))
			return
		}
		days = parsed
	}

	ctx := context.Background()
	collection := repository.Collection(repository.FollowUpsCollection)

	var followUp models.FollowUp
	err = collection.FindOne(ctx, bson.M{"_id": taskObjId}).Decode(&followUp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "跟进任务不存在"})
			return
		}
		utils.HandleError(c, err)
		return
	}

	newDueDate := followUp.DueDate.AddDate(0, 0, days)
	_, err = collection.UpdateOne(ctx, bson.M{"_id": taskObjId}, bson.M{"$set": bson.M{
		"dueDate": newDueDate,
		"status":  models.FollowUpStatusOpen,
	}})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"taskId":     id,
		"days":       days,
		"newDueDate": newDueDate.Format("2006-01-02"),
	}, "跟进任务已推迟")

	utils.SuccessResponse(c, gin.H{"dueDate": newDueDate}, "跟进任务已推迟")
}

// CloseTask 关闭跟进任务并记录原因
func CloseTask(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	// 请求体可为空
	_ = c.ShouldBindJSON(&input)

	update := bson.M{"status": models.FollowUpStatusClosed}
	if input.Reason != "" {
		update["reason"] = input.Reason
	}

	updateTaskStatus(c, update, "跟进任务已关闭")
}

// updateTaskStatus 更新跟进任务字段的通用处理
func updateTaskStatus(c *gin.Context, fields bson.M, message string) {
	id := c.Param("id")
	taskObjId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的任务ID"))
		return
	}

	ctx := context.Background()
	collection := repository.Collection(repository.FollowUpsCollection)

	result, err := collection.UpdateOne(ctx, bson.M{"_id": taskObjId}, bson.M{"$set": fields})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "跟进任务不存在"})
		return
	}

	utils.LogInfo(map[string]interface{}{
		"taskId": id,
	}, message)

	utils.SuccessResponse(c, nil, message)
}
