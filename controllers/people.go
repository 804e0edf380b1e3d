package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/krishna-dhulipalla/OutreachOps/models"
	"github.com/krishna-dhulipalla/OutreachOps/repository"
	"github.com/krishna-dhulipalla/OutreachOps/service"
	"github.com/krishna-dhulipalla/OutreachOps/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findOrCreateCompany 按名称查找公司，不存在则创建
func findOrCreateCompany(ctx context.Context, name string) (*models.Company, error) {
	name = strings.TrimSpace(name)
	collection := repository.Collection(repository.CompaniesCollection)

	var company models.Company
	err := collection.FindOne(ctx, bson.M{"name": name}).Decode(&company)
	if err == nil {
		return &company, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	company = models.Company{
		Name:          name,
		SponsorStatus: "unknown",
	}
	result, err := collection.InsertOne(ctx, company)
	if err != nil {
		return nil, err
	}
	company.ID = result.InsertedID.(primitive.ObjectID)
	return &company, nil
}

// CreatePerson 创建联系人（公司不存在时自动创建）
func CreatePerson(c *gin.Context) {
	var input models.PersonCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	ctx := context.Background()

	company, err := findOrCreateCompany(ctx, input.CompanyName)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	// 填充默认值
	if input.Relationship == "" {
		input.Relationship = "cold"
	}
	if input.SponsorConfidence == "" {
		input.SponsorConfidence = "unknown"
	}
	if input.Status == "" {
		input.Status = models.PersonStatusOpen
	}

	newPerson := models.Person{
		CompanyId:         company.ID.Hex(),
		Name:              input.Name,
		LinkedinUrl:       input.LinkedinUrl,
		Relationship:      input.Relationship,
		WhyReachedOut:     input.WhyReachedOut,
		SponsorConfidence: input.SponsorConfidence,
		Status:            input.Status,
		Title:             input.Title,
		OutreachChannels:  input.OutreachChannels,
		Links:             input.Links,
		CreatedAt:         time.Now(),
	}

	collection := repository.Collection(repository.PeopleCollection)
	result, err := collection.InsertOne(ctx, newPerson)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	newPerson.ID = result.InsertedID.(primitive.ObjectID)

	utils.LogInfo(map[string]interface{}{
		"personId":  newPerson.ID.Hex(),
		"companyId": newPerson.CompanyId,
	}, "创建联系人成功")

	c.JSON(http.StatusCreated, gin.H{
		"message": "创建联系人成功",
		"person":  newPerson,
	})
}

// GetPeopleList 获取联系人列表（附带公司、触点和跟进任务）
func GetPeopleList(c *gin.Context) {
	ctx := context.Background()

	peopleCollection := repository.Collection(repository.PeopleCollection)
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := peopleCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var people []models.Person
	if err = cursor.All(ctx, &people); err != nil {
		utils.HandleError(c, err)
		return
	}

	details := make([]models.PersonDetail, 0, len(people))
	for _, person := range people {
		detail, err := assemblePersonDetail(ctx, person)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		details = append(details, *detail)
	}

	utils.LogInfo(map[string]interface{}{
		"count": len(details),
	}, "获取联系人列表成功")

	c.JSON(http.StatusOK, gin.H{"people": details})
}

// GetPersonDetail 获取单个联系人详情
func GetPersonDetail(c *gin.Context) {
	id := c.Param("id")
	personObjId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的联系人ID"))
		return
	}

	ctx := context.Background()

	var person models.Person
	peopleCollection := repository.Collection(repository.PeopleCollection)
	err = peopleCollection.FindOne(ctx, bson.M{"_id": personObjId}).Decode(&person)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "联系人不存在"})
			return
		}
		utils.HandleError(c, err)
		return
	}

	detail, err := assemblePersonDetail(ctx, person)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// assemblePersonDetail 组装联系人详情：公司 + 触点（按时间倒序） + 跟进任务
func assemblePersonDetail(ctx context.Context, person models.Person) (*models.PersonDetail, error) {
	detail := models.PersonDetail{
		Person:      person,
		Touchpoints: []models.Touchpoint{},
		FollowUps:   []models.FollowUp{},
	}

	// 公司可能已被删除，查不到不算错误
	if companyObjId, err := primitive.ObjectIDFromHex(person.CompanyId); err == nil {
		var company models.Company
		companiesCollection := repository.Collection(repository.CompaniesCollection)
		if err := companiesCollection.FindOne(ctx, bson.M{"_id": companyObjId}).Decode(&company); err == nil {
			detail.Company = &company
		} else if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}

	personId := person.ID.Hex()

	touchpointsCollection := repository.Collection(repository.TouchpointsCollection)
	tpOpts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := touchpointsCollection.Find(ctx, bson.M{"personId": personId}, tpOpts)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &detail.Touchpoints); err != nil {
		return nil, err
	}

	followUpsCollection := repository.Collection(repository.FollowUpsCollection)
	fuOpts := options.Find().SetSort(bson.M{"dueDate": 1})
	cursor, err = followUpsCollection.Find(ctx, bson.M{"personId": personId}, fuOpts)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &detail.FollowUps); err != nil {
		return nil, err
	}

	return &detail, nil
}

// AddTouchpoint 为联系人添加触点
// 当提供nextStepDate且触点结果不是关闭类时，自动创建一条跟进任务
func AddTouchpoint(c *gin.Context) {
	id := c.Param("id")
	personObjId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的联系人ID"))
		return
	}

	var input models.TouchpointCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	ctx := context.Background()

	// 验证联系人是否存在
	var person models.Person
	peopleCollection := repository.Collection(repository.PeopleCollection)
	err = peopleCollection.FindOne(ctx, bson.M{"_id": personObjId}).Decode(&person)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "联系人不存在"})
			return
		}
		utils.HandleError(c, err)
		return
	}

	// 写入前归一化方向，缺失时按结果推断
	newTouchpoint := models.Touchpoint{
		PersonId:       id,
		Date:           input.Date,
		Channel:        input.Channel,
		Outcome:        input.Outcome,
		Direction:      service.InferDirection(input.Direction, input.Outcome),
		MessagePreview: input.MessagePreview,
		NextStepAction: input.NextStepAction,
	}

	touchpointsCollection := repository.Collection(repository.TouchpointsCollection)
	result, err := touchpointsCollection.InsertOne(ctx, newTouchpoint)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	newTouchpoint.ID = result.InsertedID.(primitive.ObjectID)

	// 自动生成跟进任务
	var followUp *models.FollowUp
	if input.NextStepDate != "" && !service.OutcomeIsClosed(input.Outcome) {
		dueDate, err := time.ParseInLocation("2006-01-02", input.NextStepDate, time.UTC)
		if err != nil {
			utils.HandleError(c, utils.CreateBadRequestError("无效的nextStepDate格式，应为YYYY-MM-DD"))
			return
		}

		action := input.NextStepAction
		if action == "" {
			action = "Follow up"
		}

		newFollowUp := models.FollowUp{
			PersonId: id,
			DueDate:  dueDate,
			Action:   action,
			Status:   models.FollowUpStatusOpen,
		}

		followUpsCollection := repository.Collection(repository.FollowUpsCollection)
		fuResult, err := followUpsCollection.InsertOne(ctx, newFollowUp)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		newFollowUp.ID = fuResult.InsertedID.(primitive.ObjectID)
		followUp = &newFollowUp
	}

	utils.LogInfo(map[string]interface{}{
		"touchpointId": newTouchpoint.ID.Hex(),
		"personId":     id,
		"hasFollowUp":  followUp != nil,
	}, "添加触点成功")

	c.JSON(http.StatusCreated, gin.H{
		"message":    "添加触点成功",
		"touchpoint": newTouchpoint,
		"followUp":   followUp,
	})
}
