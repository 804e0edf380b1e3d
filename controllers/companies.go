package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/krishna-dhulipalla/OutreachOps/models"
	"github.com/krishna-dhulipalla/OutreachOps/repository"
	"github.com/krishna-dhulipalla/OutreachOps/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetCompanyList 获取公司列表汇总
// 只返回有联系人的公司，附带联系人数、最近触点日期和下一个未完成跟进日期
func GetCompanyList(c *gin.Context) {
	ctx := context.Background()

	companiesCollection := repository.Collection(repository.CompaniesCollection)
	cursor, err := companiesCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	if err = cursor.All(ctx, &companies); err != nil {
		utils.HandleError(c, err)
		return
	}

	summaries := make([]models.CompanySummary, 0, len(companies))
	for _, company := range companies {
		summary, err := buildCompanySummary(ctx, company)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		if summary == nil {
			continue
		}
		summaries = append(summaries, *summary)
	}

	utils.LogInfo(map[string]interface{}{
		"count": len(summaries),
	}, "获取公司列表成功")

	c.JSON(http.StatusOK, gin.H{"companies": summaries})
}

// buildCompanySummary 汇总单个公司信息，没有联系人时返回nil
func buildCompanySummary(ctx context.Context, company models.Company) (*models.CompanySummary, error) {
	peopleCollection := repository.Collection(repository.PeopleCollection)
	cursor, err := peopleCollection.Find(ctx, bson.M{"companyId": company.ID.Hex()})
	if err != nil {
		return nil, err
	}

	var people []models.Person
	if err = cursor.All(ctx, &people); err != nil {
		return nil, err
	}
	if len(people) == 0 {
		return nil, nil
	}

	personIds := make([]string, 0, len(people))
	for _, person := range people {
		personIds = append(personIds, person.ID.Hex())
	}

	// 最近一次触点
	var lastTouch time.Time
	touchpointsCollection := repository.Collection(repository.TouchpointsCollection)
	cursor, err = touchpointsCollection.Find(ctx, bson.M{"personId": bson.M{"$in": personIds}})
	if err != nil {
		return nil, err
	}
	var touchpoints []models.Touchpoint
	if err = cursor.All(ctx, &touchpoints); err != nil {
		return nil, err
	}
	for _, tp := range touchpoints {
		if tp.Date.After(lastTouch) {
			lastTouch = tp.Date
		}
	}

	// 最早的未完成跟进
	var nextFollowUp time.Time
	followUpsCollection := repository.Collection(repository.FollowUpsCollection)
	cursor, err = followUpsCollection.Find(ctx, bson.M{
		"personId": bson.M{"$in": personIds},
		"status":   models.FollowUpStatusOpen,
	})
	if err != nil {
		return nil, err
	}
	var followUps []models.FollowUp
	if err = cursor.All(ctx, &followUps); err != nil {
		return nil, err
	}
	for _, fu := range followUps {
		if nextFollowUp.IsZero() || fu.DueDate.Before(nextFollowUp) {
			nextFollowUp = fu.DueDate
		}
	}

	summary := models.CompanySummary{
		ID:            company.ID.Hex(),
		Name:          company.Name,
		SponsorStatus: company.SponsorStatus,
		Notes:         company.Notes,
		ContactCount:  len(people),
	}
	if !lastTouch.IsZero() {
		summary.LastTouchDate = lastTouch.Format("2006-01-02")
	}
	if !nextFollowUp.IsZero() {
		summary.NextFollowUpDate = nextFollowUp.Format("2006-01-02")
	}

	return &summary, nil
}
