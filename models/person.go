package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Person 联系人模型
type Person struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyId         string             `bson:"companyId" json:"companyId"`
	Name              string             `bson:"name" json:"name"`
	LinkedinUrl       string             `bson:"linkedinUrl,omitempty" json:"linkedinUrl,omitempty"`
	Relationship      string             `bson:"relationship" json:"relationship"` // 'cold' | 'warm' | 'alumni' | 'recruiter' | 'referral'
	WhyReachedOut     string             `bson:"whyReachedOut" json:"whyReachedOut"`
	SponsorConfidence string             `bson:"sponsorConfidence" json:"sponsorConfidence"` // 'yes' | 'no' | 'unknown'
	Status            string             `bson:"status" json:"status"`                       // 'open' | 'waiting' | 'closed'
	Title             string             `bson:"title,omitempty" json:"title,omitempty"`
	OutreachChannels  []string           `bson:"outreachChannels,omitempty" json:"outreachChannels,omitempty"`
	Links             []string           `bson:"links,omitempty" json:"links,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

// PersonCreateRequest 创建联系人请求
type PersonCreateRequest struct {
	CompanyName       string   `json:"companyName" binding:"required"`
	Name              string   `json:"name" binding:"required"`
	LinkedinUrl       string   `json:"linkedinUrl"`
	Relationship      string   `json:"relationship"`
	WhyReachedOut     string   `json:"whyReachedOut" binding:"required"`
	SponsorConfidence string   `json:"sponsorConfidence"`
	Status            string   `json:"status"`
	Title             string   `json:"title"`
	OutreachChannels  []string `json:"outreachChannels"`
	Links             []string `json:"links"`
}

// PersonDetail 联系人详情（带公司、触点和跟进任务）
type PersonDetail struct {
	Person      `bson:",inline"`
	Company     *Company     `json:"company,omitempty"`
	Touchpoints []Touchpoint `json:"touchpoints"`
	FollowUps   []FollowUp   `json:"followUps"`
}
