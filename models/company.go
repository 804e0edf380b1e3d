package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company 公司模型
type Company struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	SponsorStatus string             `bson:"sponsorStatus" json:"sponsorStatus"` // 'yes' | 'no' | 'unknown'
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// CompanySummary 公司列表汇总信息
type CompanySummary struct {
	ID               string `json:"_id"`
	Name             string `json:"name"`
	SponsorStatus    string `json:"sponsorStatus"`
	Notes            string `json:"notes,omitempty"`
	ContactCount     int    `json:"contactCount"`
	LastTouchDate    string `json:"lastTouchDate,omitempty"`
	NextFollowUpDate string `json:"nextFollowUpDate,omitempty"`
}
