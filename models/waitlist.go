package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WaitlistItem 待联系公司（还未建立联系人）
type WaitlistItem struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name              string             `bson:"name,omitempty" json:"name,omitempty"`
	Company           string             `bson:"company" json:"company"`
	PlannedActionDate string             `bson:"plannedActionDate,omitempty" json:"plannedActionDate,omitempty"` // YYYY-MM-DD
	Reason            string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Priority          string             `bson:"priority" json:"priority"` // 'A' | 'B' | 'C'
	Status            string             `bson:"status" json:"status"`     // 'active' | 'converted'
	OutreachChannels  []string           `bson:"outreachChannels,omitempty" json:"outreachChannels,omitempty"`
	Links             []string           `bson:"links,omitempty" json:"links,omitempty"`
}

// WaitlistCreateRequest 添加待联系公司请求
type WaitlistCreateRequest struct {
	Company           string   `json:"company" binding:"required"`
	Name              string   `json:"name"`
	Priority          string   `json:"priority"`
	Reason            string   `json:"reason"`
	PlannedActionDate string   `json:"plannedActionDate"`
	OutreachChannels  []string `json:"outreachChannels"`
	Links             []string `json:"links"`
}
