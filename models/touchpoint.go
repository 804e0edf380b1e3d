package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Touchpoint 触点（一次外联事件）
// 历史数据的outcome/direction是自由文本，比较时必须经过service.NormalizeToken归一化
type Touchpoint struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PersonId       string             `bson:"personId" json:"personId"`
	Date           time.Time          `bson:"date" json:"date"`
	Channel        string             `bson:"channel" json:"channel"` // 'LinkedIn DM'、'email'、'InMail'等
	Outcome        string             `bson:"outcome,omitempty" json:"outcome,omitempty"`
	Direction      string             `bson:"direction,omitempty" json:"direction,omitempty"` // 'outbound' | 'inbound' | 'other'，可能缺失需推断
	MessagePreview string             `bson:"messagePreview,omitempty" json:"messagePreview,omitempty"`
	NextStepAction string             `bson:"nextStepAction,omitempty" json:"nextStepAction,omitempty"`
}

// TouchpointCreateRequest 创建触点请求
type TouchpointCreateRequest struct {
	Date           time.Time `json:"date" binding:"required"`
	Channel        string    `json:"channel" binding:"required"`
	Outcome        string    `json:"outcome"`
	Direction      string    `json:"direction"`
	MessagePreview string    `json:"messagePreview"`
	NextStepAction string    `json:"nextStepAction"`
	NextStepDate   string    `json:"nextStepDate"` // YYYY-MM-DD，提供时自动生成跟进任务
}
