package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowUp 跟进任务
type FollowUp struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PersonId string             `bson:"personId" json:"personId"`
	DueDate  time.Time          `bson:"dueDate" json:"dueDate"`
	Action   string             `bson:"action" json:"action"`
	Status   string             `bson:"status" json:"status"` // 'open' | 'done' | 'snoozed' | 'closed'
	Reason   string             `bson:"reason,omitempty" json:"reason,omitempty"`
}

// FollowUpTask 今日看板中的跟进任务（带联系人和公司上下文）
type FollowUpTask struct {
	FollowUp    `bson:",inline"`
	PersonName  string `json:"personName"`
	CompanyName string `json:"companyName"`
}

// TodayBoardResponse 今日看板响应
type TodayBoardResponse struct {
	Overdue  []FollowUpTask `json:"overdue"`
	DueToday []FollowUpTask `json:"due_today"`
	Upcoming []FollowUpTask `json:"upcoming"`
}
