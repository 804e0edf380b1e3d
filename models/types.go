package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole 用户角色枚举
type UserRole string

const (
	// UserRoleOPERATOR 运营者（单用户系统，只有一个账号）
	UserRoleOPERATOR UserRole = "OPERATOR"
)

// PersonStatus 联系人生命周期状态
const (
	PersonStatusOpen    = "open"
	PersonStatusWaiting = "waiting"
	PersonStatusClosed  = "closed"
)

// FollowUpStatus 跟进任务状态
const (
	FollowUpStatusOpen    = "open"
	FollowUpStatusDone    = "done"
	FollowUpStatusSnoozed = "snoozed"
	FollowUpStatusClosed  = "closed"
)

// Direction 触点方向的规范值
const (
	DirectionOutbound = "outbound"
	DirectionInbound  = "inbound"
	DirectionOther    = "other"
)

// User 用户类型
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"-"` // 不返回密码
	Role      UserRole           `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// 认证相关请求和响应结构
type (
	// LoginRequest 登录请求
	LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	// LoginResponse 登录响应
	LoginResponse struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
)
