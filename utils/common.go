package utils

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// LoginUser 当前登录用户信息
type LoginUser struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Username string `json:"name"`
}

// GetUser 从请求上下文中取出登录用户
func GetUser(c *gin.Context) (*LoginUser, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("GetUser 未授权访问")
	}

	claims, ok := currentUser.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("无效的用户信息格式")
	}

	id, ok := claims["id"].(string)
	if !ok {
		return nil, fmt.Errorf("无效的用户ID")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("无效的用户角色")
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, fmt.Errorf("无效的用户名")
	}

	return &LoginUser{
		ID:       id,
		Role:     role,
		Username: username,
	}, nil
}
