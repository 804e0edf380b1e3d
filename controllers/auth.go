package controllers

import (
	"net/http"

	"github.com/krishna-dhulipalla/OutreachOps/models"
	"github.com/krishna-dhulipalla/OutreachOps/repository"
	"github.com/krishna-dhulipalla/OutreachOps/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Login 运营者登录
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	utils.Logger.Info().
		Str("username", req.Username).
		Msg("登录尝试")

	// 查询用户
	collection := repository.Collection(repository.UsersCollection)
	var user models.User
	err := collection.FindOne(repository.GetContext(), bson.M{"username": req.Username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.Logger.Info().Str("username", req.Username).Msg("登录失败: 用户名不存在")
			utils.ErrorResponse(c, "用户名或密码错误", http.StatusUnauthorized)
			return
		}
		utils.Logger.Error().Err(err).Msg("查询用户出错")
		utils.ErrorResponse(c, "登录失败: 数据库错误", http.StatusInternalServerError)
		return
	}

	// 验证密码
	if !utils.VerifyPassword(req.Password, user.Password) {
		utils.Logger.Info().Str("username", req.Username).Msg("登录失败: 密码错误")
		utils.ErrorResponse(c, "用户名或密码错误", http.StatusUnauthorized)
		return
	}

	// 生成JWT令牌
	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("生成token失败")
		utils.ErrorResponse(c, "生成登录令牌失败，请重试", http.StatusInternalServerError)
		return
	}

	// 不返回密码
	user.Password = ""

	utils.Logger.Info().Str("username", user.Username).Msg("登录成功")
	utils.SuccessResponse(c, gin.H{
		"token": token,
		"user":  user,
	}, "")
}

// ValidateToken 验证当前Token是否有效
func ValidateToken(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if user.ID == "" || user.Username == "" || user.Role == "" {
		utils.ErrorResponse(c, "无效的token: 用户信息不完整", http.StatusUnauthorized)
		return
	}

	utils.SuccessResponse(c, gin.H{"user": gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	}}, "")
}
