package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krishna-dhulipalla/OutreachOps/models"
)

func TestHashPassword(t *testing.T) {
	hash := HashPassword("admin123")

	// sha256十六进制，长度固定64
	assert.Len(t, hash, 64)
	assert.NotEqual(t, "admin123", hash)

	// 同样输入产生同样哈希
	assert.Equal(t, hash, HashPassword("admin123"))
}

func TestVerifyPassword(t *testing.T) {
	hash := HashPassword("admin123")

	assert.True(t, VerifyPassword("admin123", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestGenerateAndParseToken(t *testing.T) {
	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: "admin",
		Role:     models.UserRoleOPERATOR,
	}

	token, err := GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims["id"])
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, string(models.UserRoleOPERATOR), claims["role"])
}

func TestParseTokenInvalid(t *testing.T) {
	_, err := ParseToken("not-a-valid-token")
	assert.Error(t, err)
}
