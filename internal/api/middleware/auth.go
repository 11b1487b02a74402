package middleware

import (
	"Vidstream/internal/pkg/consts"
	"Vidstream/internal/pkg/redis"
	"Vidstream/internal/pkg/response"
	"Vidstream/internal/pkg/security"
	"Vidstream/internal/repository"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthMiddleware 强制鉴权：验证 JWT、检查拉黑名单并确认用户仍然存在
func AuthMiddleware(userRepo repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, ok := resolveToken(c, tokenString, userRepo)
		if !ok {
			c.Abort()
			return
		}

		c.Set("user_id", userID.Hex())
		newCtx := context.WithValue(c.Request.Context(), "user_id", userID.Hex())
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

// resolveToken 校验 token 并确认对应用户存在，失败时已写好响应
func resolveToken(c *gin.Context, tokenString string, userRepo repository.UserRepo) (primitive.ObjectID, bool) {
	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
		return primitive.NilObjectID, false
	}

	value, err := redis.GetValue(c.Request.Context(), consts.TokenDenyKey+signature)
	if err != nil {
		response.Fail(c, response.InternalServerError, "未知错误")
		return primitive.NilObjectID, false
	}
	if value != "" {
		response.Fail(c, response.Unauthorized, "Token 无效或已过期")
		return primitive.NilObjectID, false
	}

	claims, err := security.ValidateToken(tokenString)
	if err != nil {
		response.Fail(c, response.Unauthorized, "Token 无效或已过期")
		return primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		response.Fail(c, response.Unauthorized, "Token 无效或已过期")
		return primitive.NilObjectID, false
	}

	user, err := userRepo.GetUserById(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, response.InternalServerError, "未知错误")
		return primitive.NilObjectID, false
	}
	if user == nil {
		response.Fail(c, response.Unauthorized, "Token 无效或已过期")
		return primitive.NilObjectID, false
	}
	return userID, true
}
