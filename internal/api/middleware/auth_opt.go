package middleware

import (
	"Vidstream/internal/pkg/response"
	"Vidstream/internal/repository"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：未携带 token 按匿名放行，
// 携带了无效 token 仍然拒绝，避免凭证被静默降级成匿名
func AuthOptionalMiddleware(userRepo repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
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
