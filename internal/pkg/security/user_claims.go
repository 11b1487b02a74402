package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret         = "vidstream-dev-secret"
	jwtExpirationTime = time.Hour * 24
)

// Init 用配置覆盖签名密钥与过期时间，令牌有效期默认 1 天
func Init(secret string, expireHours int) {
	if secret != "" {
		jwtSecret = secret
	}
	if expireHours > 0 {
		jwtExpirationTime = time.Duration(expireHours) * time.Hour
	}
}

// UserClaims 定义了 Token 中需要包含的业务信息
type UserClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
