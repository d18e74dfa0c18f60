package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims 客户端可读取的凭据字段，签名由服务端校验
type TokenClaims struct {
	Fresh bool   `json:"fresh"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// Expired exp 缺失视为未过期
func (c *TokenClaims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}
