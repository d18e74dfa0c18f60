package security

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token 格式不正确")

// InspectToken 不校验签名地解析 Bearer 凭据，仅用于展示与过期提醒
func InspectToken(tokenString string) (*TokenClaims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if strings.Count(tokenString, ".") != 2 {
		return nil, ErrNotJWT
	}

	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token 解析失败: %w", err)
	}
	return claims, nil
}
