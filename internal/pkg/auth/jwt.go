/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 10:22:40
 * @LastEditTime: 2026-03-01 21:08:17
 * @LastEditors: 安知鱼
 */
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ParseAccessToken 本地校验平台签发的会话 Token（HS256）。
// 校验通过后返回声明；签名、有效期或 sub 格式有任何问题都返回错误。
func ParseAccessToken(tokenStr string, secretKey []byte) (*SessionClaims, error) {
	if len(secretKey) == 0 {
		return nil, fmt.Errorf("JWT Secret 不能为空")
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("解析token失败: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("无效或过期Token")
	}

	// 平台的用户身份ID必须是合法的UUID
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("会话中的用户ID不合法: %w", err)
	}

	return claims, nil
}
