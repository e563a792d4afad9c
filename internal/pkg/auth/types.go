/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 10:12:08
 * @LastEditTime: 2026-02-11 10:20:31
 * @LastEditors: 安知鱼
 */
package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsKey 是用于在 gin.Context 中存储和检索会话信息的键。
const ClaimsKey = "session_claims"

// TokenKey 是用于在 gin.Context 中存储原始会话 Token 的键。
// 写操作需要把它原样转发给平台，由平台执行行级授权。
const TokenKey = "session_token"

// SessionClaims 定义了平台签发的会话 Token 中我们关心的声明。
// UserID 是平台身份服务分配的 UUID，Metadata 里可能带有用户自定义昵称。
type SessionClaims struct {
	Email    string                 `json:"email"`
	Metadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// UserID 返回会话所属用户的身份ID（即 sub 声明）
func (c *SessionClaims) UserID() string {
	return c.Subject
}

// DisplayName 返回元数据中的昵称；不存在或类型不对时返回空串
func (c *SessionClaims) DisplayName() string {
	if c.Metadata == nil {
		return ""
	}
	if name, ok := c.Metadata["displayName"].(string); ok {
		return name
	}
	return ""
}
