/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-15 14:10:23
 * @LastEditTime: 2026-02-15 14:18:50
 * @LastEditors: 安知鱼
 */
package auth

import "github.com/gin-gonic/gin"

// FromContext 从请求上下文取出会话声明与原始 Token。
// 游客请求返回 (nil, "")。
func FromContext(c *gin.Context) (*SessionClaims, string) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, ""
	}
	claims, ok := v.(*SessionClaims)
	if !ok {
		return nil, ""
	}
	return claims, c.GetString(TokenKey)
}
