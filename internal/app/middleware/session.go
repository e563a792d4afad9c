/*
 * @Description: 会话中间件（Cookie 中的平台 Token 本地校验）
 * @Author: 安知鱼
 * @Date: 2026-02-15 10:30:18
 * @LastEditTime: 2026-03-07 16:22:40
 * @LastEditors: 安知鱼
 */
package middleware

import (
	"log"

	"github.com/anzhiyu-c/qingyu-board/internal/pkg/auth"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	cookieName string
	jwtSecret  []byte
}

func NewMiddleware(cookieName string, jwtSecret []byte) *Middleware {
	return &Middleware{cookieName: cookieName, jwtSecret: jwtSecret}
}

// Session 是可选的会话识别中间件。
// 所有路由都挂它：没有会话 Cookie 或 Token 无效时按游客放行，
// 由各个处理器自己决定未登录时是重定向登录页还是返回401。
func (m *Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(m.cookieName)
		if err != nil || tokenStr == "" {
			c.Next()
			return
		}

		claims, err := auth.ParseAccessToken(tokenStr, m.jwtSecret)
		if err != nil {
			// 过期或被篡改的 Cookie 直接清掉，当作游客继续
			log.Printf("[会话] Token校验失败，按游客处理: %v", err)
			c.SetCookie(m.cookieName, "", -1, "/", "", false, true)
			c.Next()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Set(auth.TokenKey, tokenStr)
		c.Next()
	}
}
