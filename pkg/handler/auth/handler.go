/*
 * @Description: 认证处理器（注册、登录、登出）
 * @Author: 安知鱼
 * @Date: 2026-02-15 15:20:40
 * @LastEditTime: 2026-03-08 19:32:15
 * @LastEditors: 安知鱼
 */
package auth

import (
	"errors"
	"net/http"
	"net/url"

	pkgauth "github.com/anzhiyu-c/qingyu-board/internal/pkg/auth"
	"github.com/anzhiyu-c/qingyu-board/internal/pkg/uri"
	service_auth "github.com/anzhiyu-c/qingyu-board/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

// Handler 处理认证相关的表单提交。
// 表单提交统一用 303 重定向收尾，提示信息通过一次性查询标记传递。
type Handler struct {
	svc        *service_auth.Service
	cookieName string
	secure     bool
}

func NewHandler(svc *service_auth.Service, cookieName string, secure bool) *Handler {
	return &Handler{svc: svc, cookieName: cookieName, secure: secure}
}

// setSessionCookie 把平台会话 Token 写入 HttpOnly Cookie
func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(h.cookieName, token, maxAge, "/", "", h.secure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secure, true)
}

// redirectWithError 带错误提示跳回表单页
func redirectWithError(c *gin.Context, formPath, message string) {
	c.Redirect(http.StatusSeeOther, formPath+"?error="+url.QueryEscape(message))
}

// SignUp 处理注册表单 POST /signup
func (h *Handler) SignUp(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	displayName := c.PostForm("displayName")
	next := uri.SafeNextPath(c.PostForm("next"))

	outcome, err := h.svc.SignUp(c.Request.Context(), email, password, displayName)
	if err != nil {
		var fe *service_auth.FlowError
		if errors.As(err, &fe) {
			redirectWithError(c, "/signup", fe.Message)
			return
		}
		redirectWithError(c, "/signup", "注册失败，请稍后再试")
		return
	}

	// 平台未开启自动确认时拿不到会话，引导用户去收确认邮件
	if outcome.ConfirmationSent {
		c.Redirect(http.StatusSeeOther, "/login?check_email=1")
		return
	}

	h.setSessionCookie(c, outcome.Session.AccessToken, outcome.Session.ExpiresIn)
	if next == "/" {
		next = uri.WithQueryFlag("/", "welcome")
	}
	c.Redirect(http.StatusSeeOther, next)
}

// SignIn 处理登录表单 POST /login
func (h *Handler) SignIn(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	next := uri.SafeNextPath(c.PostForm("next"))

	session, err := h.svc.SignIn(c.Request.Context(), email, password)
	if err != nil {
		var fe *service_auth.FlowError
		if errors.As(err, &fe) {
			redirectWithError(c, "/login", fe.Message)
			return
		}
		redirectWithError(c, "/login", "登录失败，请稍后再试")
		return
	}

	h.setSessionCookie(c, session.AccessToken, session.ExpiresIn)
	if next == "/" {
		next = uri.WithQueryFlag("/", "login")
	}
	c.Redirect(http.StatusSeeOther, next)
}

// SignOut 处理登出 POST /logout。
// 平台侧注销尽力而为，本地 Cookie 无条件清除，登出永远成功。
func (h *Handler) SignOut(c *gin.Context) {
	_, token := pkgauth.FromContext(c)
	h.svc.SignOut(c.Request.Context(), token)

	h.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, uri.WithQueryFlag("/", "logout"))
}
