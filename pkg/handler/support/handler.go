/*
 * @Description: 工单与站点留言处理器
 * @Author: 安知鱼
 * @Date: 2026-02-15 18:30:27
 * @LastEditTime: 2026-03-06 10:12:48
 * @LastEditors: 安知鱼
 */
package support

import (
	"errors"
	"net/http"
	"net/url"

	pkgauth "github.com/anzhiyu-c/qingyu-board/internal/pkg/auth"
	"github.com/anzhiyu-c/qingyu-board/internal/pkg/uri"
	"github.com/anzhiyu-c/qingyu-board/pkg/constant"
	"github.com/anzhiyu-c/qingyu-board/pkg/service/identity"
	service_support "github.com/anzhiyu-c/qingyu-board/pkg/service/support"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service_support.Service
}

func NewHandler(svc *service_support.Service) *Handler {
	return &Handler{svc: svc}
}

// CreateRequest 处理工单提交表单 POST /support
func (h *Handler) CreateRequest(c *gin.Context) {
	claims, token := pkgauth.FromContext(c)
	if claims == nil {
		c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape("/support"))
		return
	}

	name := identity.ResolveDisplayName(claims.Metadata, claims.Email)
	err := h.svc.SubmitRequest(c.Request.Context(), token, claims.UserID(), name,
		c.PostForm("title"), c.PostForm("content"))
	if err != nil {
		var ue *constant.UserError
		if errors.As(err, &ue) {
			c.Redirect(http.StatusSeeOther, "/support?error="+url.QueryEscape(ue.Message))
			return
		}
		c.Redirect(http.StatusSeeOther, "/support?error="+url.QueryEscape("提交失败，请稍后再试"))
		return
	}

	// 提交成功后去个人页看工单进度
	c.Redirect(http.StatusSeeOther, uri.WithQueryFlag("/mypage", "request"))
}

// CreateInquiry 处理匿名站点留言表单 POST /inquiry，无需登录。
// 留言表单可以嵌在任意页面，提交后跳回表单声明的页面，
// 结果通过 inquiry / inquiry_error 一次性标记传递。
func (h *Handler) CreateInquiry(c *gin.Context) {
	next := uri.SafeNextPath(c.PostForm("next"))

	err := h.svc.SubmitInquiry(c.Request.Context(), c.PostForm("email"), c.PostForm("message"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, uri.WithQueryFlag(next, "inquiry_error"))
		return
	}

	c.Redirect(http.StatusSeeOther, uri.WithQueryFlag(next, "inquiry"))
}
