/*
 * @Description: 个人页处理器（资料更新、我的帖子、我的工单）
 * @Author: 安知鱼
 * @Date: 2026-02-15 16:05:12
 * @LastEditTime: 2026-03-08 20:10:33
 * @LastEditors: 安知鱼
 */
package user

import (
	"errors"
	"net/http"
	"net/url"

	pkgauth "github.com/anzhiyu-c/qingyu-board/internal/pkg/auth"
	"github.com/anzhiyu-c/qingyu-board/internal/pkg/uri"
	"github.com/anzhiyu-c/qingyu-board/pkg/response"
	service_auth "github.com/anzhiyu-c/qingyu-board/pkg/service/auth"
	"github.com/anzhiyu-c/qingyu-board/pkg/service/identity"
	"github.com/anzhiyu-c/qingyu-board/pkg/service/post"
	"github.com/anzhiyu-c/qingyu-board/pkg/service/support"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authSvc    *service_auth.Service
	postSvc    *post.Service
	supportSvc *support.Service
}

func NewHandler(authSvc *service_auth.Service, postSvc *post.Service, supportSvc *support.Service) *Handler {
	return &Handler{authSvc: authSvc, postSvc: postSvc, supportSvc: supportSvc}
}

// Profile 是个人页里展示的当前用户信息
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Initial     string `json:"initial"`
}

// MyPage 返回个人页数据 GET /api/mypage：
// 当前用户信息、自己发布的帖子、自己提交的工单（含运营回复）。
func (h *Handler) MyPage(c *gin.Context) {
	claims, _ := pkgauth.FromContext(c)
	if claims == nil {
		response.FailWithError(c, http.StatusUnauthorized, "unauthenticated", "请先登录")
		return
	}

	name := identity.ResolveDisplayName(claims.Metadata, claims.Email)
	profile := &Profile{
		ID:          claims.UserID(),
		Email:       claims.Email,
		DisplayName: name,
		Initial:     identity.InitialOf(name),
	}

	posts, err := h.postSvc.ListMine(c.Request.Context(), claims.UserID())
	if err != nil {
		response.FailDomain(c, err)
		return
	}
	requests, err := h.supportSvc.ListMine(c.Request.Context(), claims.UserID())
	if err != nil {
		response.FailDomain(c, err)
		return
	}

	response.Success(c, gin.H{
		"profile":  profile,
		"posts":    posts,
		"requests": requests,
	}, "获取成功")
}

// UpdateProfile 处理昵称更新表单 POST /mypage/profile。
// 新昵称只影响之后的发帖和评论，历史内容保留写入时的快照。
func (h *Handler) UpdateProfile(c *gin.Context) {
	claims, token := pkgauth.FromContext(c)
	if claims == nil {
		c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape("/mypage"))
		return
	}

	err := h.authSvc.UpdateDisplayName(c.Request.Context(), token, c.PostForm("displayName"))
	if err != nil {
		var fe *service_auth.FlowError
		if errors.As(err, &fe) {
			c.Redirect(http.StatusSeeOther, "/mypage?error="+url.QueryEscape(fe.Message))
			return
		}
		c.Redirect(http.StatusSeeOther, "/mypage?error="+url.QueryEscape("昵称更新失败，请稍后再试"))
		return
	}

	c.Redirect(http.StatusSeeOther, uri.WithQueryFlag("/", "updated"))
}
