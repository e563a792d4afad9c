/*
 * @Description: 帖子处理器（信息流、详情、发帖、编辑、点赞）
 * @Author: 安知鱼
 * @Date: 2026-02-15 17:12:08
 * @LastEditTime: 2026-03-08 21:40:56
 * @LastEditors: 安知鱼
 */
package post

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	pkgauth "github.com/anzhiyu-c/qingyu-board/internal/pkg/auth"
	"github.com/anzhiyu-c/qingyu-board/internal/pkg/uri"
	"github.com/anzhiyu-c/qingyu-board/internal/pkg/validate"
	"github.com/anzhiyu-c/qingyu-board/pkg/constant"
	"github.com/anzhiyu-c/qingyu-board/pkg/response"
	"github.com/anzhiyu-c/qingyu-board/pkg/service/comment"
	"github.com/anzhiyu-c/qingyu-board/pkg/service/identity"
	service_post "github.com/anzhiyu-c/qingyu-board/pkg/service/post"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	postSvc    *service_post.Service
	commentSvc *comment.Service
}

func NewHandler(postSvc *service_post.Service, commentSvc *comment.Service) *Handler {
	return &Handler{postSvc: postSvc, commentSvc: commentSvc}
}

// Feed 返回首页信息流 GET /api/feed
func (h *Handler) Feed(c *gin.Context) {
	posts, err := h.postSvc.Feed(c.Request.Context())
	if err != nil {
		response.FailDomain(c, err)
		return
	}
	response.Success(c, posts, "获取成功")
}

// Detail 返回帖子详情 GET /api/posts/:id：
// 帖子本体（浏览数已加一）、当前用户点赞状态、整棵评论树。
func (h *Handler) Detail(c *gin.Context) {
	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		response.FailWithError(c, http.StatusBadRequest, "invalid", "帖子ID不合法")
		return
	}

	userID := ""
	if claims, _ := pkgauth.FromContext(c); claims != nil {
		userID = claims.UserID()
	}

	detail, err := h.postSvc.Detail(c.Request.Context(), id, userID)
	if err != nil {
		response.FailDomain(c, err)
		return
	}
	thread, err := h.commentSvc.ListThread(c.Request.Context(), id)
	if err != nil {
		response.FailDomain(c, err)
		return
	}

	response.Success(c, gin.H{
		"post":     detail.Post,
		"liked":    detail.Liked,
		"comments": thread,
	}, "获取成功")
}

// Create 处理发帖表单 POST /posts
func (h *Handler) Create(c *gin.Context) {
	claims, token := pkgauth.FromContext(c)
	if claims == nil {
		c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape("/write"))
		return
	}

	name := identity.ResolveDisplayName(claims.Metadata, claims.Email)
	err := h.postSvc.Create(c.Request.Context(), token, claims.UserID(), name,
		c.PostForm("title"), c.PostForm("content"))
	if err != nil {
		var ue *constant.UserError
		if errors.As(err, &ue) {
			c.Redirect(http.StatusSeeOther, "/write?error="+url.QueryEscape(ue.Message))
			return
		}
		c.Redirect(http.StatusSeeOther, "/write?error="+url.QueryEscape("发布失败，请稍后再试"))
		return
	}

	c.Redirect(http.StatusSeeOther, uri.WithQueryFlag("/", "posted"))
}

// Update 处理编辑帖子表单 POST /posts/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	postPath := fmt.Sprintf("/posts/%d", id)

	claims, token := pkgauth.FromContext(c)
	if claims == nil {
		c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(postPath+"/edit"))
		return
	}

	name := identity.ResolveDisplayName(claims.Metadata, claims.Email)
	err := h.postSvc.Update(c.Request.Context(), token, claims.UserID(), name, id,
		c.PostForm("title"), c.PostForm("content"))
	if err != nil {
		switch {
		case errors.Is(err, constant.ErrNotFound):
			c.Redirect(http.StatusSeeOther, "/")
		case errors.Is(err, constant.ErrForbidden):
			// 不是作者，送回帖子的公开页面
			c.Redirect(http.StatusSeeOther, postPath)
		case errors.Is(err, constant.ErrValidation):
			var ue *constant.UserError
			message := "保存失败，请稍后再试"
			if errors.As(err, &ue) {
				message = ue.Message
			}
			c.Redirect(http.StatusSeeOther, postPath+"/edit?error="+url.QueryEscape(message))
		default:
			c.Redirect(http.StatusSeeOther, postPath+"/edit?error="+url.QueryEscape("保存失败，请稍后再试"))
		}
		return
	}

	c.Redirect(http.StatusSeeOther, uri.WithQueryFlag(postPath, "edited"))
}

// ToggleLike 切换点赞 POST /api/posts/:id/like。
// 前端先乐观翻转，再以这里返回的权威状态校正。
func (h *Handler) ToggleLike(c *gin.Context) {
	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		response.FailWithError(c, http.StatusBadRequest, "invalid", "帖子ID不合法")
		return
	}

	_, token := pkgauth.FromContext(c)
	result, err := h.postSvc.ToggleLike(c.Request.Context(), token, id)
	if err != nil {
		response.FailDomain(c, err)
		return
	}
	response.Success(c, result, "操作成功")
}
