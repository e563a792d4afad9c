/*
 * @Description: 评论处理器（发表、编辑）
 * @Author: 安知鱼
 * @Date: 2026-02-15 18:04:55
 * @LastEditTime: 2026-03-08 22:50:31
 * @LastEditors: 安知鱼
 */
package comment

import (
	"net/http"

	pkgauth "github.com/anzhiyu-c/qingyu-board/internal/pkg/auth"
	"github.com/anzhiyu-c/qingyu-board/internal/pkg/validate"
	"github.com/anzhiyu-c/qingyu-board/pkg/response"
	service_comment "github.com/anzhiyu-c/qingyu-board/pkg/service/comment"
	"github.com/anzhiyu-c/qingyu-board/pkg/service/identity"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service_comment.Service
}

func NewHandler(svc *service_comment.Service) *Handler {
	return &Handler{svc: svc}
}

// Create 发表评论或回复 POST /api/posts/:id/comments。
// 表单字段 parentId 为空表示根评论。
// 失败时返回机器可读错误码（unauthenticated / invalid / depth / failed），
// 前端据此就地提示，不做整页跳转。
func (h *Handler) Create(c *gin.Context) {
	postID, ok := validate.ParseID(c.Param("id"))
	if !ok {
		response.FailWithError(c, http.StatusBadRequest, "invalid", "帖子ID不合法")
		return
	}

	var parentID *int64
	if raw := c.PostForm("parentId"); raw != "" {
		id, ok := validate.ParseID(raw)
		if !ok {
			response.FailWithError(c, http.StatusBadRequest, "invalid", "父评论ID不合法")
			return
		}
		parentID = &id
	}

	claims, token := pkgauth.FromContext(c)
	userID, name := "", ""
	if claims != nil {
		userID = claims.UserID()
		name = identity.ResolveDisplayName(claims.Metadata, claims.Email)
	}

	created, err := h.svc.Create(c.Request.Context(), token, userID, name, postID, parentID, c.PostForm("content"))
	if err != nil {
		response.FailDomain(c, err)
		return
	}
	response.Success(c, created, "评论成功")
}

// Update 编辑评论 POST /api/posts/:id/comments/:cid。
// 帖子ID和评论ID都来自路径，评论必须属于该帖子。
func (h *Handler) Update(c *gin.Context) {
	postID, ok := validate.ParseID(c.Param("id"))
	if !ok {
		response.FailWithError(c, http.StatusBadRequest, "invalid", "帖子ID不合法")
		return
	}
	id, ok := validate.ParseID(c.Param("cid"))
	if !ok {
		response.FailWithError(c, http.StatusBadRequest, "invalid", "评论ID不合法")
		return
	}

	claims, token := pkgauth.FromContext(c)
	userID := ""
	if claims != nil {
		userID = claims.UserID()
	}

	updated, err := h.svc.Update(c.Request.Context(), token, userID, postID, id, c.PostForm("content"))
	if err != nil {
		response.FailDomain(c, err)
		return
	}
	response.Success(c, updated, "保存成功")
}
