/*
 * @Description: 公告处理器
 * @Author: 安知鱼
 * @Date: 2026-02-15 18:50:14
 * @LastEditTime: 2026-02-15 18:58:06
 * @LastEditors: 安知鱼
 */
package notice

import (
	"net/http"

	"github.com/anzhiyu-c/qingyu-board/internal/pkg/validate"
	"github.com/anzhiyu-c/qingyu-board/pkg/response"
	service_notice "github.com/anzhiyu-c/qingyu-board/pkg/service/notice"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service_notice.Service
}

func NewHandler(svc *service_notice.Service) *Handler {
	return &Handler{svc: svc}
}

// List 返回全部公告 GET /api/notices
func (h *Handler) List(c *gin.Context) {
	notices, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FailDomain(c, err)
		return
	}
	response.Success(c, notices, "获取成功")
}

// Get 返回单条公告 GET /api/notices/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		response.FailWithError(c, http.StatusBadRequest, "invalid", "公告ID不合法")
		return
	}

	notice, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FailDomain(c, err)
		return
	}
	response.Success(c, notice, "获取成功")
}
