/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:05:40
 * @LastEditTime: 2026-02-28 16:22:09
 * @LastEditors: 安知鱼
 */
package response

import (
	"errors"
	"net/http"

	"github.com/anzhiyu-c/qingyu-board/pkg/constant"

	"github.com/gin-gonic/gin"
)

// Response 是统一的API返回结构体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// FailWithError 失败响应，附带机器可读的错误码（如 invalid / depth / forbidden）。
// 评论和点赞等交互式接口通过它返回结构化结果，由前端就地更新而不做整页跳转。
func FailWithError(c *gin.Context, code int, errCode string, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Error:   errCode,
	})
}

// FailDomain 把业务层错误映射为结构化失败响应。
// 未识别的错误一律按平台故障处理，不向客户端透传内部细节。
func FailDomain(c *gin.Context, err error) {
	message := err.Error()
	var ue *constant.UserError
	if errors.As(err, &ue) {
		message = ue.Message
	}

	switch {
	case errors.Is(err, constant.ErrUnauthenticated):
		FailWithError(c, http.StatusUnauthorized, "unauthenticated", message)
	case errors.Is(err, constant.ErrCommentDepth):
		FailWithError(c, http.StatusBadRequest, "depth", message)
	case errors.Is(err, constant.ErrValidation):
		FailWithError(c, http.StatusBadRequest, "invalid", message)
	case errors.Is(err, constant.ErrForbidden):
		FailWithError(c, http.StatusForbidden, "forbidden", message)
	case errors.Is(err, constant.ErrNotFound):
		FailWithError(c, http.StatusNotFound, "not_found", constant.ErrNotFound.Error())
	default:
		FailWithError(c, http.StatusBadGateway, "failed", "操作失败，请稍后再试")
	}
}
