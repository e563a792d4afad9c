/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:02:18
 * @LastEditTime: 2026-03-02 19:40:51
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrValidation 表示输入未通过本地校验，未发起任何平台调用
	ErrValidation = errors.New("输入校验失败")

	// ErrUnauthenticated 表示当前请求没有有效会话，应重定向到登录页
	ErrUnauthenticated = errors.New("未登录")

	// ErrForbidden 表示已登录但不是资源作者，应重定向到资源的公开页面
	ErrForbidden = errors.New("无权操作此资源")

	// ErrNotFound 表示平台未能返回恰好一行记录
	ErrNotFound = errors.New("资源未找到")

	// ErrCommentDepth 表示试图回复一条回复（评论深度超过2层）
	ErrCommentDepth = errors.New("不能回复子评论")

	// ErrPlatform 表示平台调用失败，对用户只展示通用提示
	ErrPlatform = errors.New("平台调用失败")
)

// UserError 携带可直接展示给用户的提示语。
// Kind 指向上面的某个哨兵错误，errors.Is 按类别分发，Message 用于展示。
type UserError struct {
	Kind    error
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Kind
}

// NewUserError 构造带提示语的分类错误
func NewUserError(kind error, message string) *UserError {
	return &UserError{Kind: kind, Message: message}
}
