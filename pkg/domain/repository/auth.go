/*
 * @Description: 平台身份服务的访问契约
 * @Author: 安知鱼
 * @Date: 2026-02-11 13:05:28
 * @LastEditTime: 2026-03-02 20:11:45
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
)

// AuthError 是平台身份服务返回的错误。
// Code 是主要的分发依据，Message 只在少数启发式场景下参与判断。
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("平台认证错误 [%s]: %s", e.Code, e.Message)
}

// SignUpResult 是注册调用的返回。
// 平台对已注册邮箱的重复注册不报错，而是返回身份列表为空的用户对象；
// 未开启自动确认时 Session 为 nil，表示确认邮件已发出。
type SignUpResult struct {
	User       *model.User
	Identities []model.Identity
	Session    *model.Session
}

// AuthClient 封装对平台身份服务的全部调用。
// 通过构造注入传给各个服务，测试时可以换成假实现。
type AuthClient interface {
	// SignUp 用邮箱和密码注册，metadata 会存入用户元数据（含默认昵称）
	SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*SignUpResult, error)

	// SignIn 用邮箱和密码换取会话
	SignIn(ctx context.Context, email, password string) (*model.Session, error)

	// SignOut 注销平台侧的会话，尽力而为，失败不阻塞登出流程
	SignOut(ctx context.Context, accessToken string) error

	// UpdateUserMetadata 更新当前会话用户的元数据字段
	UpdateUserMetadata(ctx context.Context, accessToken string, fields map[string]interface{}) (*model.User, error)
}
