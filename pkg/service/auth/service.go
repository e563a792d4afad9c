/*
 * @Description: 认证流程服务（注册、登录、登出、资料更新）
 * @Author: 安知鱼
 * @Date: 2026-02-13 10:10:02
 * @LastEditTime: 2026-03-05 15:02:19
 * @LastEditors: 安知鱼
 */
package auth

import (
	"context"
	"errors"
	"log"

	"github.com/anzhiyu-c/qingyu-board/internal/pkg/validate"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/repository"
)

// FlowError 是需要原样展示给用户的认证流程失败。
// 与 constant 里的哨兵错误不同，它携带具体的提示语。
type FlowError struct {
	Message string
}

func (e *FlowError) Error() string {
	return e.Message
}

func flowErr(message string) error {
	return &FlowError{Message: message}
}

// SignUpOutcome 是注册成功时的两种结局之一：
// 拿到会话（平台开启了自动确认），或确认邮件已发出。
type SignUpOutcome struct {
	Session          *model.Session
	ConfirmationSent bool
}

// Service 负责认证相关的业务编排
type Service struct {
	client repository.AuthClient
}

func NewService(client repository.AuthClient) *Service {
	return &Service{client: client}
}

// SignUp 校验注册表单并调用平台注册。
// displayName 可以为空，为空时由展示层按邮箱前缀兜底。
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*SignUpOutcome, error) {
	email = validate.NormalizeEmail(email)
	if !validate.IsValidEmail(email) {
		return nil, flowErr(msgInvalidEmailAddr)
	}
	if !validate.IsValidPassword(password) {
		return nil, flowErr(msgWeakPassword)
	}

	displayName = validate.NormalizeDisplayName(displayName)
	if displayName != "" && !validate.IsValidDisplayName(displayName) {
		return nil, flowErr("昵称长度需在 1 到 24 个字符之间")
	}

	var metadata map[string]interface{}
	if displayName != "" {
		metadata = map[string]interface{}{"displayName": displayName}
	}

	result, err := s.client.SignUp(ctx, email, password, metadata)
	if err != nil {
		var ae *repository.AuthError
		if errors.As(err, &ae) {
			return nil, flowErr(signUpMessage(ae))
		}
		log.Printf("❌ [认证] 注册请求失败: %v", err)
		return nil, flowErr(msgSignUpFailed)
	}

	// 对已注册邮箱重复注册时，平台返回身份列表为空的用户对象而不报错
	if result.User != nil && len(result.Identities) == 0 {
		return nil, flowErr(msgDuplicateEmail)
	}

	if result.Session == nil {
		return &SignUpOutcome{ConfirmationSent: true}, nil
	}
	return &SignUpOutcome{Session: result.Session}, nil
}

// SignIn 校验登录表单并用邮箱密码换取平台会话
func (s *Service) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	email = validate.NormalizeEmail(email)
	if !validate.IsValidEmail(email) {
		return nil, flowErr(msgInvalidEmailAddr)
	}
	if password == "" {
		return nil, flowErr(msgInvalidCredentials)
	}

	session, err := s.client.SignIn(ctx, email, password)
	if err != nil {
		var ae *repository.AuthError
		if errors.As(err, &ae) {
			return nil, flowErr(signInMessage(ae))
		}
		log.Printf("❌ [认证] 登录请求失败: %v", err)
		return nil, flowErr(msgSignInFailed)
	}
	return session, nil
}

// SignOut 注销平台侧会话。平台调用失败只记录日志，
// 本地会话 Cookie 由处理器无条件清除，登出永远成功。
func (s *Service) SignOut(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}
	if err := s.client.SignOut(ctx, accessToken); err != nil {
		log.Printf("⚠️  [认证] 平台登出失败（已忽略）: %v", err)
	}
}

// UpdateDisplayName 校验并更新当前用户的展示昵称
func (s *Service) UpdateDisplayName(ctx context.Context, accessToken, displayName string) error {
	displayName = validate.NormalizeDisplayName(displayName)
	if !validate.IsValidDisplayName(displayName) {
		return flowErr("昵称长度需在 1 到 24 个字符之间")
	}

	_, err := s.client.UpdateUserMetadata(ctx, accessToken, map[string]interface{}{
		"displayName": displayName,
	})
	if err != nil {
		log.Printf("❌ [认证] 更新昵称失败: %v", err)
		return flowErr("昵称更新失败，请稍后再试")
	}
	return nil
}
