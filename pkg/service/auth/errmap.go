/*
 * @Description: 平台认证错误到用户提示语的映射
 * @Author: 安知鱼
 * @Date: 2026-02-13 10:02:18
 * @LastEditTime: 2026-03-05 14:33:56
 * @LastEditors: 安知鱼
 */
package auth

import (
	"strings"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/repository"
)

// 注册 / 登录流程的用户提示语。
// 错误码来自认证平台的稳定错误码表，提示语不透传平台原文。
const (
	msgDuplicateEmail     = "该邮箱已注册，请直接登录"
	msgEmailSendRateLimit = "验证邮件发送过于频繁，请稍后再试"
	msgRequestRateLimit   = "请求过于频繁，请稍后再试"
	msgSignUpDisabled     = "当前暂未开放注册"
	msgCaptchaFailed      = "人机验证未通过，请重试"
	msgWeakPassword       = "密码强度不足，请使用至少 8 位且包含字母和数字的密码"
	msgInvalidEmailAddr   = "邮箱格式不正确"
	msgEmailNotAuthorized = "该邮箱暂不允许注册"
	msgSignUpFailed       = "注册失败，请稍后再试"

	msgEmailNotConfirmed  = "邮箱尚未验证，请先查收验证邮件"
	msgInvalidCredentials = "邮箱或密码不正确"
	msgUserBanned         = "该账号已被禁用"
	msgProviderDisabled   = "邮箱登录暂不可用"
	msgSignInFailed       = "登录失败，请稍后再试"
)

// signUpMessage 将平台注册错误翻译为用户提示语。
// 优先匹配稳定错误码；老版本平台只返回消息文本，退而按关键词识别。
func signUpMessage(ae *repository.AuthError) string {
	switch ae.Code {
	case "email_exists", "user_already_exists", "identity_already_exists":
		return msgDuplicateEmail
	case "over_email_send_rate_limit":
		return msgEmailSendRateLimit
	case "over_request_rate_limit":
		return msgRequestRateLimit
	case "signup_disabled":
		return msgSignUpDisabled
	case "captcha_failed":
		return msgCaptchaFailed
	case "weak_password":
		return msgWeakPassword
	case "email_address_invalid":
		return msgInvalidEmailAddr
	case "email_address_not_authorized":
		return msgEmailNotAuthorized
	}
	return signUpMessageFromText(ae.Message)
}

// signUpMessageFromText 是无错误码时的兜底启发式匹配
func signUpMessageFromText(message string) string {
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "already registered"),
		strings.Contains(msg, "already exists"),
		strings.Contains(msg, "signup is not allowed for existing users"):
		return msgDuplicateEmail
	case strings.Contains(msg, "password"):
		return msgWeakPassword
	}
	return msgSignUpFailed
}

// signInMessage 将平台登录错误翻译为用户提示语
func signInMessage(ae *repository.AuthError) string {
	switch ae.Code {
	case "email_not_confirmed":
		return msgEmailNotConfirmed
	case "invalid_credentials", "user_not_found":
		return msgInvalidCredentials
	case "user_banned":
		return msgUserBanned
	case "over_request_rate_limit":
		return msgRequestRateLimit
	case "provider_disabled", "email_provider_disabled":
		return msgProviderDisabled
	case "captcha_failed":
		return msgCaptchaFailed
	}
	return msgSignInFailed
}
