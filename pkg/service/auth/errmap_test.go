package auth

import (
	"testing"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/repository"
)

func TestSignUpMessage(t *testing.T) {
	tests := []struct {
		name string
		code string
		msg  string
		want string
	}{
		{"邮箱已存在", "email_exists", "", msgDuplicateEmail},
		{"用户已存在", "user_already_exists", "", msgDuplicateEmail},
		{"身份已存在", "identity_already_exists", "", msgDuplicateEmail},
		{"邮件发送限流", "over_email_send_rate_limit", "", msgEmailSendRateLimit},
		{"请求限流", "over_request_rate_limit", "", msgRequestRateLimit},
		{"注册已关闭", "signup_disabled", "", msgSignUpDisabled},
		{"人机验证失败", "captcha_failed", "", msgCaptchaFailed},
		{"弱密码", "weak_password", "", msgWeakPassword},
		{"邮箱格式非法", "email_address_invalid", "", msgInvalidEmailAddr},
		{"邮箱不在白名单", "email_address_not_authorized", "", msgEmailNotAuthorized},
		{"无码但消息提示已注册", "", "User already registered", msgDuplicateEmail},
		{"无码但消息提示已存在", "", "A user with this email address already exists", msgDuplicateEmail},
		{"无码但消息提示存量用户", "", "Signup is not allowed for existing users", msgDuplicateEmail},
		{"无码但消息提到密码", "", "Password should be at least 6 characters", msgWeakPassword},
		{"未知错误走兜底", "unexpected_failure", "boom", msgSignUpFailed},
		{"无码无可识别消息走兜底", "", "something odd", msgSignUpFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := &repository.AuthError{Code: tt.code, Message: tt.msg}
			if got := signUpMessage(ae); got != tt.want {
				t.Errorf("signUpMessage(%q, %q) = %q, want %q", tt.code, tt.msg, got, tt.want)
			}
		})
	}
}

func TestSignInMessage(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"邮箱未确认", "email_not_confirmed", msgEmailNotConfirmed},
		{"凭证错误", "invalid_credentials", msgInvalidCredentials},
		{"用户不存在按凭证错误处理", "user_not_found", msgInvalidCredentials},
		{"账号被禁用", "user_banned", msgUserBanned},
		{"请求限流", "over_request_rate_limit", msgRequestRateLimit},
		{"登录方式被关闭", "provider_disabled", msgProviderDisabled},
		{"邮箱登录被关闭", "email_provider_disabled", msgProviderDisabled},
		{"人机验证失败", "captcha_failed", msgCaptchaFailed},
		{"未知错误走兜底", "unexpected_failure", msgSignInFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := &repository.AuthError{Code: tt.code}
			if got := signInMessage(ae); got != tt.want {
				t.Errorf("signInMessage(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}
