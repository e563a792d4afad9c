/*
 * @Description: 平台身份服务（GoTrue 风格接口）的 AuthClient 实现
 * @Author: 安知鱼
 * @Date: 2026-02-12 10:05:11
 * @LastEditTime: 2026-03-07 11:30:46
 * @LastEditors: 安知鱼
 */
package platform

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/repository"
)

// AuthAPI 是 repository.AuthClient 的平台实现
type AuthAPI struct {
	client *Client
}

// NewAuthAPI 构造平台身份服务客户端
func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

var _ repository.AuthClient = (*AuthAPI)(nil)

// authErrorBody 是身份服务的错误响应。新版字段是 error_code/msg，
// 旧版密码模式接口会返回 error/error_description，两套都要兜住。
type authErrorBody struct {
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

// decodeAuthError 把身份服务的非 2xx 响应转为 *repository.AuthError
func decodeAuthError(status int, body []byte) error {
	var eb authErrorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return &repository.AuthError{Code: "", Message: string(body)}
	}

	code := eb.ErrorCode
	if code == "" {
		code = eb.Error
	}
	message := eb.Msg
	if message == "" {
		message = eb.ErrorDescription
	}
	if message == "" {
		message = eb.Message
	}

	log.Printf("[AuthAPI] 平台身份服务返回 %d, code=%q", status, code)
	return &repository.AuthError{Code: code, Message: message}
}

type signUpResponse struct {
	User    *model.User    `json:"user"`
	Session *model.Session `json:"session"`
	// 部分版本把用户字段平铺在顶层
	ID         string           `json:"id"`
	Email      string           `json:"email"`
	Identities []model.Identity `json:"identities"`
}

// SignUp 注册新用户，metadata 存入用户元数据
func (a *AuthAPI) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*repository.SignUpResult, error) {
	payload := map[string]interface{}{
		"email":    email,
		"password": password,
		"data":     metadata,
	}
	req, err := a.client.newRequest(ctx, http.MethodPost, "/auth/v1/signup", "", payload)
	if err != nil {
		return nil, err
	}

	status, body, err := a.client.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, decodeAuthError(status, body)
	}

	var resp signUpResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	result := &repository.SignUpResult{
		User:       resp.User,
		Identities: resp.Identities,
		Session:    resp.Session,
	}
	// 自动确认关闭时，响应就是平铺的用户对象本身
	if result.User == nil && resp.ID != "" {
		result.User = &model.User{ID: resp.ID, Email: resp.Email}
	}
	if result.User != nil && resp.User != nil && resp.Identities == nil {
		// identities 挂在 user 对象下的版本
		var wrapped struct {
			User struct {
				Identities []model.Identity `json:"identities"`
			} `json:"user"`
		}
		if err := json.Unmarshal(body, &wrapped); err == nil {
			result.Identities = wrapped.User.Identities
		}
	}
	return result, nil
}

// SignIn 密码登录，换取会话凭据
func (a *AuthAPI) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	payload := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	req, err := a.client.newRequest(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", payload)
	if err != nil {
		return nil, err
	}

	status, body, err := a.client.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, decodeAuthError(status, body)
	}

	var session model.Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignOut 注销平台侧会话。调用方对失败只记日志，不阻塞登出。
func (a *AuthAPI) SignOut(ctx context.Context, accessToken string) error {
	req, err := a.client.newRequest(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil)
	if err != nil {
		return err
	}

	status, body, err := a.client.do(req)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return decodeAuthError(status, body)
	}
	return nil
}

// UpdateUserMetadata 更新当前用户的元数据字段
func (a *AuthAPI) UpdateUserMetadata(ctx context.Context, accessToken string, fields map[string]interface{}) (*model.User, error) {
	payload := map[string]interface{}{"data": fields}
	req, err := a.client.newRequest(ctx, http.MethodPut, "/auth/v1/user", accessToken, payload)
	if err != nil {
		return nil, err
	}

	status, body, err := a.client.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, decodeAuthError(status, body)
	}

	var user model.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
