/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 10:40:15
 * @LastEditTime: 2026-02-11 10:47:33
 * @LastEditors: 安知鱼
 */
package model

// User 是平台身份服务返回的用户视图。
// 生命周期完全由平台管理，本服务只读取，最多请求更新一次元数据（昵称）。
type User struct {
	ID       string                 `json:"id"`
	Email    string                 `json:"email"`
	Metadata map[string]interface{} `json:"user_metadata"`
}

// DisplayName 返回元数据中的自定义昵称；没有时返回空串
func (u *User) DisplayName() string {
	if u == nil || u.Metadata == nil {
		return ""
	}
	if name, ok := u.Metadata["displayName"].(string); ok {
		return name
	}
	return ""
}

// Identity 是注册时平台返回的身份绑定记录。
// 已注册邮箱再次注册时，平台会返回用户对象但身份列表为空。
type Identity struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Provider string `json:"provider"`
}

// Session 是平台签发的会话凭据
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}
