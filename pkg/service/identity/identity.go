/*
 * @Description: 用户展示身份解析
 * @Author: 安知鱼
 * @Date: 2026-02-13 09:12:40
 * @LastEditTime: 2026-03-02 11:48:27
 * @LastEditors: 安知鱼
 */
package identity

import "strings"

// FallbackName 是元数据和邮箱都无法提供昵称时的兜底展示名
const FallbackName = "익명"

// ResolveDisplayName 按优先级解析展示名：
// 元数据里的 displayName > 邮箱 @ 前缀 > 兜底名。
// 各级候选都会做去空格处理，空白串视为缺失。
func ResolveDisplayName(metadata map[string]interface{}, email string) string {
	if metadata != nil {
		if v, ok := metadata["displayName"]; ok {
			if name, ok := v.(string); ok {
				if trimmed := strings.TrimSpace(name); trimmed != "" {
					return trimmed
				}
			}
		}
	}

	if at := strings.Index(email, "@"); at > 0 {
		if local := strings.TrimSpace(email[:at]); local != "" {
			return local
		}
	}

	return FallbackName
}

// InitialOf 返回展示名的首字符（按 rune 取），用于头像占位符
func InitialOf(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return string(r)
	}
	return "?"
}
