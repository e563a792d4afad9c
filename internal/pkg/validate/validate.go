/*
 * @Description: 用户输入的归一化与校验（纯函数，无副作用）
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:22:37
 * @LastEditTime: 2026-03-08 10:14:55
 * @LastEditors: 安知鱼
 */
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeEmail 去掉首尾空白并转为小写
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsValidEmail 校验邮箱格式：@ 前后非空、域名带点
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPassword 要求长度至少8位，且同时包含至少一个ASCII字母和一个数字
func IsValidPassword(s string) bool {
	if utf8.RuneCountInString(s) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// collapseSpace 将连续空白折叠为单个空格并去掉首尾空白
func collapseSpace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// NormalizeTitle 标题归一化：折叠空白
func NormalizeTitle(s string) string {
	return collapseSpace(s)
}

// NormalizeBody 正文归一化：折叠空白
func NormalizeBody(s string) string {
	return collapseSpace(s)
}

// NormalizeMessage 留言归一化：折叠空白
func NormalizeMessage(s string) string {
	return collapseSpace(s)
}

// IsValidTitle 标题长度 2~80 字符（归一化后）
func IsValidTitle(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 2 && n <= 80
}

// IsValidBody 工单正文长度 4~4000 字符
func IsValidBody(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 4 && n <= 4000
}

// IsValidMessage 站点留言长度 4~2000 字符
func IsValidMessage(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 4 && n <= 2000
}

// NormalizeContent 帖子正文只去首尾空白，内部换行与缩进原样保留
func NormalizeContent(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeComment 评论只去首尾空白，内部空白原样保留
func NormalizeComment(s string) string {
	return strings.TrimSpace(s)
}

// IsValidComment 评论长度 1~1000 字符
func IsValidComment(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 1 && n <= 1000
}

// NormalizeDisplayName 昵称只去首尾空白
func NormalizeDisplayName(s string) string {
	return strings.TrimSpace(s)
}

// IsValidDisplayName 昵称长度 1~24 字符，不限制字符种类（emoji 也允许）
func IsValidDisplayName(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 1 && n <= 24
}

// ParseID 解析表单里的数字ID。空串或无法解析为正整数时视为无效。
func ParseID(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
