/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 09:52:44
 * @LastEditTime: 2026-02-11 09:55:19
 * @LastEditors: 安知鱼
 */
package strutil

import "unicode/utf8"

// Truncate 安全地将UTF-8字符串截断到指定的字符数，不在截断点追加任何后缀。
func Truncate(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLength])
}
