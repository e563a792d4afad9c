/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:40:11
 * @LastEditTime: 2026-02-10 14:52:30
 * @LastEditors: 安知鱼
 */
package uri

import "strings"

// SafeNextPath 只接受以 / 开头的站内路径，其余一律回落到首页，防止开放重定向。
// // 开头的协议相对地址会被浏览器当作外站，同样拒绝。
func SafeNextPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

// WithQueryFlag 在路径上追加一次性提示标记，例如 ?posted=1。
// 前端消费后会把标记从地址栏剥掉。
func WithQueryFlag(path, flag string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + flag + "=1"
}
