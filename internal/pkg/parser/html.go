/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 09:31:20
 * @LastEditTime: 2026-02-11 09:48:02
 * @LastEditors: 安知鱼
 */
package parser

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripTagsPolicy   *bluemonday.Policy
	whitespacePattern = regexp.MustCompile(`\s+`)
)

func init() {
	// StripTagsPolicy 会移除所有的HTML标签
	stripTagsPolicy = bluemonday.StripTagsPolicy()
}

// StripHTML 接受一个HTML字符串，去除所有标签后折叠空白，返回纯文本。
// 用于从富文本内容派生帖子摘要。
func StripHTML(htmlContent string) string {
	// 标签先替换为空格再折叠，避免相邻元素的文字粘连
	text := stripTagsPolicy.Sanitize(strings.ReplaceAll(htmlContent, "><", "> <"))
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
