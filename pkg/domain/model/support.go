/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 11:15:33
 * @LastEditTime: 2026-02-11 11:21:06
 * @LastEditors: 安知鱼
 */
package model

import "time"

// SupportRequest 是用户提交的工单。
// Reply 和 RepliedAt 由站外的运营人员追加，本服务只读。
type SupportRequest struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	AuthorID       string     `json:"author_id"`
	AuthorUsername string     `json:"author_username"`
	Reply          *string    `json:"reply"`
	RepliedAt      *time.Time `json:"replied_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NewSupportRequestFields 是创建工单时写入平台的列集合
type NewSupportRequestFields struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	AuthorID       string `json:"author_id"`
	AuthorUsername string `json:"author_username"`
}

// Inquiry 是匿名站点留言，对本服务来说只写不读
type Inquiry struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}
