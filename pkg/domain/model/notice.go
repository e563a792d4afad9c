/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 11:24:47
 * @LastEditTime: 2026-02-11 11:26:12
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Notice 是站点公告，游客可读，本服务不提供写入口
type Notice struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
