/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 10:50:09
 * @LastEditTime: 2026-03-03 17:12:48
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Post 是帖子的核心领域模型。
// AuthorUsername 是写入时的昵称快照：作者之后改名不会回溯修改历史帖子。
// Views 和 Likes 由平台的原子远程过程维护，本服务从不直接改写。
type Post struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	ContentText    string    `json:"content_text"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Views          int       `json:"views"`
	Likes          int       `json:"likes"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewPostFields 是创建帖子时写入平台的列集合
type NewPostFields struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	ContentText    string `json:"content_text"`
	AuthorID       string `json:"author_id"`
	AuthorUsername string `json:"author_username"`
}

// PostUpdateFields 是编辑帖子时允许变更的列集合。
// 计数列不在其中，只能走远程过程。
type PostUpdateFields struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	ContentText    string `json:"content_text"`
	AuthorUsername string `json:"author_username"`
}

// LikeResult 是切换点赞远程过程的返回值：是否已赞 + 权威点赞数
type LikeResult struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}
