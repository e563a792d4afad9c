/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 13:20:14
 * @LastEditTime: 2026-03-05 18:02:39
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
)

// PostRepository 封装帖子集合的平台数据访问。
// 写操作带上会话 Token 执行，行级授权由平台校验；
// 计数只能通过两个原子远程过程变更，普通 Update 不触碰计数列。
type PostRepository interface {
	// Insert 写入新帖子
	Insert(ctx context.Context, accessToken string, fields *model.NewPostFields) error

	// Update 按ID更新帖子的标题、内容、摘要与昵称快照
	Update(ctx context.Context, accessToken string, id int64, fields *model.PostUpdateFields) error

	// FindByID 按ID取单行；0行或多于1行都返回 constant.ErrNotFound
	FindByID(ctx context.Context, id int64) (*model.Post, error)

	// ListFeed 按创建时间倒序返回信息流
	ListFeed(ctx context.Context, limit int) ([]*model.Post, error)

	// ListByAuthor 返回某作者的帖子，按创建时间倒序
	ListByAuthor(ctx context.Context, authorID string) ([]*model.Post, error)

	// ToggleLike 调用平台的 toggle_post_like 远程过程，按(帖子,用户)翻转点赞。
	// 平台侧原子执行，返回翻转后的状态与权威点赞数。
	ToggleLike(ctx context.Context, accessToken string, postID int64) (*model.LikeResult, error)

	// IncrementViews 调用平台的 increment_post_views 远程过程，返回新的浏览数
	IncrementViews(ctx context.Context, postID int64) (int, error)

	// Liked 查询某用户是否已赞过某帖子
	Liked(ctx context.Context, postID int64, userID string) (bool, error)
}
