/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 13:32:50
 * @LastEditTime: 2026-03-05 18:04:11
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
)

// CommentRepository 封装评论集合的平台数据访问。
// 写操作带上会话 Token 执行，行级授权由平台校验。
type CommentRepository interface {
	// Insert 写入新评论并返回平台生成的完整行
	Insert(ctx context.Context, accessToken string, fields *model.NewCommentFields) (*model.Comment, error)

	// UpdateContent 更新评论内容和更新时间，返回最小视图
	UpdateContent(ctx context.Context, accessToken string, id int64, content string) (*model.CommentUpdate, error)

	// FindByID 按ID取单行；0行或多于1行都返回 constant.ErrNotFound
	FindByID(ctx context.Context, id int64) (*model.Comment, error)

	// ListByPost 返回帖子下全部评论，按创建时间升序
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}
