/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-12 14:30:19
 * @LastEditTime: 2026-03-07 12:09:33
 * @LastEditors: 安知鱼
 */
package platform

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/repository"
)

// CommentRepo 是 repository.CommentRepository 的平台实现
type CommentRepo struct {
	client *Client
}

func NewCommentRepo(client *Client) *CommentRepo {
	return &CommentRepo{client: client}
}

var _ repository.CommentRepository = (*CommentRepo)(nil)

func (r *CommentRepo) Insert(ctx context.Context, accessToken string, fields *model.NewCommentFields) (*model.Comment, error) {
	var created model.Comment
	if err := r.client.insert(ctx, accessToken, "post_comments", fields, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CommentRepo) UpdateContent(ctx context.Context, accessToken string, id int64, content string) (*model.CommentUpdate, error) {
	query := url.Values{}
	query.Set("id", "eq."+strconv.FormatInt(id, 10))

	fields := map[string]interface{}{
		"content":    content,
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}

	var updated model.CommentUpdate
	if err := r.client.update(ctx, accessToken, "post_comments", query, fields, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *CommentRepo) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+strconv.FormatInt(id, 10))

	var comment model.Comment
	if err := r.client.selectSingle(ctx, "post_comments", query, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepo) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("post_id", "eq."+strconv.FormatInt(postID, 10))
	query.Set("order", "created_at.asc")

	comments := make([]*model.Comment, 0)
	if err := r.client.selectRows(ctx, "post_comments", query, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
