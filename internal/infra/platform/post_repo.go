/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-12 14:02:36
 * @LastEditTime: 2026-03-07 12:01:55
 * @LastEditors: 安知鱼
 */
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/repository"
)

// PostRepo 是 repository.PostRepository 的平台实现
type PostRepo struct {
	client *Client
}

func NewPostRepo(client *Client) *PostRepo {
	return &PostRepo{client: client}
}

var _ repository.PostRepository = (*PostRepo)(nil)

func (r *PostRepo) Insert(ctx context.Context, accessToken string, fields *model.NewPostFields) error {
	return r.client.insert(ctx, accessToken, "posts", fields, nil)
}

func (r *PostRepo) Update(ctx context.Context, accessToken string, id int64, fields *model.PostUpdateFields) error {
	query := url.Values{}
	query.Set("id", "eq."+strconv.FormatInt(id, 10))
	return r.client.update(ctx, accessToken, "posts", query, fields, nil)
}

func (r *PostRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+strconv.FormatInt(id, 10))

	var post model.Post
	if err := r.client.selectSingle(ctx, "posts", query, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepo) ListFeed(ctx context.Context, limit int) ([]*model.Post, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "created_at.desc")
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	posts := make([]*model.Post, 0)
	if err := r.client.selectRows(ctx, "posts", query, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepo) ListByAuthor(ctx context.Context, authorID string) ([]*model.Post, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("author_id", "eq."+authorID)
	query.Set("order", "created_at.desc")

	posts := make([]*model.Post, 0)
	if err := r.client.selectRows(ctx, "posts", query, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ToggleLike 调用 toggle_post_like 远程过程。
// 平台按会话用户和帖子ID原子翻转点赞行，返回权威结果。
// 部分版本把结果包成单元素数组，两种形状都接受。
func (r *PostRepo) ToggleLike(ctx context.Context, accessToken string, postID int64) (*model.LikeResult, error) {
	args := map[string]interface{}{"post_id": postID}

	var raw json.RawMessage
	if err := r.client.rpc(ctx, accessToken, "toggle_post_like", args, &raw); err != nil {
		return nil, err
	}

	var result model.LikeResult
	if err := json.Unmarshal(raw, &result); err == nil {
		return &result, nil
	}
	var list []model.LikeResult
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return &list[0], nil
	}
	return nil, fmt.Errorf("toggle_post_like 返回了无法识别的结果: %s", string(raw))
}

// IncrementViews 调用 increment_post_views 远程过程，返回新的浏览数
func (r *PostRepo) IncrementViews(ctx context.Context, postID int64) (int, error) {
	args := map[string]interface{}{"post_id": postID}

	var views int
	if err := r.client.rpc(ctx, "", "increment_post_views", args, &views); err != nil {
		return 0, err
	}
	return views, nil
}

// Liked 查询 (帖子, 用户) 的点赞行是否存在
func (r *PostRepo) Liked(ctx context.Context, postID int64, userID string) (bool, error) {
	query := url.Values{}
	query.Set("select", "post_id")
	query.Set("post_id", "eq."+strconv.FormatInt(postID, 10))
	query.Set("user_id", "eq."+userID)

	rows := make([]struct {
		PostID int64 `json:"post_id"`
	}, 0)
	if err := r.client.selectRows(ctx, "post_likes", query, &rows); err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
