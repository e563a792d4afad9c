/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-12 15:03:52
 * @LastEditTime: 2026-02-12 15:07:29
 * @LastEditors: 安知鱼
 */
package platform

import (
	"context"
	"net/url"
	"strconv"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/repository"
)

// NoticeRepo 是 repository.NoticeRepository 的平台实现
type NoticeRepo struct {
	client *Client
}

func NewNoticeRepo(client *Client) *NoticeRepo {
	return &NoticeRepo{client: client}
}

var _ repository.NoticeRepository = (*NoticeRepo)(nil)

func (r *NoticeRepo) List(ctx context.Context) ([]*model.Notice, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "created_at.desc")

	notices := make([]*model.Notice, 0)
	if err := r.client.selectRows(ctx, "notices", query, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *NoticeRepo) FindByID(ctx context.Context, id int64) (*model.Notice, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+strconv.FormatInt(id, 10))

	var notice model.Notice
	if err := r.client.selectSingle(ctx, "notices", query, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}
