/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-12 14:44:08
 * @LastEditTime: 2026-02-12 14:58:40
 * @LastEditors: 安知鱼
 */
package platform

import (
	"context"
	"net/url"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/repository"
)

// SupportRepo 是 repository.SupportRequestRepository 的平台实现
type SupportRepo struct {
	client *Client
}

func NewSupportRepo(client *Client) *SupportRepo {
	return &SupportRepo{client: client}
}

var _ repository.SupportRequestRepository = (*SupportRepo)(nil)

func (r *SupportRepo) Insert(ctx context.Context, accessToken string, fields *model.NewSupportRequestFields) error {
	return r.client.insert(ctx, accessToken, "support_requests", fields, nil)
}

func (r *SupportRepo) ListByAuthor(ctx context.Context, authorID string) ([]*model.SupportRequest, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("author_id", "eq."+authorID)
	query.Set("order", "created_at.desc")

	requests := make([]*model.SupportRequest, 0)
	if err := r.client.selectRows(ctx, "support_requests", query, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// InquiryRepo 是 repository.InquiryRepository 的平台实现
type InquiryRepo struct {
	client *Client
}

func NewInquiryRepo(client *Client) *InquiryRepo {
	return &InquiryRepo{client: client}
}

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

// Insert 匿名写入站点留言，使用匿名密钥即可
func (r *InquiryRepo) Insert(ctx context.Context, inquiry *model.Inquiry) error {
	return r.client.insert(ctx, "", "inquiries", inquiry, nil)
}
