/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 13:40:22
 * @LastEditTime: 2026-02-11 13:44:05
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
)

// SupportRequestRepository 封装工单集合的平台数据访问
type SupportRequestRepository interface {
	Insert(ctx context.Context, accessToken string, fields *model.NewSupportRequestFields) error

	// ListByAuthor 返回某用户的工单（含运营回复），按创建时间倒序
	ListByAuthor(ctx context.Context, authorID string) ([]*model.SupportRequest, error)
}

// InquiryRepository 封装站点留言的平台数据访问，只有写路径
type InquiryRepository interface {
	Insert(ctx context.Context, inquiry *model.Inquiry) error
}
