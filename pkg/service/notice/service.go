/*
 * @Description: 公告服务
 * @Author: 安知鱼
 * @Date: 2026-02-14 15:02:36
 * @LastEditTime: 2026-02-14 15:08:12
 * @LastEditors: 安知鱼
 */
package notice

import (
	"context"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/repository"
)

// Service 负责公告的读取，公告由运营侧写入，本服务只读
type Service struct {
	repo repository.NoticeRepository
}

func NewService(repo repository.NoticeRepository) *Service {
	return &Service{repo: repo}
}

// List 返回全部公告，按创建时间倒序
func (s *Service) List(ctx context.Context) ([]*model.Notice, error) {
	return s.repo.List(ctx)
}

// Get 按ID返回单条公告
func (s *Service) Get(ctx context.Context, id int64) (*model.Notice, error) {
	return s.repo.FindByID(ctx, id)
}
