/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 13:47:18
 * @LastEditTime: 2026-02-11 13:49:33
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
)

// NoticeRepository 封装站点公告的平台数据访问，游客可读
type NoticeRepository interface {
	// List 按创建时间倒序返回公告
	List(ctx context.Context) ([]*model.Notice, error)

	// FindByID 按ID取单行；0行或多于1行都返回 constant.ErrNotFound
	FindByID(ctx context.Context, id int64) (*model.Notice, error)
}
