/*
 * @Description: 工单与站点留言服务
 * @Author: 安知鱼
 * @Date: 2026-02-14 14:30:11
 * @LastEditTime: 2026-03-06 09:55:40
 * @LastEditors: 安知鱼
 */
package support

import (
	"context"
	"log"

	"github.com/anzhiyu-c/qingyu-board/internal/pkg/validate"
	"github.com/anzhiyu-c/qingyu-board/pkg/constant"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/repository"
)

// Service 负责工单与匿名留言的业务编排
type Service struct {
	requests  repository.SupportRequestRepository
	inquiries repository.InquiryRepository
}

func NewService(requests repository.SupportRequestRepository, inquiries repository.InquiryRepository) *Service {
	return &Service{requests: requests, inquiries: inquiries}
}

// SubmitRequest 提交工单，需要登录
func (s *Service) SubmitRequest(ctx context.Context, accessToken, userID, userName, title, content string) error {
	if accessToken == "" {
		return constant.NewUserError(constant.ErrUnauthenticated, "请先登录")
	}

	title = validate.NormalizeTitle(title)
	if !validate.IsValidTitle(title) {
		return constant.NewUserError(constant.ErrValidation, "标题长度需在 2 到 80 个字符之间")
	}
	content = validate.NormalizeBody(content)
	if !validate.IsValidBody(content) {
		return constant.NewUserError(constant.ErrValidation, "内容长度需在 4 到 4000 个字符之间")
	}

	fields := &model.NewSupportRequestFields{
		Title:          title,
		Content:        content,
		AuthorID:       userID,
		AuthorUsername: userName,
	}
	if err := s.requests.Insert(ctx, accessToken, fields); err != nil {
		log.Printf("❌ [工单] 提交失败: %v", err)
		return constant.NewUserError(constant.ErrPlatform, "提交失败，请稍后再试")
	}
	return nil
}

// ListMine 返回当前用户的工单（含运营回复）
func (s *Service) ListMine(ctx context.Context, userID string) ([]*model.SupportRequest, error) {
	return s.requests.ListByAuthor(ctx, userID)
}

// SubmitInquiry 提交匿名站点留言，无需登录
func (s *Service) SubmitInquiry(ctx context.Context, email, message string) error {
	email = validate.NormalizeEmail(email)
	if !validate.IsValidEmail(email) {
		return constant.NewUserError(constant.ErrValidation, "邮箱格式不正确")
	}
	message = validate.NormalizeMessage(message)
	if !validate.IsValidMessage(message) {
		return constant.NewUserError(constant.ErrValidation, "留言长度需在 4 到 2000 个字符之间")
	}

	if err := s.inquiries.Insert(ctx, &model.Inquiry{Email: email, Message: message}); err != nil {
		log.Printf("❌ [留言] 提交失败: %v", err)
		return constant.NewUserError(constant.ErrPlatform, "提交失败，请稍后再试")
	}
	return nil
}
