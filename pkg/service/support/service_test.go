package support

import (
	"context"
	"strings"
	"testing"

	"github.com/anzhiyu-c/qingyu-board/pkg/constant"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSupportRepo struct {
	inserted *model.NewSupportRequestFields
	listed   []*model.SupportRequest
}

func (f *fakeSupportRepo) Insert(ctx context.Context, accessToken string, fields *model.NewSupportRequestFields) error {
	f.inserted = fields
	return nil
}

func (f *fakeSupportRepo) ListByAuthor(ctx context.Context, authorID string) ([]*model.SupportRequest, error) {
	return f.listed, nil
}

type fakeInquiryRepo struct {
	inserted *model.Inquiry
}

func (f *fakeInquiryRepo) Insert(ctx context.Context, inquiry *model.Inquiry) error {
	f.inserted = inquiry
	return nil
}

func TestSubmitRequest_成功(t *testing.T) {
	requests := &fakeSupportRepo{}
	svc := NewService(requests, &fakeInquiryRepo{})

	err := svc.SubmitRequest(context.Background(), "tok", "u1", "安知鱼",
		"  账号  问题  ", "登录之后看不到自己的帖子")
	require.NoError(t, err)
	require.NotNil(t, requests.inserted)
	assert.Equal(t, "账号 问题", requests.inserted.Title)
	assert.Equal(t, "u1", requests.inserted.AuthorID)
	assert.Equal(t, "安知鱼", requests.inserted.AuthorUsername)
}

func TestSubmitRequest_未登录(t *testing.T) {
	svc := NewService(&fakeSupportRepo{}, &fakeInquiryRepo{})

	err := svc.SubmitRequest(context.Background(), "", "", "", "账号问题", "内容内容内容内容")
	assert.ErrorIs(t, err, constant.ErrUnauthenticated)
}

func TestSubmitRequest_长度校验(t *testing.T) {
	requests := &fakeSupportRepo{}
	svc := NewService(requests, &fakeInquiryRepo{})

	err := svc.SubmitRequest(context.Background(), "tok", "u1", "安知鱼", "短", "内容内容内容内容")
	assert.ErrorIs(t, err, constant.ErrValidation)

	err = svc.SubmitRequest(context.Background(), "tok", "u1", "安知鱼", "账号问题", "abc")
	assert.ErrorIs(t, err, constant.ErrValidation)

	assert.Nil(t, requests.inserted)
}

func TestSubmitInquiry_成功(t *testing.T) {
	inquiries := &fakeInquiryRepo{}
	svc := NewService(&fakeSupportRepo{}, inquiries)

	err := svc.SubmitInquiry(context.Background(), " Guest@Example.COM ", "  网站  打不开  ")
	require.NoError(t, err)
	require.NotNil(t, inquiries.inserted)
	assert.Equal(t, "guest@example.com", inquiries.inserted.Email)
	assert.Equal(t, "网站 打不开", inquiries.inserted.Message)
}

func TestSubmitInquiry_校验失败(t *testing.T) {
	inquiries := &fakeInquiryRepo{}
	svc := NewService(&fakeSupportRepo{}, inquiries)

	err := svc.SubmitInquiry(context.Background(), "not-an-email", "留言内容留言内容")
	assert.ErrorIs(t, err, constant.ErrValidation)

	err = svc.SubmitInquiry(context.Background(), "guest@example.com", strings.Repeat("a", 2001))
	assert.ErrorIs(t, err, constant.ErrValidation)

	assert.Nil(t, inquiries.inserted)
}
