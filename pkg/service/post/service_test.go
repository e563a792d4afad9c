package post

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/anzhiyu-c/qingyu-board/pkg/constant"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-board/pkg/service/utility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePostRepo 是测试用的帖子仓库假实现
type fakePostRepo struct {
	byID          map[int64]*model.Post
	feed          []*model.Post
	feedCalls     int
	inserted      *model.NewPostFields
	updatedID     int64
	updatedFields *model.PostUpdateFields
	likeResult    *model.LikeResult
	liked         bool
	views         int
	findCalls     int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{byID: make(map[int64]*model.Post)}
}

func (f *fakePostRepo) Insert(ctx context.Context, accessToken string, fields *model.NewPostFields) error {
	f.inserted = fields
	return nil
}

func (f *fakePostRepo) Update(ctx context.Context, accessToken string, id int64, fields *model.PostUpdateFields) error {
	f.updatedID = id
	f.updatedFields = fields
	return nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	f.findCalls++
	p, ok := f.byID[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) ListFeed(ctx context.Context, limit int) ([]*model.Post, error) {
	f.feedCalls++
	return f.feed, nil
}

func (f *fakePostRepo) ListByAuthor(ctx context.Context, authorID string) ([]*model.Post, error) {
	return f.feed, nil
}

func (f *fakePostRepo) ToggleLike(ctx context.Context, accessToken string, postID int64) (*model.LikeResult, error) {
	return f.likeResult, nil
}

func (f *fakePostRepo) IncrementViews(ctx context.Context, postID int64) (int, error) {
	f.views++
	return f.views, nil
}

func (f *fakePostRepo) Liked(ctx context.Context, postID int64, userID string) (bool, error) {
	return f.liked, nil
}

func newTestService(repo *fakePostRepo) *Service {
	return NewService(repo, utility.NewMemoryCacheService())
}

func TestCreate_未登录(t *testing.T) {
	svc := newTestService(newFakePostRepo())

	err := svc.Create(context.Background(), "", "", "", "标题标题", "内容内容内容内容")
	assert.ErrorIs(t, err, constant.ErrUnauthenticated)
}

func TestCreate_标题和内容不能为空(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)

	err := svc.Create(context.Background(), "tok", "u1", "安知鱼", "   ", "内容")
	assert.ErrorIs(t, err, constant.ErrValidation)

	err = svc.Create(context.Background(), "tok", "u1", "安知鱼", "标题", "   ")
	assert.ErrorIs(t, err, constant.ErrValidation)

	assert.Nil(t, repo.inserted, "校验失败不应写入")
}

func TestCreate_单字符标题和正文可以发布(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)

	err := svc.Create(context.Background(), "tok", "u1", "安知鱼", "短", "嗯")
	require.NoError(t, err)
	require.NotNil(t, repo.inserted)
	assert.Equal(t, "短", repo.inserted.Title)
}

func TestCreate_生成纯文本摘要并记录昵称快照(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)

	err := svc.Create(context.Background(), "tok", "u1", "安知鱼",
		"  今天的  发现  ", "<p>Hello <b>World</b></p><p>"+strings.Repeat("字", 300)+"</p>")
	require.NoError(t, err)
	require.NotNil(t, repo.inserted)

	assert.Equal(t, "今天的  发现", repo.inserted.Title, "标题只去首尾空白，内部排版保留")
	assert.Equal(t, "u1", repo.inserted.AuthorID)
	assert.Equal(t, "安知鱼", repo.inserted.AuthorUsername)

	assert.True(t, strings.HasPrefix(repo.inserted.ContentText, "Hello World "))
	assert.NotContains(t, repo.inserted.ContentText, "<", "摘要不应含HTML标签")
	assert.Equal(t, 240, len([]rune(repo.inserted.ContentText)), "摘要截断到240字符")
}

func TestCreate_发布后信息流缓存失效(t *testing.T) {
	repo := newFakePostRepo()
	repo.feed = []*model.Post{{ID: 1, Title: "旧帖子"}}
	svc := newTestService(repo)

	// 先灌热缓存
	_, err := svc.Feed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.feedCalls)

	require.NoError(t, svc.Create(context.Background(), "tok", "u1", "安知鱼", "新帖子", "内容内容内容内容"))

	// 缓存已失效，再读信息流必须回源
	_, err = svc.Feed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.feedCalls)
}

func TestUpdate_只有作者本人可以编辑(t *testing.T) {
	repo := newFakePostRepo()
	repo.byID[3] = &model.Post{ID: 3, AuthorID: "u1", Title: "原标题"}
	svc := newTestService(repo)

	err := svc.Update(context.Background(), "tok", "u2", "路人", 3, "改标题", "内容内容内容内容")
	assert.ErrorIs(t, err, constant.ErrForbidden)
	assert.Nil(t, repo.updatedFields)
}

func TestUpdate_刷新摘要和昵称快照(t *testing.T) {
	repo := newFakePostRepo()
	repo.byID[3] = &model.Post{ID: 3, AuthorID: "u1", AuthorUsername: "旧昵称"}
	svc := newTestService(repo)

	err := svc.Update(context.Background(), "tok", "u1", "新昵称", 3, "新标题", "<p>新的内容正文</p>")
	require.NoError(t, err)
	require.NotNil(t, repo.updatedFields)
	assert.Equal(t, int64(3), repo.updatedID)
	assert.Equal(t, "新标题", repo.updatedFields.Title)
	assert.Equal(t, "新昵称", repo.updatedFields.AuthorUsername)
	assert.Equal(t, "新的内容正文", repo.updatedFields.ContentText)
}

func TestUpdate_本地校验先于远程查询(t *testing.T) {
	repo := newFakePostRepo()
	repo.byID[3] = &model.Post{ID: 3, AuthorID: "u1"}
	svc := newTestService(repo)

	err := svc.Update(context.Background(), "tok", "u1", "安知鱼", 3, "   ", "内容内容")
	assert.ErrorIs(t, err, constant.ErrValidation)
	assert.Equal(t, 0, repo.findCalls, "校验失败不应访问平台")
}

func TestUpdate_帖子不存在(t *testing.T) {
	svc := newTestService(newFakePostRepo())

	err := svc.Update(context.Background(), "tok", "u1", "安知鱼", 404, "新标题", "内容内容内容内容")
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestFeed_第二次读走缓存(t *testing.T) {
	repo := newFakePostRepo()
	repo.feed = []*model.Post{
		{ID: 2, Title: "第二帖", CreatedAt: time.Now()},
		{ID: 1, Title: "第一帖", CreatedAt: time.Now().Add(-time.Hour)},
	}
	svc := newTestService(repo)

	first, err := svc.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, first[0].ID, second[0].ID)

	assert.Equal(t, 1, repo.feedCalls, "缓存命中时不应回源")
}

func TestDetail_浏览数加一并附带点赞状态(t *testing.T) {
	repo := newFakePostRepo()
	repo.byID[3] = &model.Post{ID: 3, AuthorID: "u1", Views: 9}
	repo.liked = true
	svc := newTestService(repo)

	detail, err := svc.Detail(context.Background(), 3, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Post.Views, "展示远程过程返回的最新浏览数")
	assert.True(t, detail.Liked)
}

func TestDetail_游客不查点赞状态(t *testing.T) {
	repo := newFakePostRepo()
	repo.byID[3] = &model.Post{ID: 3}
	repo.liked = true
	svc := newTestService(repo)

	detail, err := svc.Detail(context.Background(), 3, "")
	require.NoError(t, err)
	assert.False(t, detail.Liked)
}

func TestToggleLike_未登录(t *testing.T) {
	svc := newTestService(newFakePostRepo())

	_, err := svc.ToggleLike(context.Background(), "", 3)
	assert.ErrorIs(t, err, constant.ErrUnauthenticated)
}

func TestToggleLike_返回平台权威值(t *testing.T) {
	repo := newFakePostRepo()
	repo.likeResult = &model.LikeResult{Liked: true, Likes: 12}
	svc := newTestService(repo)

	result, err := svc.ToggleLike(context.Background(), "tok", 3)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 12, result.Likes)
}
