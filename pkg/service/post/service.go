/*
 * @Description: 帖子服务（发帖、编辑、信息流、详情、点赞）
 * @Author: 安知鱼
 * @Date: 2026-02-13 14:20:33
 * @LastEditTime: 2026-03-08 21:17:02
 * @LastEditors: 安知鱼
 */
package post

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/anzhiyu-c/qingyu-board/internal/pkg/parser"
	"github.com/anzhiyu-c/qingyu-board/internal/pkg/strutil"
	"github.com/anzhiyu-c/qingyu-board/internal/pkg/validate"
	"github.com/anzhiyu-c/qingyu-board/pkg/constant"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-board/pkg/service/utility"
)

const (
	// feedCacheTTL 控制信息流缓存的最长陈旧时间。
	// 点赞数走陈旧容忍，内容变更会主动失效缓存。
	feedCacheTTL = time.Minute
	// feedLimit 是信息流单页条数
	feedLimit = 20
	// excerptRunes 是摘要截断长度（按字符数）
	excerptRunes = 240
)

const (
	msgEmptyTitle   = "标题不能为空"
	msgEmptyContent = "内容不能为空"
)

// Detail 是帖子详情页的视图：帖子本体加当前用户的点赞状态
type Detail struct {
	Post  *model.Post
	Liked bool
}

// Service 负责帖子相关的业务编排
type Service struct {
	repo  repository.PostRepository
	cache utility.CacheService
}

func NewService(repo repository.PostRepository, cache utility.CacheService) *Service {
	return &Service{repo: repo, cache: cache}
}

// excerptOf 从 HTML 正文生成纯文本摘要
func excerptOf(content string) string {
	return strutil.Truncate(parser.StripHTML(content), excerptRunes)
}

// Create 校验并发布新帖子。
// authorName 作为昵称快照随帖子写入，之后作者改名不影响已发帖子。
func (s *Service) Create(ctx context.Context, accessToken, authorID, authorName, title, content string) error {
	if accessToken == "" {
		return constant.NewUserError(constant.ErrUnauthenticated, "请先登录")
	}

	// 帖子只要求去掉首尾空白后非空，内部排版原样保留
	title = strings.TrimSpace(title)
	if title == "" {
		return constant.NewUserError(constant.ErrValidation, msgEmptyTitle)
	}
	content = validate.NormalizeContent(content)
	if content == "" {
		return constant.NewUserError(constant.ErrValidation, msgEmptyContent)
	}

	fields := &model.NewPostFields{
		Title:          title,
		Content:        content,
		ContentText:    excerptOf(content),
		AuthorID:       authorID,
		AuthorUsername: authorName,
	}
	if err := s.repo.Insert(ctx, accessToken, fields); err != nil {
		log.Printf("❌ [帖子] 发布失败: %v", err)
		return constant.NewUserError(constant.ErrPlatform, "发布失败，请稍后再试")
	}

	s.invalidateFeed(ctx)
	return nil
}

// Update 校验并保存帖子编辑，只有作者本人可以编辑。
// 昵称快照会刷新为编辑时的昵称，摘要随新正文重新生成。
func (s *Service) Update(ctx context.Context, accessToken, userID, userName string, id int64, title, content string) error {
	if accessToken == "" {
		return constant.NewUserError(constant.ErrUnauthenticated, "请先登录")
	}

	// 本地校验先行，全部通过才访问平台
	title = strings.TrimSpace(title)
	if title == "" {
		return constant.NewUserError(constant.ErrValidation, msgEmptyTitle)
	}
	content = validate.NormalizeContent(content)
	if content == "" {
		return constant.NewUserError(constant.ErrValidation, msgEmptyContent)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != userID {
		return constant.NewUserError(constant.ErrForbidden, "只有作者本人可以编辑")
	}

	fields := &model.PostUpdateFields{
		Title:          title,
		Content:        content,
		ContentText:    excerptOf(content),
		AuthorUsername: userName,
	}
	if err := s.repo.Update(ctx, accessToken, id, fields); err != nil {
		log.Printf("❌ [帖子] 编辑失败 (ID %d): %v", id, err)
		return constant.NewUserError(constant.ErrPlatform, "保存失败，请稍后再试")
	}

	s.invalidateFeed(ctx)
	return nil
}

// Feed 返回首页信息流，带一层短 TTL 缓存。
// 缓存读写失败只记录日志并回源，不影响请求成功。
func (s *Service) Feed(ctx context.Context) ([]*model.Post, error) {
	if cached, err := s.cache.Get(ctx, constant.CacheKeyFeedLatest); err != nil {
		log.Printf("⚠️  [帖子] 读取信息流缓存失败: %v", err)
	} else if cached != "" {
		var posts []*model.Post
		if err := json.Unmarshal([]byte(cached), &posts); err == nil {
			return posts, nil
		}
		log.Printf("⚠️  [帖子] 信息流缓存内容损坏，已忽略")
	}

	posts, err := s.repo.ListFeed(ctx, feedLimit)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(posts); err == nil {
		if err := s.cache.Set(ctx, constant.CacheKeyFeedLatest, string(data), feedCacheTTL); err != nil {
			log.Printf("⚠️  [帖子] 写入信息流缓存失败: %v", err)
		}
	}
	return posts, nil
}

// Detail 返回帖子详情：每次访问浏览数加一（原子远程过程），
// 已登录用户附带其点赞状态。
func (s *Service) Detail(ctx context.Context, id int64, userID string) (*Detail, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if views, err := s.repo.IncrementViews(ctx, id); err != nil {
		log.Printf("⚠️  [帖子] 浏览数自增失败 (ID %d): %v", id, err)
	} else {
		post.Views = views
	}

	detail := &Detail{Post: post}
	if userID != "" {
		liked, err := s.repo.Liked(ctx, id, userID)
		if err != nil {
			log.Printf("⚠️  [帖子] 查询点赞状态失败 (ID %d): %v", id, err)
		} else {
			detail.Liked = liked
		}
	}
	return detail, nil
}

// ToggleLike 翻转当前用户对帖子的点赞。
// 翻转在平台侧原子执行，返回值是权威状态，前端以它为准校正乐观更新。
// 信息流里的点赞数依靠缓存 TTL 自然收敛，这里不主动失效。
func (s *Service) ToggleLike(ctx context.Context, accessToken string, postID int64) (*model.LikeResult, error) {
	if accessToken == "" {
		return nil, constant.NewUserError(constant.ErrUnauthenticated, "请先登录")
	}

	result, err := s.repo.ToggleLike(ctx, accessToken, postID)
	if err != nil {
		log.Printf("❌ [帖子] 切换点赞失败 (ID %d): %v", postID, err)
		return nil, constant.NewUserError(constant.ErrPlatform, "操作失败，请稍后再试")
	}
	return result, nil
}

// ListMine 返回当前用户发布的全部帖子（个人页使用）
func (s *Service) ListMine(ctx context.Context, userID string) ([]*model.Post, error) {
	return s.repo.ListByAuthor(ctx, userID)
}

func (s *Service) invalidateFeed(ctx context.Context) {
	if err := s.cache.Delete(ctx, constant.CacheKeyFeedLatest); err != nil {
		log.Printf("⚠️  [帖子] 失效信息流缓存失败: %v", err)
	}
}
