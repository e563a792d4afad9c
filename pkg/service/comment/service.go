/*
 * @Description: 评论服务（发表、编辑、按帖子组装评论树）
 * @Author: 安知鱼
 * @Date: 2026-02-14 11:05:50
 * @LastEditTime: 2026-03-08 22:40:19
 * @LastEditors: 安知鱼
 */
package comment

import (
	"context"
	"errors"
	"log"

	"github.com/anzhiyu-c/qingyu-board/internal/pkg/validate"
	"github.com/anzhiyu-c/qingyu-board/pkg/constant"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-board/pkg/domain/repository"
	"github.com/anzhiyu-c/qingyu-board/pkg/service/utility"
)

const msgBadComment = "评论长度需在 1 到 1000 个字符之间"

// Service 负责评论相关的业务编排
type Service struct {
	repo  repository.CommentRepository
	cache utility.CacheService
}

func NewService(repo repository.CommentRepository, cache utility.CacheService) *Service {
	return &Service{repo: repo, cache: cache}
}

// Create 发表评论或回复。
// parentID 为 nil 时发根评论；否则校验父评论存在、属于同一帖子
// 且本身是根评论（评论树封顶两层）。
func (s *Service) Create(ctx context.Context, accessToken, userID, userName string, postID int64, parentID *int64, content string) (*model.Comment, error) {
	if accessToken == "" {
		return nil, constant.NewUserError(constant.ErrUnauthenticated, "请先登录")
	}

	content = validate.NormalizeComment(content)
	if !validate.IsValidComment(content) {
		return nil, constant.NewUserError(constant.ErrValidation, msgBadComment)
	}

	placement := model.TopLevel()
	if parentID != nil {
		parent, err := s.repo.FindByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, constant.ErrNotFound) {
				return nil, constant.NewUserError(constant.ErrValidation, "回复的评论不存在")
			}
			return nil, err
		}
		placement, err = model.ReplyTo(parent, postID)
		if err != nil {
			return nil, constant.NewUserError(constant.ErrCommentDepth, constant.ErrCommentDepth.Error())
		}
	}

	fields := &model.NewCommentFields{
		PostID:         postID,
		ParentID:       placement.ParentID(),
		Content:        content,
		AuthorID:       userID,
		AuthorUsername: userName,
	}
	created, err := s.repo.Insert(ctx, accessToken, fields)
	if err != nil {
		log.Printf("❌ [评论] 发表失败 (帖子 %d): %v", postID, err)
		return nil, constant.NewUserError(constant.ErrPlatform, "评论失败，请稍后再试")
	}

	// 信息流展示评论相关信息，发表评论后同样失效缓存
	s.invalidateFeed(ctx)
	return created, nil
}

// Update 编辑评论内容。评论必须属于指定的帖子，且只有作者本人可以编辑。
// 本地校验全部通过后才访问平台。
func (s *Service) Update(ctx context.Context, accessToken, userID string, postID, id int64, content string) (*model.CommentUpdate, error) {
	if accessToken == "" {
		return nil, constant.NewUserError(constant.ErrUnauthenticated, "请先登录")
	}

	content = validate.NormalizeComment(content)
	if !validate.IsValidComment(content) {
		return nil, constant.NewUserError(constant.ErrValidation, msgBadComment)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.PostID != postID {
		return nil, constant.NewUserError(constant.ErrForbidden, "评论不属于该帖子")
	}
	if existing.AuthorID != userID {
		return nil, constant.NewUserError(constant.ErrForbidden, "只能编辑自己的评论")
	}

	updated, err := s.repo.UpdateContent(ctx, accessToken, id, content)
	if err != nil {
		log.Printf("❌ [评论] 编辑失败 (ID %d): %v", id, err)
		return nil, constant.NewUserError(constant.ErrPlatform, "保存失败，请稍后再试")
	}
	return updated, nil
}

// ListThread 返回帖子的整棵评论树（根评论列表 + 各根下的回复）
func (s *Service) ListThread(ctx context.Context, postID int64) (*model.CommentThread, error) {
	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return model.AssembleThread(comments), nil
}

func (s *Service) invalidateFeed(ctx context.Context) {
	if err := s.cache.Delete(ctx, constant.CacheKeyFeedLatest); err != nil {
		log.Printf("⚠️  [评论] 失效信息流缓存失败: %v", err)
	}
}
