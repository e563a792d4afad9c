/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 11:02:51
 * @LastEditTime: 2026-03-08 22:35:10
 * @LastEditors: 安知鱼
 */
package model

import (
	"time"

	"github.com/anzhiyu-c/qingyu-board/pkg/constant"
)

// Comment 是评论的核心领域模型。
// 评论树最深两层：根评论，以及对根评论的直接回复。
// AuthorUsername 同样是写入时的昵称快照。
type Comment struct {
	ID             int64      `json:"id"`
	PostID         int64      `json:"post_id"`
	ParentID       *int64     `json:"parent_id"`
	Content        string     `json:"content"`
	AuthorID       string     `json:"author_id"`
	AuthorUsername string     `json:"author_username"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// IsTopLevel 检查是否为根评论
func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}

// Placement 表示一条新评论在评论树中的位置。
// 只能通过 TopLevel / ReplyTo 构造，回复一条回复在类型上就表达不出来。
type Placement struct {
	parentID *int64
}

// TopLevel 构造根评论位置
func TopLevel() Placement {
	return Placement{}
}

// ReplyTo 构造对 parent 的回复位置。
// parent 必须属于同一帖子且本身是根评论，否则返回深度错误。
func ReplyTo(parent *Comment, postID int64) (Placement, error) {
	if parent == nil || parent.PostID != postID || !parent.IsTopLevel() {
		return Placement{}, constant.ErrCommentDepth
	}
	id := parent.ID
	return Placement{parentID: &id}, nil
}

// ParentID 返回父评论ID；根评论返回 nil
func (p Placement) ParentID() *int64 {
	return p.parentID
}

// NewCommentFields 是创建评论时写入平台的列集合
type NewCommentFields struct {
	PostID         int64  `json:"post_id"`
	ParentID       *int64 `json:"parent_id"`
	Content        string `json:"content"`
	AuthorID       string `json:"author_id"`
	AuthorUsername string `json:"author_username"`
}

// CommentUpdate 是编辑评论后返回给前端的最小视图
type CommentUpdate struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentThread 是帖子详情页使用的评论树视图。
// 深度封顶为2，根列表 + 父ID到直接回复的映射足以渲染整棵树。
type CommentThread struct {
	TopLevel []*Comment           `json:"top_level"`
	Replies  map[int64][]*Comment `json:"replies"`
}

// AssembleThread 把按创建时间升序排列的扁平评论列表分组为评论树。
// 单次线性扫描，回复保持输入顺序。
func AssembleThread(comments []*Comment) *CommentThread {
	thread := &CommentThread{
		TopLevel: make([]*Comment, 0, len(comments)),
		Replies:  make(map[int64][]*Comment),
	}
	for _, c := range comments {
		if c.IsTopLevel() {
			thread.TopLevel = append(thread.TopLevel, c)
			continue
		}
		thread.Replies[*c.ParentID] = append(thread.Replies[*c.ParentID], c)
	}
	return thread
}
