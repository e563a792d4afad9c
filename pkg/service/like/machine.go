/*
 * @Description: 点赞按钮的乐观更新状态机
 * @Author: 安知鱼
 * @Date: 2026-02-14 09:40:27
 * @LastEditTime: 2026-03-08 22:01:44
 * @LastEditors: 安知鱼
 */
package like

import (
	"context"
	"sync"

	"github.com/anzhiyu-c/qingyu-board/pkg/domain/model"
)

// Outcome 是一次点击的结局
type Outcome int

const (
	// OutcomeIgnored 表示上一次提交还在途，本次点击被忽略
	OutcomeIgnored Outcome = iota
	// OutcomeCommitted 表示提交成功，本地状态已对齐服务端权威值
	OutcomeCommitted
	// OutcomeRolledBack 表示提交失败，本地状态已回滚到点击前
	OutcomeRolledBack
)

// CommitFunc 把翻转提交到服务端，返回权威的点赞状态与计数
type CommitFunc func(ctx context.Context) (*model.LikeResult, error)

// Button 模拟一个（帖子，用户）对上的点赞按钮：
// 点击先本地翻转（点赞数立即 ±1，减法下限为0），再异步提交；
// 提交在途期间的重复点击被忽略；成功后以服务端返回值为准，
// 失败则回滚到点击前的快照。
type Button struct {
	mu      sync.Mutex
	pending bool
	liked   bool
	count   int
}

// NewButton 用服务端渲染时的已知状态初始化按钮
func NewButton(liked bool, count int) *Button {
	if count < 0 {
		count = 0
	}
	return &Button{liked: liked, count: count}
}

// Snapshot 返回当前展示状态
func (b *Button) Snapshot() (liked bool, count int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.liked, b.count
}

// Toggle 处理一次点击。
// 乐观翻转在提交前就生效，调用方拿到的 Snapshot 始终是应展示的状态。
func (b *Button) Toggle(ctx context.Context, commit CommitFunc) Outcome {
	b.mu.Lock()
	if b.pending {
		b.mu.Unlock()
		return OutcomeIgnored
	}
	prevLiked, prevCount := b.liked, b.count

	b.liked = !b.liked
	if b.liked {
		b.count++
	} else if b.count > 0 {
		b.count--
	}
	b.pending = true
	b.mu.Unlock()

	result, err := commit(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = false
	if err != nil {
		b.liked, b.count = prevLiked, prevCount
		return OutcomeRolledBack
	}

	// 以服务端权威值为准，覆盖乐观估计
	b.liked = result.Liked
	if result.Likes >= 0 {
		b.count = result.Likes
	} else {
		b.count = 0
	}
	return OutcomeCommitted
}
