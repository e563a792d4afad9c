package model

import "testing"

func TestReplyTo(t *testing.T) {
	parent10 := int64(10)

	tests := []struct {
		name    string
		parent  *Comment
		postID  int64
		wantErr bool
	}{
		{"回复根评论", &Comment{ID: 10, PostID: 7}, 7, false},
		{"父评论为nil", nil, 7, true},
		{"父评论属于其他帖子", &Comment{ID: 10, PostID: 8}, 7, true},
		{"父评论本身是回复", &Comment{ID: 11, PostID: 7, ParentID: &parent10}, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placement, err := ReplyTo(tt.parent, tt.postID)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ReplyTo() 应返回错误")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReplyTo() 意外错误: %v", err)
			}
			if placement.ParentID() == nil || *placement.ParentID() != tt.parent.ID {
				t.Errorf("ParentID() = %v, want %d", placement.ParentID(), tt.parent.ID)
			}
		})
	}
}

func TestTopLevel(t *testing.T) {
	if TopLevel().ParentID() != nil {
		t.Error("根评论位置的 ParentID 应为 nil")
	}
}

func TestAssembleThread(t *testing.T) {
	p1, p2 := int64(1), int64(2)
	comments := []*Comment{
		{ID: 1},
		{ID: 3, ParentID: &p1},
		{ID: 2},
		{ID: 4, ParentID: &p2},
		{ID: 5, ParentID: &p1},
	}

	thread := AssembleThread(comments)

	if len(thread.TopLevel) != 2 {
		t.Fatalf("根评论数 = %d, want 2", len(thread.TopLevel))
	}
	if thread.TopLevel[0].ID != 1 || thread.TopLevel[1].ID != 2 {
		t.Errorf("根评论顺序错误: %v, %v", thread.TopLevel[0].ID, thread.TopLevel[1].ID)
	}
	if got := thread.Replies[1]; len(got) != 2 || got[0].ID != 3 || got[1].ID != 5 {
		t.Errorf("根评论1的回复组装错误")
	}
	if got := thread.Replies[2]; len(got) != 1 || got[0].ID != 4 {
		t.Errorf("根评论2的回复组装错误")
	}
}

func TestAssembleThread_空列表(t *testing.T) {
	thread := AssembleThread(nil)
	if len(thread.TopLevel) != 0 || len(thread.Replies) != 0 {
		t.Error("空输入应得到空的评论树")
	}
}
