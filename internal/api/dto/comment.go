package dto

import "time"

// CreateCommentDTO 发表评论参数
type CreateCommentDTO struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

// CommentDTO 评论信息
type CommentDTO struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	User      *VideoAuthorDTO `json:"user,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CommentListDTO 评论列表
type CommentListDTO struct {
	Comments      []*CommentDTO `json:"comments"`
	CommentsCount int64         `json:"commentsCount"`
}
