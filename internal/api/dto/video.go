package dto

import "time"

// CreateVideoDTO 发布视频参数
type CreateVideoDTO struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
	VodVideoID  string `json:"vodVideoId" binding:"required"`
	Cover       string `json:"cover"`
}

// UpdateVideoDTO 更新视频参数
type UpdateVideoDTO struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Cover       *string `json:"cover"`
}

// VideoAuthorDTO 视频作者信息
type VideoAuthorDTO struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Avatar       string `json:"avatar"`
	IsSubscribed bool   `json:"isSubscribed"`
}

// VideoDTO 视频信息，isLiked/isDisliked 相对当前访问者
type VideoDTO struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	VodVideoID    string          `json:"vodVideoId"`
	Cover         string          `json:"cover"`
	LikesCount    int64           `json:"likesCount"`
	DislikesCount int64           `json:"dislikesCount"`
	CommentsCount int64           `json:"commentsCount"`
	IsLiked       bool            `json:"isLiked"`
	IsDisliked    bool            `json:"isDisliked"`
	User          *VideoAuthorDTO `json:"user,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// VideoListDTO 视频列表
type VideoListDTO struct {
	Videos      []*VideoDTO `json:"videos"`
	VideosCount int64       `json:"videosCount"`
}
