package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Video struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"user_id" json:"userId"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	VodVideoID    string             `bson:"vod_video_id" json:"vodVideoId"` // 外部视频托管服务的媒体引用
	Cover         string             `bson:"cover" json:"cover"`
	LikesCount    int64              `bson:"likes_count" json:"likesCount"`
	DislikesCount int64              `bson:"dislikes_count" json:"dislikesCount"`
	CommentsCount int64              `bson:"comments_count" json:"commentsCount"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (Video) CollectionName() string {
	return "videos"
}
