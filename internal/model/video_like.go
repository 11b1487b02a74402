package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 反应边的极性，同一 (user_id, video_id) 至多一条边
const (
	PolarityLike    int8 = 1
	PolarityDislike int8 = -1
)

type VideoLike struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	VideoID   primitive.ObjectID `bson:"video_id" json:"videoId"`
	Like      int8               `bson:"like" json:"like"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

func (VideoLike) CollectionName() string {
	return "video_likes"
}
