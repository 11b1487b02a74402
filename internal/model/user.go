package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username           string             `bson:"username" json:"username"`
	Email              string             `bson:"email" json:"email"`
	Password           string             `bson:"password" json:"-"`
	Avatar             string             `bson:"avatar" json:"avatar"`
	Cover              string             `bson:"cover" json:"cover"`
	ChannelDescription string             `bson:"channel_description" json:"channelDescription"`
	SubscribersCount   int64              `bson:"subscribers_count" json:"subscribersCount"` // 派生值，由订阅边重算
	CreatedAt          time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (User) CollectionName() string {
	return "users"
}
