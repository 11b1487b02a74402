package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription 订阅边：user_id 订阅 channel_id，(user_id, channel_id) 唯一
type Subscription struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	ChannelID primitive.ObjectID `bson:"channel_id" json:"channelId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

func (Subscription) CollectionName() string {
	return "subscriptions"
}
