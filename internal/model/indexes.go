package model

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes 建立各集合的索引。
// 订阅边与反应边的 (主体, 客体) 唯一索引保证并发下同一对至多一条边。
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(User{}.CollectionName()).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return err
	}

	subIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "channel_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "channel_id", Value: 1}}},
	}
	if _, err := db.Collection(Subscription{}.CollectionName()).Indexes().CreateMany(ctx, subIndexes); err != nil {
		return err
	}

	videoIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := db.Collection(Video{}.CollectionName()).Indexes().CreateMany(ctx, videoIndexes); err != nil {
		return err
	}

	likeIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "video_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "video_id", Value: 1}, {Key: "like", Value: 1}}},
	}
	if _, err := db.Collection(VideoLike{}.CollectionName()).Indexes().CreateMany(ctx, likeIndexes); err != nil {
		return err
	}

	commentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "video_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := db.Collection(Comment{}.CollectionName()).Indexes().CreateMany(ctx, commentIndexes); err != nil {
		return err
	}

	return nil
}
