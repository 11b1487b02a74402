package repository

import (
	"Vidstream/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubscriptionRepo interface {
	GetSubscription(ctx context.Context, userID, channelID primitive.ObjectID) (*model.Subscription, error)
	CreateSubscription(ctx context.Context, sub *model.Subscription) error
	DeleteSubscription(ctx context.Context, userID, channelID primitive.ObjectID) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Subscription, error)
	ListChannelIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)
	CountByChannel(ctx context.Context, channelID primitive.ObjectID) (int64, error)
}

type SubscriptionRepoImpl struct {
	coll *mongo.Collection
}

func NewSubscriptionRepo(db *mongo.Database) SubscriptionRepo {
	return &SubscriptionRepoImpl{coll: db.Collection(model.Subscription{}.CollectionName())}
}

func (s *SubscriptionRepoImpl) GetSubscription(ctx context.Context, userID, channelID primitive.ObjectID) (*model.Subscription, error) {
	sub := &model.Subscription{}
	err := s.coll.FindOne(ctx, bson.M{"user_id": userID, "channel_id": channelID}).Decode(sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionRepoImpl) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	sub.CreatedAt = time.Now()
	result, err := s.coll.InsertOne(ctx, sub)
	if err != nil {
		return err
	}
	sub.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *SubscriptionRepoImpl) DeleteSubscription(ctx context.Context, userID, channelID primitive.ObjectID) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"user_id": userID, "channel_id": channelID})
	return err
}

// ListByUser 按订阅时间倒序返回用户的全部订阅
func (s *SubscriptionRepoImpl) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Subscription, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	subs := make([]*model.Subscription, 0)
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *SubscriptionRepoImpl) ListChannelIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	subs, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.ChannelID)
	}
	return ids, nil
}

func (s *SubscriptionRepoImpl) CountByChannel(ctx context.Context, channelID primitive.ObjectID) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"channel_id": channelID})
}
