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

type VideoLikeRepo interface {
	GetReaction(ctx context.Context, userID, videoID primitive.ObjectID) (*model.VideoLike, error)
	CreateReaction(ctx context.Context, like *model.VideoLike) error
	UpdateReaction(ctx context.Context, userID, videoID primitive.ObjectID, polarity int8) error
	DeleteReaction(ctx context.Context, userID, videoID primitive.ObjectID) error
	CountByVideo(ctx context.Context, videoID primitive.ObjectID, polarity int8) (int64, error)
	ListVideoIDsByUser(ctx context.Context, userID primitive.ObjectID, polarity int8, pageNum, pageSize int64) ([]primitive.ObjectID, error)
	CountByUser(ctx context.Context, userID primitive.ObjectID, polarity int8) (int64, error)
	DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) error
}

type VideoLikeRepoImpl struct {
	coll *mongo.Collection
}

func NewVideoLikeRepo(db *mongo.Database) VideoLikeRepo {
	return &VideoLikeRepoImpl{coll: db.Collection(model.VideoLike{}.CollectionName())}
}

func (s *VideoLikeRepoImpl) GetReaction(ctx context.Context, userID, videoID primitive.ObjectID) (*model.VideoLike, error) {
	like := &model.VideoLike{}
	err := s.coll.FindOne(ctx, bson.M{"user_id": userID, "video_id": videoID}).Decode(like)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return like, nil
}

func (s *VideoLikeRepoImpl) CreateReaction(ctx context.Context, like *model.VideoLike) error {
	like.CreatedAt = time.Now()
	result, err := s.coll.InsertOne(ctx, like)
	if err != nil {
		return err
	}
	like.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *VideoLikeRepoImpl) UpdateReaction(ctx context.Context, userID, videoID primitive.ObjectID, polarity int8) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"user_id": userID, "video_id": videoID},
		bson.M{"$set": bson.M{"like": polarity, "created_at": time.Now()}})
	return err
}

func (s *VideoLikeRepoImpl) DeleteReaction(ctx context.Context, userID, videoID primitive.ObjectID) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"user_id": userID, "video_id": videoID})
	return err
}

func (s *VideoLikeRepoImpl) CountByVideo(ctx context.Context, videoID primitive.ObjectID, polarity int8) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"video_id": videoID, "like": polarity})
}

// ListVideoIDsByUser 按表态时间倒序分页返回视频 ID
func (s *VideoLikeRepoImpl) ListVideoIDsByUser(ctx context.Context, userID primitive.ObjectID, polarity int8, pageNum, pageSize int64) ([]primitive.ObjectID, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((pageNum - 1) * pageSize).
		SetLimit(pageSize)
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID, "like": polarity}, opts)
	if err != nil {
		return nil, err
	}
	likes := make([]*model.VideoLike, 0, pageSize)
	if err = cursor.All(ctx, &likes); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(likes))
	for _, like := range likes {
		ids = append(ids, like.VideoID)
	}
	return ids, nil
}

func (s *VideoLikeRepoImpl) CountByUser(ctx context.Context, userID primitive.ObjectID, polarity int8) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"user_id": userID, "like": polarity})
}

func (s *VideoLikeRepoImpl) DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{"video_id": videoID})
	return err
}
