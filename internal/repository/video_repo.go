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

type VideoRepo interface {
	GetVideoById(ctx context.Context, id primitive.ObjectID) (*model.Video, error)
	GetVideosByIds(ctx context.Context, ids []primitive.ObjectID) ([]*model.Video, error)
	CreateVideo(ctx context.Context, video *model.Video) error
	UpdateVideo(ctx context.Context, video *model.Video) error
	DeleteVideo(ctx context.Context, id primitive.ObjectID) error
	ListVideos(ctx context.Context, pageNum, pageSize int64) ([]*model.Video, int64, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, pageNum, pageSize int64) ([]*model.Video, int64, error)
	ListByUsers(ctx context.Context, userIDs []primitive.ObjectID, pageNum, pageSize int64) ([]*model.Video, int64, error)
	UpdateCounts(ctx context.Context, id primitive.ObjectID, likes, dislikes, comments int64) error
}

type VideoRepoImpl struct {
	coll *mongo.Collection
}

func NewVideoRepo(db *mongo.Database) VideoRepo {
	return &VideoRepoImpl{coll: db.Collection(model.Video{}.CollectionName())}
}

func (s *VideoRepoImpl) GetVideoById(ctx context.Context, id primitive.ObjectID) (*model.Video, error) {
	video := &model.Video{}
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return video, nil
}

func (s *VideoRepoImpl) GetVideosByIds(ctx context.Context, ids []primitive.ObjectID) ([]*model.Video, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	videos := make([]*model.Video, 0, len(ids))
	if err = cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (s *VideoRepoImpl) CreateVideo(ctx context.Context, video *model.Video) error {
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now
	result, err := s.coll.InsertOne(ctx, video)
	if err != nil {
		return err
	}
	video.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *VideoRepoImpl) UpdateVideo(ctx context.Context, video *model.Video) error {
	video.UpdatedAt = time.Now()
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": video.ID}, video)
	return err
}

func (s *VideoRepoImpl) DeleteVideo(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// listPage 按发布时间倒序分页查询
func (s *VideoRepoImpl) listPage(ctx context.Context, filter bson.M, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((pageNum - 1) * pageSize).
		SetLimit(pageSize)
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	videos := make([]*model.Video, 0, pageSize)
	if err = cursor.All(ctx, &videos); err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func (s *VideoRepoImpl) ListVideos(ctx context.Context, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	return s.listPage(ctx, bson.M{}, pageNum, pageSize)
}

func (s *VideoRepoImpl) ListByUser(ctx context.Context, userID primitive.ObjectID, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	return s.listPage(ctx, bson.M{"user_id": userID}, pageNum, pageSize)
}

func (s *VideoRepoImpl) ListByUsers(ctx context.Context, userIDs []primitive.ObjectID, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	if len(userIDs) == 0 {
		return []*model.Video{}, 0, nil
	}
	return s.listPage(ctx, bson.M{"user_id": bson.M{"$in": userIDs}}, pageNum, pageSize)
}

// UpdateCounts 全量覆盖三个计数字段，不做自增
func (s *VideoRepoImpl) UpdateCounts(ctx context.Context, id primitive.ObjectID, likes, dislikes, comments int64) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"likes_count":    likes,
			"dislikes_count": dislikes,
			"comments_count": comments,
			"updated_at":     time.Now(),
		}})
	return err
}
