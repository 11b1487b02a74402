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

type CommentRepo interface {
	GetCommentById(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	DeleteComment(ctx context.Context, id primitive.ObjectID) error
	ListByVideo(ctx context.Context, videoID primitive.ObjectID, pageNum, pageSize int64) ([]*model.Comment, int64, error)
	CountByVideo(ctx context.Context, videoID primitive.ObjectID) (int64, error)
	DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) error
}

type CommentRepoImpl struct {
	coll *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &CommentRepoImpl{coll: db.Collection(model.Comment{}.CollectionName())}
}

func (s *CommentRepoImpl) GetCommentById(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	comment := &model.Comment{}
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return comment, nil
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	comment.CreatedAt = time.Now()
	result, err := s.coll.InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	comment.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ListByVideo 按发表时间倒序分页返回评论
func (s *CommentRepoImpl) ListByVideo(ctx context.Context, videoID primitive.ObjectID, pageNum, pageSize int64) ([]*model.Comment, int64, error) {
	filter := bson.M{"video_id": videoID}
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
	comments := make([]*model.Comment, 0, pageSize)
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (s *CommentRepoImpl) CountByVideo(ctx context.Context, videoID primitive.ObjectID) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"video_id": videoID})
}

func (s *CommentRepoImpl) DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{"video_id": videoID})
	return err
}
