package repository

import (
	"Vidstream/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetUserByIds(ctx context.Context, ids []primitive.ObjectID) ([]*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error
	UpdateSubscribersCount(ctx context.Context, id primitive.ObjectID, count int64) error
}

type UserRepoImpl struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &UserRepoImpl{coll: db.Collection(model.User{}.CollectionName())}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	user := &model.User{}
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *UserRepoImpl) GetUserByIds(ctx context.Context, ids []primitive.ObjectID) ([]*model.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	users := make([]*model.User, 0, len(ids))
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	result, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now()
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	return err
}

// UpdateSubscribersCount 全量覆盖粉丝数，不做自增
func (s *UserRepoImpl) UpdateSubscribersCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"subscribers_count": count, "updated_at": time.Now()}})
	return err
}
