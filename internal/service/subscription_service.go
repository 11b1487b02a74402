package service

import (
	"Vidstream/internal/api/dto"
	"Vidstream/internal/model"
	"Vidstream/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, subscriberID, channelID primitive.ObjectID) (*dto.ChannelDTO, error)
	Unsubscribe(ctx context.Context, subscriberID, channelID primitive.ObjectID) (*dto.ChannelDTO, error)
	ListSubscriptions(ctx context.Context, userID primitive.ObjectID) ([]*dto.SubscribedChannelDTO, error)
	IsSubscribed(ctx context.Context, userID, channelID primitive.ObjectID) (bool, error)
}

type SubscriptionServiceImpl struct {
	subRepo    repository.SubscriptionRepo
	userRepo   repository.UserRepo
	counterSvc CounterService
	userSvc    UserService
}

func NewSubscriptionService(
	subRepo repository.SubscriptionRepo,
	userRepo repository.UserRepo,
	counterSvc CounterService,
	userSvc UserService,
) SubscriptionService {
	return &SubscriptionServiceImpl{
		subRepo:    subRepo,
		userRepo:   userRepo,
		counterSvc: counterSvc,
		userSvc:    userSvc,
	}
}

// Subscribe 重复订阅视为幂等
func (s *SubscriptionServiceImpl) Subscribe(ctx context.Context, subscriberID, channelID primitive.ObjectID) (*dto.ChannelDTO, error) {
	if subscriberID == channelID {
		return nil, ErrSubscribeSelf
	}
	channel, err := s.userRepo.GetUserById(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, ErrUserNotFound
	}

	sub, err := s.subRepo.GetSubscription(ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		sub = &model.Subscription{
			UserID:    subscriberID,
			ChannelID: channelID,
		}
		if err = s.subRepo.CreateSubscription(ctx, sub); err != nil {
			return nil, err
		}
	}
	s.counterSvc.SyncUser(ctx, channelID)

	return s.userSvc.GetChannelProfile(ctx, channelID, &subscriberID)
}

// Unsubscribe 未订阅时直接返回当前频道信息
func (s *SubscriptionServiceImpl) Unsubscribe(ctx context.Context, subscriberID, channelID primitive.ObjectID) (*dto.ChannelDTO, error) {
	if subscriberID == channelID {
		return nil, ErrSubscribeSelf
	}
	channel, err := s.userRepo.GetUserById(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, ErrUserNotFound
	}

	sub, err := s.subRepo.GetSubscription(ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	if sub != nil {
		if err = s.subRepo.DeleteSubscription(ctx, subscriberID, channelID); err != nil {
			return nil, err
		}
	}
	s.counterSvc.SyncUser(ctx, channelID)

	return s.userSvc.GetChannelProfile(ctx, channelID, &subscriberID)
}

func (s *SubscriptionServiceImpl) ListSubscriptions(ctx context.Context, userID primitive.ObjectID) ([]*dto.SubscribedChannelDTO, error) {
	channelIDs, err := s.subRepo.ListChannelIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(channelIDs) == 0 {
		return []*dto.SubscribedChannelDTO{}, nil
	}

	users, err := s.userRepo.GetUserByIds(ctx, channelIDs)
	if err != nil {
		return nil, err
	}
	userMap := make(map[primitive.ObjectID]*model.User, len(users))
	for _, user := range users {
		userMap[user.ID] = user
	}

	// 保持订阅时间倒序
	channels := make([]*dto.SubscribedChannelDTO, 0, len(channelIDs))
	for _, id := range channelIDs {
		user, ok := userMap[id]
		if !ok {
			continue
		}
		channels = append(channels, &dto.SubscribedChannelDTO{
			ID:       user.ID.Hex(),
			Username: user.Username,
			Avatar:   user.Avatar,
		})
	}
	return channels, nil
}

func (s *SubscriptionServiceImpl) IsSubscribed(ctx context.Context, userID, channelID primitive.ObjectID) (bool, error) {
	sub, err := s.subRepo.GetSubscription(ctx, userID, channelID)
	if err != nil {
		return false, err
	}
	return sub != nil, nil
}
