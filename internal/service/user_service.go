package service

import (
	"Vidstream/internal/api/dto"
	"Vidstream/internal/model"
	"Vidstream/internal/pkg/consts"
	"Vidstream/internal/pkg/redis"
	"Vidstream/internal/pkg/security"
	"Vidstream/internal/repository"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	Register(ctx context.Context, registerDTO *dto.RegisterDTO) (*dto.AuthUserDTO, error)
	Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (*dto.AuthUserDTO, error)
	Logout(ctx context.Context, token string) error
	GetAuthUser(ctx context.Context, userID primitive.ObjectID) (*dto.AuthUserDTO, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, updateDTO *dto.UpdateUserDTO) (*dto.AuthUserDTO, error)
	GetChannelProfile(ctx context.Context, channelID primitive.ObjectID, viewerID *primitive.ObjectID) (*dto.ChannelDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	subRepo  repository.SubscriptionRepo
}

func NewUserService(userRepo repository.UserRepo, subRepo repository.SubscriptionRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		subRepo:  subRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, registerDTO *dto.RegisterDTO) (*dto.AuthUserDTO, error) {
	findUser, err := s.userRepo.GetUserByUsername(ctx, registerDTO.Username)
	if err != nil {
		return nil, err
	}
	if findUser != nil {
		return nil, ErrUsernameExist
	}
	findUser, err = s.userRepo.GetUserByEmail(ctx, registerDTO.Email)
	if err != nil {
		return nil, err
	}
	if findUser != nil {
		return nil, ErrEmailExist
	}

	passwordHash, err := security.HashPassword(registerDTO.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username: registerDTO.Username,
		Email:    registerDTO.Email,
		Password: passwordHash,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return s.buildAuthUser(user)
}

func (s *UserServiceImpl) Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (*dto.AuthUserDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, credentialDTO.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err = security.CheckPasswordHash(credentialDTO.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}
	return s.buildAuthUser(user)
}

// Logout 将 token 签名拉黑，有效期与 token 剩余生命周期同阶
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetAuthUser(ctx context.Context, userID primitive.ObjectID) (*dto.AuthUserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	authDTO := &dto.AuthUserDTO{}
	if err = copier.Copy(authDTO, user); err != nil {
		return nil, err
	}
	authDTO.ID = user.ID.Hex()
	return authDTO, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID primitive.ObjectID, updateDTO *dto.UpdateUserDTO) (*dto.AuthUserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if updateDTO.Username != nil && *updateDTO.Username != user.Username {
		findUser, err := s.userRepo.GetUserByUsername(ctx, *updateDTO.Username)
		if err != nil {
			return nil, err
		}
		if findUser != nil {
			return nil, ErrUsernameExist
		}
		user.Username = *updateDTO.Username
	}
	if updateDTO.Email != nil && *updateDTO.Email != user.Email {
		findUser, err := s.userRepo.GetUserByEmail(ctx, *updateDTO.Email)
		if err != nil {
			return nil, err
		}
		if findUser != nil {
			return nil, ErrEmailExist
		}
		user.Email = *updateDTO.Email
	}
	if updateDTO.Password != nil {
		passwordHash, err := security.HashPassword(*updateDTO.Password)
		if err != nil {
			return nil, err
		}
		user.Password = passwordHash
	}
	if updateDTO.Avatar != nil {
		user.Avatar = *updateDTO.Avatar
	}
	if updateDTO.Cover != nil {
		user.Cover = *updateDTO.Cover
	}
	if updateDTO.ChannelDescription != nil {
		user.ChannelDescription = *updateDTO.ChannelDescription
	}

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	_ = redis.DeleteKey(ctx, consts.UserChannelInfoKey+user.ID.Hex())

	authDTO := &dto.AuthUserDTO{}
	if err = copier.Copy(authDTO, user); err != nil {
		return nil, err
	}
	authDTO.ID = user.ID.Hex()
	return authDTO, nil
}

// GetChannelProfile 频道主页信息走缓存，isSubscribed 相对访问者实时计算
func (s *UserServiceImpl) GetChannelProfile(ctx context.Context, channelID primitive.ObjectID, viewerID *primitive.ObjectID) (*dto.ChannelDTO, error) {
	channelDTO, err := s.getChannelInfo(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channelDTO == nil {
		return nil, ErrUserNotFound
	}

	if viewerID != nil && *viewerID != channelID {
		sub, err := s.subRepo.GetSubscription(ctx, *viewerID, channelID)
		if err != nil {
			return nil, err
		}
		channelDTO.IsSubscribed = sub != nil
	}
	return channelDTO, nil
}

func (s *UserServiceImpl) getChannelInfo(ctx context.Context, channelID primitive.ObjectID) (*dto.ChannelDTO, error) {
	key := consts.UserChannelInfoKey + channelID.Hex()
	cached, err := redis.GetValue(ctx, key)
	if err == nil && cached != "" {
		channelDTO := &dto.ChannelDTO{}
		if err = json.Unmarshal([]byte(cached), channelDTO); err == nil {
			return channelDTO, nil
		}
	}

	user, err := s.userRepo.GetUserById(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	channelDTO := &dto.ChannelDTO{}
	if err = copier.Copy(channelDTO, user); err != nil {
		return nil, err
	}
	channelDTO.ID = user.ID.Hex()

	if channelJson, err := json.Marshal(channelDTO); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(channelJson), time.Minute*10)
	}
	return channelDTO, nil
}

func (s *UserServiceImpl) buildAuthUser(user *model.User) (*dto.AuthUserDTO, error) {
	token, err := security.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}
	authDTO := &dto.AuthUserDTO{}
	if err = copier.Copy(authDTO, user); err != nil {
		return nil, err
	}
	authDTO.ID = user.ID.Hex()
	authDTO.Token = token
	return authDTO, nil
}
