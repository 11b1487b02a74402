package service

import (
	"Vidstream/internal/model"
	"context"
	"errors"
	"testing"
)

type testEnv struct {
	userRepo  *memUserRepo
	subRepo   *memSubscriptionRepo
	videoRepo *memVideoRepo
	likeRepo  *memVideoLikeRepo
	cmtRepo   *memCommentRepo
	index     *memVideoIndex

	counterSvc CounterService
	userSvc    UserService
	subSvc     SubscriptionService
	videoSvc   VideoService
	actionSvc  VideoActionService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		userRepo:  newMemUserRepo(),
		subRepo:   newMemSubscriptionRepo(),
		videoRepo: newMemVideoRepo(),
		likeRepo:  newMemVideoLikeRepo(),
		cmtRepo:   newMemCommentRepo(),
		index:     newMemVideoIndex(),
	}
	env.counterSvc = NewCounterService(env.userRepo, env.subRepo, env.videoRepo, env.likeRepo, env.cmtRepo, env.index)
	env.userSvc = NewUserService(env.userRepo, env.subRepo)
	env.subSvc = NewSubscriptionService(env.subRepo, env.userRepo, env.counterSvc, env.userSvc)
	env.videoSvc = NewVideoService(env.videoRepo, env.userRepo, env.subRepo, env.likeRepo, env.cmtRepo, env.index)
	env.actionSvc = NewVideoActionService(env.videoRepo, env.likeRepo, env.cmtRepo, env.userRepo, env.counterSvc, env.videoSvc)
	return env
}

func (env *testEnv) addUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Email:    username + "@test.local",
		Password: "x",
	}
	if err := env.userRepo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (env *testEnv) addVideo(t *testing.T, owner *model.User, title string) *model.Video {
	t.Helper()
	video := &model.Video{
		UserID: owner.ID,
		Title:  title,
	}
	if err := env.videoRepo.CreateVideo(context.Background(), video); err != nil {
		t.Fatalf("create video: %v", err)
	}
	return video
}

func TestSubscribeSelf(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser(t, "alice")

	_, err := env.subSvc.Subscribe(context.Background(), alice.ID, alice.ID)
	if !errors.Is(err, ErrSubscribeSelf) {
		t.Fatalf("expected ErrSubscribeSelf, got %v", err)
	}
}

func TestSubscribeUnknownChannel(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser(t, "alice")
	ghost := env.addUser(t, "ghost")
	delete(env.userRepo.users, ghost.ID)

	_, err := env.subSvc.Subscribe(context.Background(), alice.ID, ghost.ID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSubscribeUpdatesCountAndIsIdempotent(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")

	channel, err := env.subSvc.Subscribe(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if !channel.IsSubscribed {
		t.Fatalf("expected isSubscribed true after subscribe")
	}
	if channel.SubscribersCount != 1 {
		t.Fatalf("expected subscribersCount 1, got %d", channel.SubscribersCount)
	}

	// 重复订阅不产生第二条记录
	channel, err = env.subSvc.Subscribe(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("subscribe twice: %v", err)
	}
	if channel.SubscribersCount != 1 {
		t.Fatalf("expected subscribersCount still 1, got %d", channel.SubscribersCount)
	}
}

func TestUnsubscribeRestoresCount(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser(t, "alice")
	carol := env.addUser(t, "carol")
	bob := env.addUser(t, "bob")

	if _, err := env.subSvc.Subscribe(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("subscribe alice: %v", err)
	}
	if _, err := env.subSvc.Subscribe(context.Background(), carol.ID, bob.ID); err != nil {
		t.Fatalf("subscribe carol: %v", err)
	}

	channel, err := env.subSvc.Unsubscribe(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if channel.IsSubscribed {
		t.Fatalf("expected isSubscribed false after unsubscribe")
	}
	if channel.SubscribersCount != 1 {
		t.Fatalf("expected subscribersCount 1 after unsubscribe, got %d", channel.SubscribersCount)
	}

	// 再退订一次不会把计数减成负数
	channel, err = env.subSvc.Unsubscribe(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("unsubscribe twice: %v", err)
	}
	if channel.SubscribersCount != 1 {
		t.Fatalf("expected subscribersCount still 1, got %d", channel.SubscribersCount)
	}
}

func TestListSubscriptions(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")
	carol := env.addUser(t, "carol")

	if _, err := env.subSvc.Subscribe(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("subscribe bob: %v", err)
	}
	if _, err := env.subSvc.Subscribe(context.Background(), alice.ID, carol.ID); err != nil {
		t.Fatalf("subscribe carol: %v", err)
	}

	channels, err := env.subSvc.ListSubscriptions(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("list subscriptions: %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", len(channels))
	}
}

func TestIsSubscribedFlip(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")

	channel, err := env.userSvc.GetChannelProfile(context.Background(), bob.ID, &alice.ID)
	if err != nil {
		t.Fatalf("get channel: %v", err)
	}
	if channel.IsSubscribed {
		t.Fatalf("expected isSubscribed false before subscribe")
	}

	if _, err = env.subSvc.Subscribe(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	channel, err = env.userSvc.GetChannelProfile(context.Background(), bob.ID, &alice.ID)
	if err != nil {
		t.Fatalf("get channel: %v", err)
	}
	if !channel.IsSubscribed {
		t.Fatalf("expected isSubscribed true after subscribe")
	}

	// 匿名访问者不带订阅状态
	channel, err = env.userSvc.GetChannelProfile(context.Background(), bob.ID, nil)
	if err != nil {
		t.Fatalf("get channel anonymous: %v", err)
	}
	if channel.IsSubscribed {
		t.Fatalf("expected isSubscribed false for anonymous viewer")
	}
}
