package service

import (
	"Vidstream/internal/model"
	"Vidstream/internal/pkg/es"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存版仓储，测试无需外部依赖

type memUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (s *memUserRepo) GetUserById(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (s *memUserRepo) GetUserByIds(_ context.Context, ids []primitive.ObjectID) ([]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			clone := *user
			users = append(users, &clone)
		}
	}
	return users, nil
}

func (s *memUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *memUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *memUserRepo) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *memUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *memUserRepo) UpdateSubscribersCount(_ context.Context, id primitive.ObjectID, count int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[id]; ok {
		user.SubscribersCount = count
	}
	return nil
}

type memSubscriptionRepo struct {
	mu   sync.Mutex
	subs []*model.Subscription
}

func newMemSubscriptionRepo() *memSubscriptionRepo {
	return &memSubscriptionRepo{}
}

func (s *memSubscriptionRepo) GetSubscription(_ context.Context, userID, channelID primitive.ObjectID) (*model.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		if sub.UserID == userID && sub.ChannelID == channelID {
			clone := *sub
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *memSubscriptionRepo) CreateSubscription(_ context.Context, sub *model.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sub.ID.IsZero() {
		sub.ID = primitive.NewObjectID()
	}
	sub.CreatedAt = time.Now()
	clone := *sub
	s.subs = append(s.subs, &clone)
	return nil
}

func (s *memSubscriptionRepo) DeleteSubscription(_ context.Context, userID, channelID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.subs[:0]
	for _, sub := range s.subs {
		if sub.UserID == userID && sub.ChannelID == channelID {
			continue
		}
		kept = append(kept, sub)
	}
	s.subs = kept
	return nil
}

func (s *memSubscriptionRepo) ListByUser(_ context.Context, userID primitive.ObjectID) ([]*model.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subs := make([]*model.Subscription, 0)
	for _, sub := range s.subs {
		if sub.UserID == userID {
			clone := *sub
			subs = append(subs, &clone)
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].CreatedAt.After(subs[j].CreatedAt) })
	return subs, nil
}

func (s *memSubscriptionRepo) ListChannelIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	subs, _ := s.ListByUser(ctx, userID)
	ids := make([]primitive.ObjectID, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.ChannelID)
	}
	return ids, nil
}

func (s *memSubscriptionRepo) CountByChannel(_ context.Context, channelID primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, sub := range s.subs {
		if sub.ChannelID == channelID {
			count++
		}
	}
	return count, nil
}

type memVideoRepo struct {
	mu     sync.Mutex
	videos map[primitive.ObjectID]*model.Video
}

func newMemVideoRepo() *memVideoRepo {
	return &memVideoRepo{videos: make(map[primitive.ObjectID]*model.Video)}
}

func (s *memVideoRepo) GetVideoById(_ context.Context, id primitive.ObjectID) (*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	video, ok := s.videos[id]
	if !ok {
		return nil, nil
	}
	clone := *video
	return &clone, nil
}

func (s *memVideoRepo) GetVideosByIds(_ context.Context, ids []primitive.ObjectID) ([]*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	videos := make([]*model.Video, 0, len(ids))
	for _, id := range ids {
		if video, ok := s.videos[id]; ok {
			clone := *video
			videos = append(videos, &clone)
		}
	}
	return videos, nil
}

func (s *memVideoRepo) CreateVideo(_ context.Context, video *model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if video.ID.IsZero() {
		video.ID = primitive.NewObjectID()
	}
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now
	clone := *video
	s.videos[video.ID] = &clone
	return nil
}

func (s *memVideoRepo) UpdateVideo(_ context.Context, video *model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *video
	s.videos[video.ID] = &clone
	return nil
}

func (s *memVideoRepo) DeleteVideo(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.videos, id)
	return nil
}

func (s *memVideoRepo) listSorted(filter func(*model.Video) bool) []*model.Video {
	videos := make([]*model.Video, 0)
	for _, video := range s.videos {
		if filter(video) {
			clone := *video
			videos = append(videos, &clone)
		}
	}
	sort.Slice(videos, func(i, j int) bool { return videos[i].CreatedAt.After(videos[j].CreatedAt) })
	return videos
}

func paginate(videos []*model.Video, pageNum, pageSize int64) []*model.Video {
	start := (pageNum - 1) * pageSize
	if start >= int64(len(videos)) {
		return []*model.Video{}
	}
	end := start + pageSize
	if end > int64(len(videos)) {
		end = int64(len(videos))
	}
	return videos[start:end]
}

func (s *memVideoRepo) ListVideos(_ context.Context, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	videos := s.listSorted(func(*model.Video) bool { return true })
	return paginate(videos, pageNum, pageSize), int64(len(videos)), nil
}

func (s *memVideoRepo) ListByUser(_ context.Context, userID primitive.ObjectID, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	videos := s.listSorted(func(v *model.Video) bool { return v.UserID == userID })
	return paginate(videos, pageNum, pageSize), int64(len(videos)), nil
}

func (s *memVideoRepo) ListByUsers(_ context.Context, userIDs []primitive.ObjectID, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	idSet := make(map[primitive.ObjectID]struct{}, len(userIDs))
	for _, id := range userIDs {
		idSet[id] = struct{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	videos := s.listSorted(func(v *model.Video) bool {
		_, ok := idSet[v.UserID]
		return ok
	})
	return paginate(videos, pageNum, pageSize), int64(len(videos)), nil
}

func (s *memVideoRepo) UpdateCounts(_ context.Context, id primitive.ObjectID, likes, dislikes, comments int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if video, ok := s.videos[id]; ok {
		video.LikesCount = likes
		video.DislikesCount = dislikes
		video.CommentsCount = comments
	}
	return nil
}

type memVideoLikeRepo struct {
	mu    sync.Mutex
	likes []*model.VideoLike
}

func newMemVideoLikeRepo() *memVideoLikeRepo {
	return &memVideoLikeRepo{}
}

func (s *memVideoLikeRepo) GetReaction(_ context.Context, userID, videoID primitive.ObjectID) (*model.VideoLike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, like := range s.likes {
		if like.UserID == userID && like.VideoID == videoID {
			clone := *like
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *memVideoLikeRepo) CreateReaction(_ context.Context, like *model.VideoLike) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if like.ID.IsZero() {
		like.ID = primitive.NewObjectID()
	}
	like.CreatedAt = time.Now()
	clone := *like
	s.likes = append(s.likes, &clone)
	return nil
}

func (s *memVideoLikeRepo) UpdateReaction(_ context.Context, userID, videoID primitive.ObjectID, polarity int8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, like := range s.likes {
		if like.UserID == userID && like.VideoID == videoID {
			like.Like = polarity
			like.CreatedAt = time.Now()
		}
	}
	return nil
}

func (s *memVideoLikeRepo) DeleteReaction(_ context.Context, userID, videoID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.likes[:0]
	for _, like := range s.likes {
		if like.UserID == userID && like.VideoID == videoID {
			continue
		}
		kept = append(kept, like)
	}
	s.likes = kept
	return nil
}

func (s *memVideoLikeRepo) CountByVideo(_ context.Context, videoID primitive.ObjectID, polarity int8) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, like := range s.likes {
		if like.VideoID == videoID && like.Like == polarity {
			count++
		}
	}
	return count, nil
}

func (s *memVideoLikeRepo) ListVideoIDsByUser(_ context.Context, userID primitive.ObjectID, polarity int8, pageNum, pageSize int64) ([]primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]*model.VideoLike, 0)
	for _, like := range s.likes {
		if like.UserID == userID && like.Like == polarity {
			matched = append(matched, like)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	start := (pageNum - 1) * pageSize
	if start >= int64(len(matched)) {
		return []primitive.ObjectID{}, nil
	}
	end := start + pageSize
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	ids := make([]primitive.ObjectID, 0)
	for _, like := range matched[start:end] {
		ids = append(ids, like.VideoID)
	}
	return ids, nil
}

func (s *memVideoLikeRepo) CountByUser(_ context.Context, userID primitive.ObjectID, polarity int8) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, like := range s.likes {
		if like.UserID == userID && like.Like == polarity {
			count++
		}
	}
	return count, nil
}

func (s *memVideoLikeRepo) DeleteByVideo(_ context.Context, videoID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.likes[:0]
	for _, like := range s.likes {
		if like.VideoID == videoID {
			continue
		}
		kept = append(kept, like)
	}
	s.likes = kept
	return nil
}

type memCommentRepo struct {
	mu       sync.Mutex
	comments []*model.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{}
}

func (s *memCommentRepo) GetCommentById(_ context.Context, id primitive.ObjectID) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, comment := range s.comments {
		if comment.ID == id {
			clone := *comment
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *memCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	comment.CreatedAt = time.Now()
	clone := *comment
	s.comments = append(s.comments, &clone)
	return nil
}

func (s *memCommentRepo) DeleteComment(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.comments[:0]
	for _, comment := range s.comments {
		if comment.ID == id {
			continue
		}
		kept = append(kept, comment)
	}
	s.comments = kept
	return nil
}

func (s *memCommentRepo) ListByVideo(_ context.Context, videoID primitive.ObjectID, pageNum, pageSize int64) ([]*model.Comment, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]*model.Comment, 0)
	for _, comment := range s.comments {
		if comment.VideoID == videoID {
			clone := *comment
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	total := int64(len(matched))
	start := (pageNum - 1) * pageSize
	if start >= total {
		return []*model.Comment{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (s *memCommentRepo) CountByVideo(_ context.Context, videoID primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, comment := range s.comments {
		if comment.VideoID == videoID {
			count++
		}
	}
	return count, nil
}

func (s *memCommentRepo) DeleteByVideo(_ context.Context, videoID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.comments[:0]
	for _, comment := range s.comments {
		if comment.VideoID == videoID {
			continue
		}
		kept = append(kept, comment)
	}
	s.comments = kept
	return nil
}

// memVideoIndex 记录索引调用，搜索返回已索引文档的简单匹配
type memVideoIndex struct {
	mu   sync.Mutex
	docs map[string]*es.VideoES
}

func newMemVideoIndex() *memVideoIndex {
	return &memVideoIndex{docs: make(map[string]*es.VideoES)}
}

func (s *memVideoIndex) IndexVideo(_ context.Context, video *es.VideoES) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *video
	s.docs[video.ID] = &clone
	return nil
}

func (s *memVideoIndex) DeleteVideo(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

func (s *memVideoIndex) SearchVideos(_ context.Context, keyword string, from, size int) ([]*es.VideoES, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]*es.VideoES, 0)
	for _, doc := range s.docs {
		if containsFold(doc.Title, keyword) || containsFold(doc.Description, keyword) {
			clone := *doc
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	total := int64(len(matched))
	if from >= len(matched) {
		return []*es.VideoES{}, total, nil
	}
	end := from + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[from:end], total, nil
}

func containsFold(s, substr string) bool {
	return substr != "" && strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func hexToID(hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	return id, err == nil
}
