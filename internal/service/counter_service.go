package service

import (
	"Vidstream/internal/model"
	"Vidstream/internal/pkg/consts"
	"Vidstream/internal/pkg/es"
	"Vidstream/internal/pkg/redis"
	"Vidstream/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// CounterService 负责冗余计数的全量重算，计数永远由边表重新统计得出。
// Sync* 在写路径上调用，先落脏集再重算，失败交给定时任务兜底；
// Resync* 是纯重算，供定时任务消费脏集时使用。
type CounterService interface {
	SyncUser(ctx context.Context, channelID primitive.ObjectID)
	SyncVideo(ctx context.Context, videoID primitive.ObjectID)
	ResyncUser(ctx context.Context, channelID primitive.ObjectID) error
	ResyncVideo(ctx context.Context, videoID primitive.ObjectID) error
}

type CounterServiceImpl struct {
	userRepo  repository.UserRepo
	subRepo   repository.SubscriptionRepo
	videoRepo repository.VideoRepo
	likeRepo  repository.VideoLikeRepo
	cmtRepo   repository.CommentRepo
	esRepo    es.VideoRepo
}

func NewCounterService(
	userRepo repository.UserRepo,
	subRepo repository.SubscriptionRepo,
	videoRepo repository.VideoRepo,
	likeRepo repository.VideoLikeRepo,
	cmtRepo repository.CommentRepo,
	esRepo es.VideoRepo,
) CounterService {
	return &CounterServiceImpl{
		userRepo:  userRepo,
		subRepo:   subRepo,
		videoRepo: videoRepo,
		likeRepo:  likeRepo,
		cmtRepo:   cmtRepo,
		esRepo:    esRepo,
	}
}

func (s *CounterServiceImpl) SyncUser(ctx context.Context, channelID primitive.ObjectID) {
	if err := redis.SAdd(ctx, consts.UserDirtyKey, channelID.Hex()); err != nil {
		log.WarnContext(ctx, "mark user dirty error", "channel_id", channelID.Hex(), "err", err)
	}
	if err := s.ResyncUser(ctx, channelID); err != nil {
		log.ErrorContext(ctx, "resync user counters error", "channel_id", channelID.Hex(), "err", err)
	}
}

func (s *CounterServiceImpl) SyncVideo(ctx context.Context, videoID primitive.ObjectID) {
	if err := redis.SAdd(ctx, consts.VideoDirtyKey, videoID.Hex()); err != nil {
		log.WarnContext(ctx, "mark video dirty error", "video_id", videoID.Hex(), "err", err)
	}
	if err := s.ResyncVideo(ctx, videoID); err != nil {
		log.ErrorContext(ctx, "resync video counters error", "video_id", videoID.Hex(), "err", err)
	}
}

// ResyncUser 重算频道粉丝数并失效频道主页缓存
func (s *CounterServiceImpl) ResyncUser(ctx context.Context, channelID primitive.ObjectID) error {
	count, err := s.subRepo.CountByChannel(ctx, channelID)
	if err != nil {
		return err
	}
	if err = s.userRepo.UpdateSubscribersCount(ctx, channelID, count); err != nil {
		return err
	}

	_ = redis.DeleteKey(ctx, consts.UserChannelInfoKey+channelID.Hex())
	return nil
}

// ResyncVideo 并发重算三个计数后全量覆盖，并同步搜索索引
func (s *CounterServiceImpl) ResyncVideo(ctx context.Context, videoID primitive.ObjectID) error {
	var likes, dislikes, comments int64
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		likes, err = s.likeRepo.CountByVideo(gCtx, videoID, model.PolarityLike)
		return err
	})
	g.Go(func() error {
		var err error
		dislikes, err = s.likeRepo.CountByVideo(gCtx, videoID, model.PolarityDislike)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = s.cmtRepo.CountByVideo(gCtx, videoID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := s.videoRepo.UpdateCounts(ctx, videoID, likes, dislikes, comments); err != nil {
		return err
	}

	video, err := s.videoRepo.GetVideoById(ctx, videoID)
	if err != nil || video == nil {
		return err
	}
	videoES := &es.VideoES{}
	if err = copier.Copy(videoES, video); err != nil {
		return err
	}
	videoES.ID = video.ID.Hex()
	videoES.UserID = video.UserID.Hex()
	if err = s.esRepo.IndexVideo(ctx, videoES); err != nil {
		log.WarnContext(ctx, "sync video index error", "video_id", videoID.Hex(), "err", err)
	}
	return nil
}
