package job

import (
	"Vidstream/internal/pkg/consts"
	"Vidstream/internal/pkg/logger"
	"Vidstream/internal/pkg/redis"
	"Vidstream/internal/pkg/util"
	"Vidstream/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CounterReconcileJob 消费脏集兜底重算冗余计数，写路径同步重算失败时由这里补齐
type CounterReconcileJob struct {
	counterSvc service.CounterService
}

func NewCounterReconcileJob(counterSvc service.CounterService) *CounterReconcileJob {
	return &CounterReconcileJob{counterSvc: counterSvc}
}

func (s *CounterReconcileJob) Run() {
	traceID := "job-counter-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	videoCount := s.drain(ctx, consts.VideoDirtyKey, s.counterSvc.ResyncVideo)
	userCount := s.drain(ctx, consts.UserDirtyKey, s.counterSvc.ResyncUser)

	if videoCount > 0 || userCount > 0 {
		log.InfoContext(ctx, "reconcile counters success",
			"video_count", videoCount,
			"user_count", userCount)
	}
}

// drain 先 Rename 抢占脏集再逐个重算，避免与写路径竞争新增的脏标记
func (s *CounterReconcileJob) drain(ctx context.Context, dirtyKey string, resync func(context.Context, primitive.ObjectID) error) int {
	processingKey := dirtyKey + ":processing"
	if err := redis.Rename(ctx, dirtyKey, processingKey); err != nil {
		return 0
	}

	members, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get dirty set error", "key", processingKey, "err", err)
		return 0
	}

	ids := util.HexToObjectIDs(members)
	for _, id := range ids {
		if err = resync(ctx, id); err != nil {
			log.ErrorContext(ctx, "resync counters error", "id", id.Hex(), "err", err)
			// 留给下一轮重试
			_ = redis.SAdd(ctx, dirtyKey, id.Hex())
		}
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete processing set error", "key", processingKey, "err", err)
	}
	return len(ids)
}
