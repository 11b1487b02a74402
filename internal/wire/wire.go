package wire

import (
	"Vidstream/internal/api"
	"Vidstream/internal/api/handler"
	"Vidstream/internal/job"
	"Vidstream/internal/pkg/cron"
	"Vidstream/internal/pkg/es"
	"Vidstream/internal/repository"
	"Vidstream/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

func BuildApplication(db *mongo.Database) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	subRepo := repository.NewSubscriptionRepo(db)
	videoRepo := repository.NewVideoRepo(db)
	likeRepo := repository.NewVideoLikeRepo(db)
	cmtRepo := repository.NewCommentRepo(db)
	esRepo := es.NewVideoRepo(es.Client)

	counterService := service.NewCounterService(userRepo, subRepo, videoRepo, likeRepo, cmtRepo, esRepo)
	userService := service.NewUserService(userRepo, subRepo)
	subscriptionService := service.NewSubscriptionService(subRepo, userRepo, counterService, userService)
	videoService := service.NewVideoService(videoRepo, userRepo, subRepo, likeRepo, cmtRepo, esRepo)
	videoActionService := service.NewVideoActionService(videoRepo, likeRepo, cmtRepo, userRepo, counterService, videoService)
	vodService := service.NewVodService()

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		SubscriptionHandler: handler.NewSubscriptionHandler(subscriptionService),
		VideoHandler:        handler.NewVideoHandler(videoService),
		VideoActionHandler:  handler.NewVideoActionHandler(videoActionService),
		VodHandler:          handler.NewVodHandler(vodService),
		MediaHandler:        handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers, userRepo)

	reconcileJob := job.NewCounterReconcileJob(counterService)
	cronMgr := cron.NewCronManager(reconcileJob)

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
	}, nil
}
