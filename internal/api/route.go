package api

import (
	"Vidstream/internal/api/middleware"
	"Vidstream/internal/pkg/logger"
	"Vidstream/internal/repository"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, userRepo repository.UserRepo) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(userRepo)
	authOpt := middleware.AuthOptionalMiddleware(userRepo)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		usersGroup := v1.Group("/users")
		{
			usersGroup.POST("", group.UserHandler.Register)
			usersGroup.POST("/login", group.UserHandler.Login)
			usersGroup.POST("/logout", auth, group.UserHandler.Logout)
			usersGroup.GET("/:userId", authOpt, group.UserHandler.GetChannelProfile)
			usersGroup.GET("/:userId/subscriptions", group.SubscriptionHandler.ListSubscriptions)
			usersGroup.GET("/:userId/videos", group.VideoHandler.ListUserVideos)
			usersGroup.POST("/:userId/subscribe", auth, group.SubscriptionHandler.Subscribe)
			usersGroup.DELETE("/:userId/subscribe", auth, group.SubscriptionHandler.Unsubscribe)
		}

		userGroup := v1.Group("/user")
		userGroup.Use(auth)
		{
			userGroup.GET("", group.UserHandler.GetAuthUser)
			userGroup.PATCH("", group.UserHandler.UpdateProfile)
			userGroup.GET("/videos/feed", group.VideoHandler.ListFeedVideos)
			userGroup.GET("/videos/liked", group.VideoHandler.ListLikedVideos)
		}

		videosGroup := v1.Group("/videos")
		{
			videosGroup.GET("", group.VideoHandler.ListVideos)
			videosGroup.GET("/search", group.VideoHandler.SearchVideos)
			videosGroup.GET("/:videoId", authOpt, group.VideoHandler.GetVideo)
			videosGroup.GET("/:videoId/comments", group.VideoActionHandler.ListComments)

			authGroup := videosGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.POST("", group.VideoHandler.CreateVideo)
				authGroup.PATCH("/:videoId", group.VideoHandler.UpdateVideo)
				authGroup.DELETE("/:videoId", group.VideoHandler.DeleteVideo)
				authGroup.POST("/:videoId/like", group.VideoActionHandler.LikeVideo)
				authGroup.POST("/:videoId/dislike", group.VideoActionHandler.DislikeVideo)
				authGroup.POST("/:videoId/comments", group.VideoActionHandler.CreateComment)
				authGroup.DELETE("/:videoId/comments/:commentId", group.VideoActionHandler.DeleteComment)
			}
		}

		vodGroup := v1.Group("/vod")
		vodGroup.Use(auth)
		{
			vodGroup.GET("/upload-address", group.VodHandler.GetUploadAddress)
			vodGroup.GET("/refresh-address", group.VodHandler.RefreshUploadAddress)
		}

		mediaGroup := v1.Group("/media")
		mediaGroup.Use(auth)
		{
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
