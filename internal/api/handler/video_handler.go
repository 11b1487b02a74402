package handler

import (
	"Vidstream/internal/api/dto"
	"Vidstream/internal/pkg/response"
	"Vidstream/internal/pkg/util"
	"Vidstream/internal/service"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoSvc service.VideoService
}

func NewVideoHandler(videoSvc service.VideoService) *VideoHandler {
	return &VideoHandler{videoSvc: videoSvc}
}

func (s *VideoHandler) CreateVideo(c *gin.Context) {
	var createDTO dto.CreateVideoDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	video, err := s.videoSvc.CreateVideo(c.Request.Context(), currentUserID(c), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"video": video})
}

// GetVideo 视频详情，匿名可访问
func (s *VideoHandler) GetVideo(c *gin.Context) {
	videoID, ok := pathObjectID(c, "videoId")
	if !ok {
		response.Error(c, service.ErrVideoNotFound)
		return
	}
	video, err := s.videoSvc.GetVideo(c.Request.Context(), videoID, maybeUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"video": video})
}

func (s *VideoHandler) UpdateVideo(c *gin.Context) {
	videoID, ok := pathObjectID(c, "videoId")
	if !ok {
		response.Error(c, service.ErrVideoNotFound)
		return
	}
	var updateDTO dto.UpdateVideoDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	video, err := s.videoSvc.UpdateVideo(c.Request.Context(), currentUserID(c), videoID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"video": video})
}

func (s *VideoHandler) DeleteVideo(c *gin.Context) {
	videoID, ok := pathObjectID(c, "videoId")
	if !ok {
		response.Error(c, service.ErrVideoNotFound)
		return
	}
	if err := s.videoSvc.DeleteVideo(c.Request.Context(), currentUserID(c), videoID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *VideoHandler) ListVideos(c *gin.Context) {
	pageNum, pageSize := util.ParsePagination(c)
	videos, err := s.videoSvc.ListVideos(c.Request.Context(), pageNum, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}

func (s *VideoHandler) ListUserVideos(c *gin.Context) {
	channelID, ok := pathObjectID(c, "userId")
	if !ok {
		response.Error(c, service.ErrUserNotFound)
		return
	}
	pageNum, pageSize := util.ParsePagination(c)
	videos, err := s.videoSvc.ListUserVideos(c.Request.Context(), channelID, pageNum, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}

// ListFeedVideos 订阅流
func (s *VideoHandler) ListFeedVideos(c *gin.Context) {
	pageNum, pageSize := util.ParsePagination(c)
	videos, err := s.videoSvc.ListFeedVideos(c.Request.Context(), currentUserID(c), pageNum, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}

func (s *VideoHandler) ListLikedVideos(c *gin.Context) {
	pageNum, pageSize := util.ParsePagination(c)
	videos, err := s.videoSvc.ListLikedVideos(c.Request.Context(), currentUserID(c), pageNum, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}

func (s *VideoHandler) SearchVideos(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	pageNum, pageSize := util.ParsePagination(c)
	videos, err := s.videoSvc.SearchVideos(c.Request.Context(), keyword, pageNum, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}
