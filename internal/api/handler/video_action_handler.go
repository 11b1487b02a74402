package handler

import (
	"Vidstream/internal/api/dto"
	"Vidstream/internal/model"
	"Vidstream/internal/pkg/response"
	"Vidstream/internal/pkg/util"
	"Vidstream/internal/service"

	"github.com/gin-gonic/gin"
)

type VideoActionHandler struct {
	actionSvc service.VideoActionService
}

func NewVideoActionHandler(actionSvc service.VideoActionService) *VideoActionHandler {
	return &VideoActionHandler{actionSvc: actionSvc}
}

func (s *VideoActionHandler) LikeVideo(c *gin.Context) {
	s.setReaction(c, model.PolarityLike)
}

func (s *VideoActionHandler) DislikeVideo(c *gin.Context) {
	s.setReaction(c, model.PolarityDislike)
}

func (s *VideoActionHandler) setReaction(c *gin.Context, polarity int8) {
	videoID, ok := pathObjectID(c, "videoId")
	if !ok {
		response.Error(c, service.ErrVideoNotFound)
		return
	}
	video, err := s.actionSvc.SetReaction(c.Request.Context(), currentUserID(c), videoID, polarity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"video": video})
}

func (s *VideoActionHandler) CreateComment(c *gin.Context) {
	videoID, ok := pathObjectID(c, "videoId")
	if !ok {
		response.Error(c, service.ErrVideoNotFound)
		return
	}
	var createDTO dto.CreateCommentDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	comment, err := s.actionSvc.CreateComment(c.Request.Context(), currentUserID(c), videoID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"comment": comment})
}

func (s *VideoActionHandler) ListComments(c *gin.Context) {
	videoID, ok := pathObjectID(c, "videoId")
	if !ok {
		response.Error(c, service.ErrVideoNotFound)
		return
	}
	pageNum, pageSize := util.ParsePagination(c)
	comments, err := s.actionSvc.ListComments(c.Request.Context(), videoID, pageNum, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *VideoActionHandler) DeleteComment(c *gin.Context) {
	videoID, ok := pathObjectID(c, "videoId")
	if !ok {
		response.Error(c, service.ErrVideoNotFound)
		return
	}
	commentID, ok := pathObjectID(c, "commentId")
	if !ok {
		response.Error(c, service.ErrCommentNotFound)
		return
	}
	if err := s.actionSvc.DeleteComment(c.Request.Context(), currentUserID(c), videoID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
