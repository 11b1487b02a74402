package handler

import (
	"Vidstream/internal/pkg/response"
	"Vidstream/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subSvc service.SubscriptionService
}

func NewSubscriptionHandler(subSvc service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subSvc: subSvc}
}

func (s *SubscriptionHandler) Subscribe(c *gin.Context) {
	channelID, ok := pathObjectID(c, "userId")
	if !ok {
		response.Error(c, service.ErrUserNotFound)
		return
	}
	channel, err := s.subSvc.Subscribe(c.Request.Context(), currentUserID(c), channelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"user": channel})
}

func (s *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	channelID, ok := pathObjectID(c, "userId")
	if !ok {
		response.Error(c, service.ErrUserNotFound)
		return
	}
	channel, err := s.subSvc.Unsubscribe(c.Request.Context(), currentUserID(c), channelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"user": channel})
}

func (s *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	userID, ok := pathObjectID(c, "userId")
	if !ok {
		response.Error(c, service.ErrUserNotFound)
		return
	}
	channels, err := s.subSvc.ListSubscriptions(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"subscriptions": channels})
}
