package handler

import (
	"Vidstream/internal/api/dto"
	"Vidstream/internal/pkg/response"
	"Vidstream/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBind(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	authUser, err := s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"user": authUser})
}

func (s *UserHandler) Login(c *gin.Context) {
	var credentialDTO dto.CredentialDTO
	if err := c.ShouldBind(&credentialDTO); err != nil {
		response.Error(c, err)
		return
	}
	authUser, err := s.userSvc.Login(c.Request.Context(), &credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"user": authUser})
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetAuthUser(c *gin.Context) {
	authUser, err := s.userSvc.GetAuthUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"user": authUser})
}

func (s *UserHandler) UpdateProfile(c *gin.Context) {
	var updateDTO dto.UpdateUserDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	authUser, err := s.userSvc.UpdateProfile(c.Request.Context(), currentUserID(c), &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"user": authUser})
}

// GetChannelProfile 频道主页，匿名可访问
func (s *UserHandler) GetChannelProfile(c *gin.Context) {
	channelID, ok := pathObjectID(c, "userId")
	if !ok {
		response.Error(c, service.ErrUserNotFound)
		return
	}
	channel, err := s.userSvc.GetChannelProfile(c.Request.Context(), channelID, maybeUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"user": channel})
}
