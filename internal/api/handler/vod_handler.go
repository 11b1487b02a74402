package handler

import (
	"Vidstream/internal/api/dto"
	"Vidstream/internal/pkg/response"
	"Vidstream/internal/service"

	"github.com/gin-gonic/gin"
)

type VodHandler struct {
	vodSvc service.VodService
}

func NewVodHandler(vodSvc service.VodService) *VodHandler {
	return &VodHandler{vodSvc: vodSvc}
}

// GetUploadAddress 签发点播上传凭证
func (s *VodHandler) GetUploadAddress(c *gin.Context) {
	uploadDTO := dto.CreateUploadVideoDTO{
		Title:    c.Query("title"),
		FileName: c.Query("fileName"),
	}
	if uploadDTO.Title == "" || uploadDTO.FileName == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	auth, err := s.vodSvc.CreateUploadVideo(c.Request.Context(), &uploadDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"vod": auth})
}

// RefreshUploadAddress 上传凭证过期后刷新
func (s *VodHandler) RefreshUploadAddress(c *gin.Context) {
	refreshDTO := dto.RefreshUploadVideoDTO{
		VideoID: c.Query("videoId"),
	}
	if refreshDTO.VideoID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	auth, err := s.vodSvc.RefreshUploadVideo(c.Request.Context(), &refreshDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"vod": auth})
}
