package service

import (
	"Vidstream/internal/api/config"
	"Vidstream/internal/api/dto"
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// VodService 代理点播服务的上传凭证签发
type VodService interface {
	CreateUploadVideo(ctx context.Context, uploadDTO *dto.CreateUploadVideoDTO) (*dto.VodUploadDTO, error)
	RefreshUploadVideo(ctx context.Context, refreshDTO *dto.RefreshUploadVideoDTO) (*dto.VodUploadDTO, error)
}

type VodServiceImpl struct {
	client *resty.Client
}

func NewVodService() VodService {
	client := resty.New().
		SetBaseURL(config.Cfg.Vod.URL).
		SetTimeout(time.Duration(config.Cfg.Vod.Timeout) * time.Second).
		SetHeader("Authorization", config.Cfg.Vod.AccessKey)
	return &VodServiceImpl{client: client}
}

type vodAuthResponse struct {
	RequestID     string `json:"RequestId"`
	VideoID       string `json:"VideoId"`
	UploadAddress string `json:"UploadAddress"`
	UploadAuth    string `json:"UploadAuth"`
}

func (s *VodServiceImpl) CreateUploadVideo(ctx context.Context, uploadDTO *dto.CreateUploadVideoDTO) (*dto.VodUploadDTO, error) {
	result := &vodAuthResponse{}
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"Action":   "CreateUploadVideo",
			"Title":    uploadDTO.Title,
			"FileName": uploadDTO.FileName,
		}).
		SetResult(result).
		Get("/")
	if err != nil {
		return nil, errors.Wrap(err, "vod create upload video")
	}
	if resp.IsError() {
		return nil, errors.Errorf("vod create upload video: status %d", resp.StatusCode())
	}
	return toVodUploadDTO(result), nil
}

func (s *VodServiceImpl) RefreshUploadVideo(ctx context.Context, refreshDTO *dto.RefreshUploadVideoDTO) (*dto.VodUploadDTO, error) {
	result := &vodAuthResponse{}
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"Action":  "RefreshUploadVideo",
			"VideoId": refreshDTO.VideoID,
		}).
		SetResult(result).
		Get("/")
	if err != nil {
		return nil, errors.Wrap(err, "vod refresh upload video")
	}
	if resp.IsError() {
		return nil, errors.Errorf("vod refresh upload video: status %d", resp.StatusCode())
	}
	return toVodUploadDTO(result), nil
}

func toVodUploadDTO(resp *vodAuthResponse) *dto.VodUploadDTO {
	return &dto.VodUploadDTO{
		RequestID:     resp.RequestID,
		VideoID:       resp.VideoID,
		UploadAddress: resp.UploadAddress,
		UploadAuth:    resp.UploadAuth,
	}
}
