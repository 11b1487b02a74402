package dto

// CreateUploadVideoDTO 获取上传凭证参数
type CreateUploadVideoDTO struct {
	Title    string `json:"title" binding:"required,min=1,max=100"`
	FileName string `json:"fileName" binding:"required"`
}

// RefreshUploadVideoDTO 刷新上传凭证参数
type RefreshUploadVideoDTO struct {
	VideoID string `json:"videoId" binding:"required"`
}

// VodUploadDTO 上传凭证
type VodUploadDTO struct {
	RequestID     string `json:"requestId"`
	VideoID       string `json:"videoId"`
	UploadAddress string `json:"uploadAddress"`
	UploadAuth    string `json:"uploadAuth"`
}
