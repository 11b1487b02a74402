package dto

// RegisterDTO 注册参数
type RegisterDTO struct {
	Username string `json:"username" binding:"required,min=1,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=64"`
}

// CredentialDTO 登录参数
type CredentialDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserDTO 更新资料参数，指针字段区分未传与空值
type UpdateUserDTO struct {
	Username           *string `json:"username" binding:"omitempty,min=1,max=20"`
	Email              *string `json:"email" binding:"omitempty,email"`
	Password           *string `json:"password" binding:"omitempty,min=6,max=64"`
	Avatar             *string `json:"avatar"`
	Cover              *string `json:"cover"`
	ChannelDescription *string `json:"channelDescription"`
}

// AuthUserDTO 当前登录用户信息
type AuthUserDTO struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Avatar             string `json:"avatar"`
	Cover              string `json:"cover"`
	ChannelDescription string `json:"channelDescription"`
	SubscribersCount   int64  `json:"subscribersCount"`
	Token              string `json:"token,omitempty"`
}

// ChannelDTO 频道主页信息，isSubscribed 相对当前访问者
type ChannelDTO struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	Avatar             string `json:"avatar"`
	Cover              string `json:"cover"`
	ChannelDescription string `json:"channelDescription"`
	SubscribersCount   int64  `json:"subscribersCount"`
	IsSubscribed       bool   `json:"isSubscribed"`
}

// SubscribedChannelDTO 订阅列表项
type SubscribedChannelDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}
