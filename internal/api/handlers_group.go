package api

import "Vidstream/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	SubscriptionHandler *handler.SubscriptionHandler
	VideoHandler        *handler.VideoHandler
	VideoActionHandler  *handler.VideoActionHandler
	VodHandler          *handler.VodHandler
	MediaHandler        *handler.MediaHandler
}
