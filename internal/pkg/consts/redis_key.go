package consts

const (
	UserChannelInfoKey = "user:channel:info:"
	UserDirtyKey       = "user:dirty"
	VideoDirtyKey      = "video:dirty"
	TokenDenyKey       = "token:deny:"
)
