package consts

const (
	MimePrefixImage = "image"
)

const DefaultPageSize = 10
