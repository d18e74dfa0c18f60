package consts

const (
	MimePrefixImage = "image/"
	MimePrefixVideo = "video/"
)

// AllowedMediaTypes 允许暂存的媒体类型
var AllowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"video/mp4":  true,
	"video/mov":  true,
	"video/avi":  true,
}

const (
	MaxMediaSize      = 10 * 1024 * 1024
	MaxContentLength  = 1000
	DefaultPerPage    = 10
	PreviewScheme     = "preview://"
	PostCreatedNotice = "Post created successfully!"
)
