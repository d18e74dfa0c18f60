package util

import (
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// mediaTypeAliases 平台上报的别名统一为服务端白名单中的写法
var mediaTypeAliases = map[string]string{
	"video/quicktime": "video/mov",
	"video/x-msvideo": "video/avi",
	"video/msvideo":   "video/avi",
	"image/jpg":       "image/jpeg",
	"image/pjpeg":     "image/jpeg",
}

// NormalizeMediaType 去掉参数部分并替换别名
func NormalizeMediaType(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if alias, ok := mediaTypeAliases[ct]; ok {
		return alias
	}
	return ct
}

// SniffMediaType 根据内容头部识别 MIME 类型
func SniffMediaType(r io.Reader) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	return NormalizeMediaType(mt.String()), nil
}
