package minio

import (
	"Agora/internal/model"
	"Agora/internal/pkg/util"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// UploadMedia 上传单个文件并返回其公共访问地址
func (s *Uploader) UploadMedia(ctx context.Context, file *model.MediaFile) (*model.UploadResult, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	contentType := util.NormalizeMediaType(file.ContentType)
	objectName := ObjectName(file.Name, time.Now())
	info, err := s.client.PutObject(ctx, s.bucket, objectName, rc, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &model.UploadResult{
		MediaURL:  s.PublicURL(info.Key),
		MediaType: string(model.KindOf(contentType)),
	}, nil
}

// PublicURL 获取对象的公共访问URL
func (s *Uploader) PublicURL(objectName string) string {
	return s.publicBase + "/" + objectName
}

// ObjectName 按日期分目录，文件名替换为 uuid 保留扩展名
func ObjectName(fileName string, now time.Time) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("posts/%s/%s%s", now.Format("2006/01/02"), uuid.NewString(), ext)
}
