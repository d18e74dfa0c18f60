package preview

import (
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"context"
	"fmt"
	log "log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Registry 预览引用的分配与回收，每个引用只能被回收一次
type Registry struct {
	mu         sync.Mutex
	dir        string
	thumbWidth int
	refs       map[string]string
}

// NewRegistry dir 为空或 thumbWidth <= 0 时不生成缩略图
func NewRegistry(dir string, thumbWidth int) *Registry {
	return &Registry{
		dir:        dir,
		thumbWidth: thumbWidth,
		refs:       make(map[string]string),
	}
}

// Allocate 为已接受的文件分配预览引用，缩略图失败不影响分配
func (r *Registry) Allocate(ctx context.Context, file *model.MediaFile, kind model.MediaKind) string {
	id := uuid.NewString()
	ref := consts.PreviewScheme + id

	thumb := ""
	if kind == model.MediaImage && r.dir != "" && r.thumbWidth > 0 {
		path, err := r.writeThumbnail(file, id)
		if err != nil {
			log.WarnContext(ctx, "failed to render preview thumbnail", "file", file.Name, "err", err)
		} else {
			thumb = path
		}
	}

	r.mu.Lock()
	r.refs[ref] = thumb
	r.mu.Unlock()
	return ref
}

// Revoke 释放引用并删除缩略图，重复释放返回 false
func (r *Registry) Revoke(ctx context.Context, ref string) bool {
	r.mu.Lock()
	thumb, ok := r.refs[ref]
	delete(r.refs, ref)
	r.mu.Unlock()

	if !ok {
		log.DebugContext(ctx, "preview already revoked", "ref", ref)
		return false
	}
	if thumb != "" {
		if err := os.Remove(thumb); err != nil && !os.IsNotExist(err) {
			log.WarnContext(ctx, "failed to remove preview thumbnail", "path", thumb, "err", err)
		}
	}
	return true
}

// Thumbnail 返回引用对应的缩略图路径
func (r *Registry) Thumbnail(ref string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	thumb, ok := r.refs[ref]
	return thumb, ok && thumb != ""
}

// Live 当前未回收的引用数量
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.refs)
}

// IsPreviewRef 判断字符串是否为本地预览引用
func IsPreviewRef(s string) bool {
	return strings.HasPrefix(s, consts.PreviewScheme)
}

func (r *Registry) writeThumbnail(file *model.MediaFile, id string) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	img, err := imaging.Decode(rc, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", file.Name, err)
	}
	if img.Bounds().Dx() > r.thumbWidth {
		img = imaging.Resize(img, r.thumbWidth, 0, imaging.Lanczos)
	}

	if err = os.MkdirAll(r.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(r.dir, id+".png")
	if err = imaging.Save(img, path); err != nil {
		return "", err
	}
	return path, nil
}
