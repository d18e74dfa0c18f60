package wire

import (
	"Agora/internal/api"
	"Agora/internal/api/config"
	"Agora/internal/api/handler"
	"Agora/internal/pkg/apiclient"
	"Agora/internal/pkg/minio"
	"Agora/internal/pkg/preview"
	"Agora/internal/pkg/store"
	"Agora/internal/service"
	"context"
	"fmt"
	log "log/slog"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router   *api.Router
	Store    store.Store
	Client   *apiclient.Client
	Previews *preview.Registry
}

func BuildApplication(ctx context.Context, cfg *config.Config) (*ApplicationContainer, error) {
	st, err := store.New(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	client := apiclient.New(cfg.Server, st)
	previews := preview.NewRegistry(cfg.Upload.PreviewDir, cfg.Upload.ThumbWidth)

	uploader, err := newUploader(ctx, cfg, client)
	if err != nil {
		return nil, err
	}

	mediaService := service.NewMediaService(previews, cfg.Upload.MaxSize)
	uploadService := service.NewUploadService(uploader, cfg.Upload.MaxParallel)
	composer := service.NewComposer(mediaService, uploadService, client)
	feed := service.NewFeed(client, cfg.Feed.PerPage)
	profileService := service.NewProfileService(st, client)
	sessionService := service.NewSessionService(st)

	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(sessionService),
		PostHandler:    handler.NewPostHandler(composer),
		FeedHandler:    handler.NewFeedHandler(feed, client.ResolveURL, cfg.Feed.Refresh),
		ProfileHandler: handler.NewProfileHandler(profileService),
	}

	return &ApplicationContainer{
		Router:   api.SetupRouter(handlers),
		Store:    st,
		Client:   client,
		Previews: previews,
	}, nil
}

// newUploader 按配置选择媒体上传后端
func newUploader(ctx context.Context, cfg *config.Config, client *apiclient.Client) (service.MediaUploader, error) {
	switch cfg.Upload.Backend {
	case "", "api":
		return client, nil
	case "minio":
		up, err := minio.NewUploader(ctx, cfg.MinIO)
		if err != nil {
			return nil, err
		}
		log.DebugContext(ctx, "uploading media directly to object storage", "bucket", cfg.MinIO.Bucket)
		return up, nil
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Upload.Backend)
	}
}
