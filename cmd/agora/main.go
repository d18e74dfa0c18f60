package main

import (
	"Agora/internal/api/config"
	"Agora/internal/pkg/logger"
	"Agora/internal/pkg/response"
	"Agora/internal/wire"
	"context"
	"errors"
	log "log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("agora", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	configDir := fs.String("config", "", "directory containing config.yaml")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	// 加载配置
	var paths []string
	if *configDir != "" {
		paths = append(paths, *configDir)
	}
	if err := config.LoadConfig(paths...); err != nil {
		return response.Error(os.Stderr, err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger(cfg.Log)
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithTrace(ctx)

	// 依赖注入
	app, err := wire.BuildApplication(ctx, cfg)
	if err != nil {
		log.ErrorContext(ctx, "failed to create application", "err", err)
		return response.Error(os.Stderr, err)
	}

	if err = app.Router.Dispatch(ctx, fs.Args(), os.Stdout); err != nil {
		return response.Error(os.Stderr, err)
	}
	return 0
}
