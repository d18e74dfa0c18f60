package logger

import (
	"Agora/internal/api/config"
	"io"
	log "log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogWriter 文件日志输出，未配置文件时为 nil
var LogWriter io.WriteCloser

// InitLogger 初始化全局 slog，stdout 之外可选滚动文件输出
func InitLogger(cfg config.LogConfig) {
	opts := &log.HandlerOptions{Level: parseLevel(cfg.Level)}

	var hStdout log.Handler
	if strings.EqualFold(cfg.Format, "json") {
		hStdout = log.NewJSONHandler(os.Stderr, opts)
	} else {
		hStdout = log.NewTextHandler(os.Stderr, opts)
	}

	var finalHandler log.Handler = hStdout

	if cfg.File != "" {
		_ = os.MkdirAll(filepath.Dir(cfg.File), 0o755)
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    nz(cfg.MaxSizeMB, 20),
			MaxBackups: nz(cfg.MaxBackups, 3),
			MaxAge:     nz(cfg.MaxAgeDays, 7),
			Compress:   cfg.Compress,
		}
		hFile := log.NewJSONHandler(lj, opts)
		finalHandler = &TeeHandler{
			handlers: []log.Handler{hStdout, hFile},
		}
		LogWriter = lj
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}

// Close 刷新并关闭文件输出
func Close() {
	if LogWriter != nil {
		_ = LogWriter.Close()
	}
}

func parseLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

func nz(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
