package logger

import (
	log "log/slog"

	"github.com/go-resty/resty/v2"
)

// SetupResty 为 API 客户端挂载访问日志
func SetupResty(c *resty.Client) {
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		req := resp.Request
		fields := []any{
			log.String("method", req.Method),
			log.String("url", req.URL),
			log.Int("status", resp.StatusCode()),
			log.Duration("latency", resp.Time()),
		}
		if resp.IsError() {
			log.WarnContext(req.Context(), "API_ACCESS", fields...)
		} else {
			log.DebugContext(req.Context(), "API_ACCESS", fields...)
		}
		return nil
	})
	c.OnError(func(req *resty.Request, err error) {
		log.ErrorContext(req.Context(), "API_TRANSPORT",
			log.String("method", req.Method),
			log.String("url", req.URL),
			log.Any("err", err))
	})
}
