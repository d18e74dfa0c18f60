package response

import (
	"Agora/internal/pkg/apiclient"
	"Agora/internal/service"
	"errors"
	"fmt"
	"io"
	log "log/slog"

	"github.com/goccy/go-json"
)

// Success 输出一行结果
func Success(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}

// JSON 以缩进 JSON 输出数据
func JSON(w io.Writer, data any) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// Error 输出错误信息并返回进程退出码
func Error(w io.Writer, err error) int {
	code := service.ExitCode(err)

	var re *apiclient.RequestError
	switch {
	case errors.As(err, &re):
		_, _ = fmt.Fprintf(w, "error: %s (HTTP %d)\n", err, re.StatusCode)
	case code == service.ExitUnexpected:
		log.Error("Error", "err", err)
		_, _ = fmt.Fprintf(w, "error: %s\n", err)
	default:
		_, _ = fmt.Fprintf(w, "error: %s\n", err)
	}
	return code
}
