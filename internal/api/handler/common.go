package handler

import (
	"Agora/internal/model"
	"Agora/internal/service"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"
)

func newFlagSet(name string, w io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// parseFlags 参数错误统一包装为 ErrInvalidArgs
func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidArgs, err)
	}
	return nil
}

func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", service.ErrInvalidArgs, raw)
	}
	return id, nil
}

// openMediaFiles 加载命令行传入的本地文件
func openMediaFiles(paths []string) ([]*model.MediaFile, error) {
	files := make([]*model.MediaFile, 0, len(paths))
	for _, p := range paths {
		f, err := model.OpenMediaFile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", service.ErrInvalidArgs, err)
		}
		files = append(files, f)
	}
	return files, nil
}
