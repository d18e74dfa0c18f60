package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件与环境变量加载配置并填充到 Cfg，配置文件缺失时使用默认值
func LoadConfig(paths ...string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("AGORA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".agora")

	v.SetDefault("server.base_url", "http://localhost:5000")
	v.SetDefault("server.timeout", 30)
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.rate_burst", 1)

	v.SetDefault("store.driver", "file")
	v.SetDefault("store.path", filepath.Join(base, "store.json"))
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.pool_size", 4)
	v.SetDefault("store.redis.prefix", "agora:")

	v.SetDefault("upload.backend", "api")
	v.SetDefault("upload.max_size", 10*1024*1024)
	v.SetDefault("upload.max_parallel", 0)
	v.SetDefault("upload.preview_dir", filepath.Join(os.TempDir(), "agora-previews"))
	v.SetDefault("upload.thumb_width", 320)

	v.SetDefault("feed.per_page", 10)
	v.SetDefault("feed.refresh", "@every 30s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size_mb", 20)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 7)
}
