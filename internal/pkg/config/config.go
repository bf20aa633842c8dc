package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,           default=8000"`
	Env           string `env:"ENV,            default=development"`
	SessionSecret string `env:"SESSION_SECRET, default=GlsN5DXiYc"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`

	MySQL MySQLConfig
	Web   WebConfig
}

type MySQLConfig struct {
	DSN string `env:"MYSQL_DSN, default=adopet:adopet@tcp(localhost:3306)/adopet?parseTime=true"`
}

type WebConfig struct {
	ViewsGlob string `env:"VIEWS_GLOB, default=web/views/*.tmpl"`
	PublicDir string `env:"PUBLIC_DIR, default=public"`
	UploadDir string `env:"UPLOAD_DIR, default=uploads"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
