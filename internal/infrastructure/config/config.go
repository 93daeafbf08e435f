package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=3000"`
	Env       string        `env:"ENV,       default=development"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	StaticDir string        `env:"STATIC_DIR, default=web"`
	CacheTTL  time.Duration `env:"ROOMS_CACHE_TTL, default=30s"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI            string        `env:"MONGO_URI, default=mongodb://127.0.0.1:27017"`
	Database       string        `env:"MONGO_DB,  default=roombooking"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB          int           `env:"REDIS_DB,   default=0"`
	PingTimeout time.Duration `env:"REDIS_PING_TIMEOUT, default=5s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
