package app

import (
	"github.com/joefazee/agora/app/database"
	"github.com/joefazee/agora/app/markets"
	"github.com/joefazee/agora/app/prediction"
	"github.com/joefazee/agora/app/user"
	"github.com/joefazee/agora/internal/nexus"
)

type Config struct {
	DB         database.Config
	User       user.Config
	Markets    markets.Config
	Prediction prediction.Config

	AppHost string `env:"APP_HOST" default:"localhost"`
	AppPort string `env:"APP_PORT" default:"8080"`
	Env     string `env:"APP_ENV" default:"development"`

	CacheBackend string `env:"CACHE_BACKEND" default:"memory"`
	RedisAddr    string `env:"REDIS_ADDR" default:"localhost:6379"`
	RedisDB      int    `env:"REDIS_DB" default:"0"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader().Load(c)
	return c, err
}
