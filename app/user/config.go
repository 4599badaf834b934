package user

import (
	"errors"
	"time"
)

type Config struct {
	SymmetricKey        string        `env:"SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION" default:"24h"`
}

func (c *Config) Validate() error {
	if c.SymmetricKey == "" {
		return errors.New("symmetric key must be set")
	}
	if c.AccessTokenDuration <= 0 {
		return errors.New("access token duration must be positive")
	}
	return nil
}

func GetDefaultConfig() *Config {
	return &Config{
		SymmetricKey:        "12345678901234567890123456789012",
		AccessTokenDuration: 24 * time.Hour,
	}
}
