package prediction

import (
	"github.com/shopspring/decimal"

	"github.com/joefazee/agora/models"
)

// Config represents the configuration for the prediction module
type Config struct {
	MinStakeAmount decimal.Decimal `env:"MIN_STAKE_AMOUNT" env-default:"1"`
}

// GetDefaultConfig returns the default prediction configuration
func GetDefaultConfig() *Config {
	return &Config{
		MinStakeAmount: decimal.NewFromInt(1),
	}
}

// Validate validates the prediction configuration
func (c *Config) Validate() error {
	if c.MinStakeAmount.LessThanOrEqual(decimal.Zero) {
		return models.ErrInvalidStakeAmount
	}
	return nil
}
