package markets

import "fmt"

// Config represents the configuration for the markets module
type Config struct {
	MinOutcomes       int `env:"MARKET_MIN_OUTCOMES" env-default:"2"`
	MaxOutcomes       int `env:"MARKET_MAX_OUTCOMES" env-default:"5"`
	MaxQuestionLength int `env:"MARKET_MAX_QUESTION_LENGTH" env-default:"255"`
	MaxOutcomeLength  int `env:"MARKET_MAX_OUTCOME_LENGTH" env-default:"100"`
}

// GetDefaultConfig returns the default market configuration
func GetDefaultConfig() *Config {
	return &Config{
		MinOutcomes:       2,
		MaxOutcomes:       5,
		MaxQuestionLength: 255,
		MaxOutcomeLength:  100,
	}
}

// Validate validates the market configuration
func (c *Config) Validate() error {
	if c.MinOutcomes < 2 {
		return fmt.Errorf("min outcomes must be at least 2, got %d", c.MinOutcomes)
	}
	if c.MaxOutcomes < c.MinOutcomes {
		return fmt.Errorf("max outcomes %d is below min outcomes %d", c.MaxOutcomes, c.MinOutcomes)
	}
	if c.MaxQuestionLength <= 0 {
		return fmt.Errorf("max question length must be positive, got %d", c.MaxQuestionLength)
	}
	if c.MaxOutcomeLength <= 0 {
		return fmt.Errorf("max outcome length must be positive, got %d", c.MaxOutcomeLength)
	}
	return nil
}
