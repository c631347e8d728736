package yard

import "fmt"

// Config defines the dock range owned by the engine.
type Config struct {
	// MinDock and MaxDock bound the closed range of dock numbers. One slot
	// exists per integer in the range.
	MinDock int `json:"min_dock"`
	MaxDock int `json:"max_dock"`
}

// SetDefaults applies the yard's standard dock range.
func (c *Config) SetDefaults() {
	if c.MinDock == 0 && c.MaxDock == 0 {
		c.MinDock = 312
		c.MaxDock = 370
	}
}

// Validate checks the range is usable.
func (c Config) Validate() error {
	if c.MinDock <= 0 || c.MaxDock <= 0 {
		return fmt.Errorf("dock range must be positive")
	}
	if c.MinDock > c.MaxDock {
		return fmt.Errorf("min_dock %d exceeds max_dock %d", c.MinDock, c.MaxDock)
	}
	return nil
}
