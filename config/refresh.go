package config

import "fmt"

// RefreshConfig controls the optional external-data refresh task. The task
// only backfills fields that are still unset; it never touches
// operator-entered data, so it is safe to interleave with manual edits.
type RefreshConfig struct {
	Enabled         bool `json:"enabled"`
	IntervalSeconds int  `json:"interval_seconds"`
}

// SetDefaults applies the once-per-minute default.
func (c *RefreshConfig) SetDefaults() {
	if c.IntervalSeconds == 0 {
		c.IntervalSeconds = 60
	}
}

// Validate checks the interval is usable.
func (c RefreshConfig) Validate() error {
	if c.IntervalSeconds < 0 {
		return fmt.Errorf("interval_seconds must not be negative")
	}
	return nil
}

// StateConfig locates the serialized engine state blob.
type StateConfig struct {
	// Path is the file the engine state is loaded from and saved to.
	Path string `json:"path"`
}

// SetDefaults applies the default state location.
func (c *StateConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "yard-state.json"
	}
}
