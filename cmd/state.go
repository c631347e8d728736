package cmd

import (
	"fmt"
	"os"

	"github.com/POPASMALINOIS/control-de-muelles/config"
	"github.com/POPASMALINOIS/control-de-muelles/core/yard"
	"github.com/POPASMALINOIS/control-de-muelles/infra/logger"
)

// loadEngine builds an engine from the configuration and restores the saved
// state blob when one exists.
func loadEngine(cfg *config.Config) (*yard.Engine, error) {
	engine, err := yard.New(cfg.Yard, logger.New("yard"), nil)
	if err != nil {
		return nil, err
	}
	blob, err := os.ReadFile(cfg.State.Path)
	if os.IsNotExist(err) {
		return engine, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state %s: %w", cfg.State.Path, err)
	}
	if err := engine.Restore(blob); err != nil {
		return nil, fmt.Errorf("restore state %s: %w", cfg.State.Path, err)
	}
	return engine, nil
}

func saveEngine(cfg *config.Config, engine *yard.Engine) error {
	blob, err := engine.Serialize()
	if err != nil {
		return fmt.Errorf("serialize state: %w", err)
	}
	if err := os.WriteFile(cfg.State.Path, blob, 0o644); err != nil {
		return fmt.Errorf("write state %s: %w", cfg.State.Path, err)
	}
	return nil
}
