package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/POPASMALINOIS/control-de-muelles/core/alert"
	coremetrics "github.com/POPASMALINOIS/control-de-muelles/core/metrics"
	"github.com/POPASMALINOIS/control-de-muelles/core/yard"
	"github.com/POPASMALINOIS/control-de-muelles/infra/mqtt"
)

type Config struct {
	Yard    yard.Config        `json:"yard"`
	Monitor alert.Config       `json:"monitor"`
	Refresh RefreshConfig      `json:"refresh"`
	Metrics coremetrics.Config `json:"metrics"`
	MQTT    mqtt.Config        `json:"mqtt"`
	State   StateConfig        `json:"state"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("YARD_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "yard_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Yard.SetDefaults()
	cfg.Monitor.SetDefaults()
	cfg.Refresh.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.State.SetDefaults()
	if err := cfg.Yard.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Monitor.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Refresh.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
