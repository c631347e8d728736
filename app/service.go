package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/POPASMALINOIS/control-de-muelles/config"
	"github.com/POPASMALINOIS/control-de-muelles/core/alert"
	coremetrics "github.com/POPASMALINOIS/control-de-muelles/core/metrics"
	"github.com/POPASMALINOIS/control-de-muelles/core/yard"
	"github.com/POPASMALINOIS/control-de-muelles/infra/logger"
	"github.com/POPASMALINOIS/control-de-muelles/infra/metrics"
	"github.com/POPASMALINOIS/control-de-muelles/infra/mqtt"
	"github.com/POPASMALINOIS/control-de-muelles/internal/eventbus"
)

// Service orchestrates the yard engine, the alert monitor and the outbound
// adapters for one operator session.
type Service struct {
	Engine *yard.Engine

	monitor     *alert.Monitor
	bus         *eventbus.Bus[alert.Event]
	publisher   *mqtt.Publisher
	log         logger.Logger
	statePath   string
	promEnabled bool
	promPort    string
	refresh     config.RefreshConfig
}

// New creates a Service from the configuration and restores any previously
// saved engine state.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	engine, err := yard.New(cfg.Yard, logger.New("yard"), sink)
	if err != nil {
		return nil, err
	}
	if blob, err := os.ReadFile(cfg.State.Path); err == nil {
		if err := engine.Restore(blob); err != nil {
			return nil, fmt.Errorf("restore state %s: %w", cfg.State.Path, err)
		}
		logg.Infof("restored engine state from %s", cfg.State.Path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read state %s: %w", cfg.State.Path, err)
	}

	bus := eventbus.New[alert.Event]()
	svc := &Service{
		Engine:      engine,
		monitor:     alert.New(cfg.Monitor, engine, bus, logger.New("alert-monitor")),
		bus:         bus,
		log:         logg,
		statePath:   cfg.State.Path,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
		refresh:     cfg.Refresh,
	}

	if cfg.MQTT.Enabled {
		pub, err := mqtt.NewPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		svc.publisher = pub
	}
	return svc, nil
}

// Run starts the background tasks and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go s.monitor.Run(ctx)

	if s.publisher != nil {
		sub := s.bus.Subscribe()
		go func() {
			for ev := range sub {
				if err := s.publisher.PublishAlert(ev); err != nil {
					s.log.Errorf("publish alert: %v", err)
				}
			}
		}()
	}

	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	// The refresh task runs on its own clock; it only backfills unset
	// arrival times and is safe next to manual edits.
	if s.refresh.Enabled {
		go func() {
			ticker := time.NewTicker(time.Duration(s.refresh.IntervalSeconds) * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if n := s.Engine.BackfillArrivals(); n > 0 {
						s.log.Infof("backfilled %d arrivals", n)
					}
				}
			}
		}()
	}

	<-ctx.Done()
	return nil
}

// Close saves the engine state and releases resources.
func (s *Service) Close() error {
	s.bus.Close()
	if s.publisher != nil {
		s.publisher.Close()
	}
	blob, err := s.Engine.Serialize()
	if err != nil {
		return fmt.Errorf("serialize state: %w", err)
	}
	if err := os.WriteFile(s.statePath, blob, 0o644); err != nil {
		return fmt.Errorf("write state %s: %w", s.statePath, err)
	}
	s.log.Infof("engine state saved to %s", s.statePath)
	return nil
}
