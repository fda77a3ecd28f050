// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-diff-tree/internal/events"
	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/internal/tree"
	"github.com/MKhiriev/go-diff-tree/models"
)

// PropertyName identifies a host property.
type PropertyName string

const (
	PropertyMode    PropertyName = "mode"
	PropertyBuilder PropertyName = "builder"
)

// PropertyChange is published when a host property takes a new value.
type PropertyChange struct {
	Name PropertyName
	Old  string
	New  string
}

// Properties holds the host properties the tree reacts to: the comparison
// mode, applied when sync states are read, and the builder variant. Setting
// a property to its current value publishes nothing.
type Properties struct {
	mu      sync.RWMutex
	mode    models.Mode
	builder string

	bus *events.Bus[PropertyChange]
}

// NewProperties creates the property bag from the tree configuration.
func NewProperties(cfg Tree, log *logger.Logger) (*Properties, error) {
	mode, err := models.ParseMode(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTreeConfigs, err)
	}
	strategy, err := tree.StrategyFor(cfg.Builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTreeConfigs, err)
	}
	return &Properties{
		mode:    mode,
		builder: strategy.Name(),
		bus:     events.NewBus[PropertyChange]("properties", log),
	}, nil
}

func (p *Properties) Mode() models.Mode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mode
}

func (p *Properties) Builder() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.builder
}

// SetMode changes the comparison mode.
func (p *Properties) SetMode(mode models.Mode) {
	p.mu.Lock()
	old := p.mode
	p.mode = mode
	p.mu.Unlock()

	if old != mode {
		p.bus.Publish(PropertyChange{Name: PropertyMode, Old: old.String(), New: mode.String()})
	}
}

// SetBuilder changes the builder variant. Unknown names are rejected.
func (p *Properties) SetBuilder(name string) error {
	strategy, err := tree.StrategyFor(name)
	if err != nil {
		return err
	}

	p.mu.Lock()
	old := p.builder
	p.builder = strategy.Name()
	p.mu.Unlock()

	if old != strategy.Name() {
		p.bus.Publish(PropertyChange{Name: PropertyBuilder, Old: old, New: strategy.Name()})
	}
	return nil
}

// Subscribe registers fn for property changes.
func (p *Properties) Subscribe(fn events.Handler[PropertyChange]) (unsubscribe func()) {
	return p.bus.Subscribe(fn)
}
