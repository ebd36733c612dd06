// hotreload.go: dynamic tick-duration reload with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package sim

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotConfig watches a configuration file and pushes tick-duration changes
// into a running Simulator. It is the one supported form of cross-goroutine
// interaction with a Simulator: every other field is exclusive to the
// goroutine driving Go()/Simulate().
type HotConfig struct {
	sim     *Simulator
	watcher *argus.Watcher
	mu      sync.RWMutex
	tick    time.Duration

	// OnReload is called after the tick duration is successfully reloaded.
	// It must be fast and non-blocking.
	OnReload func(oldTick, newTick time.Duration)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch. Supports
	// JSON, YAML, TOML, HCL, INI, Properties formats, same as argus.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after the tick duration is successfully reloaded.
	OnReload func(oldTick, newTick time.Duration)
}

// NewHotConfig creates a hot-reloadable tick-duration watcher for sim. It
// creates the file watcher immediately, but does not start polling the
// configuration file until Start is called.
//
// Supported configuration key:
//   - sim.tick (duration string, e.g. "16ms"): the simulation tick duration.
func NewHotConfig(sim *Simulator, opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}
	if sim == nil {
		return nil, fmt.Errorf("sim cannot be nil")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	hc := &HotConfig{
		sim:      sim,
		OnReload: opts.OnReload,
		tick:     sim.tick(),
	}

	argusConfig := argus.Config{PollInterval: opts.PollInterval}
	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins polling the configuration file for changes.
func (hc *HotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops polling the configuration file.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// Tick returns the most recently applied tick duration (thread-safe).
func (hc *HotConfig) Tick() time.Duration {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.tick
}

func (hc *HotConfig) handleConfigChange(data map[string]interface{}) {
	newTick, ok := parseTickDuration(data)
	if !ok {
		return
	}

	hc.mu.Lock()
	oldTick := hc.tick
	hc.tick = newTick
	hc.mu.Unlock()

	hc.sim.SetTick(newTick)

	if hc.OnReload != nil {
		hc.OnReload(oldTick, newTick)
	}
}

// parseTickDuration extracts sim.tick from Argus config data, tolerating
// both a nested "sim" section and a flat document whose only relevant key
// is "tick".
func parseTickDuration(data map[string]interface{}) (time.Duration, bool) {
	section, ok := data["sim"].(map[string]interface{})
	if !ok {
		if _, hasTick := data["tick"]; hasTick {
			section = data
		} else {
			return 0, false
		}
	}

	str, ok := section["tick"].(string)
	if !ok {
		return 0, false
	}
	d, err := time.ParseDuration(str)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}
