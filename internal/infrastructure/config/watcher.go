package config

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/workbench/navstate/internal/logging"
)

// OnConfigChange registers a callback run after every successful reload.
// Callbacks run without the manager lock held.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// Watch reloads the configuration whenever the file changes on disk.
// A change caused by Save is synced without re-validation. Invalid edits
// are logged and the previous configuration stays active.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.viper.ConfigFileUsed() == "" {
		return fmt.Errorf("configuration not loaded")
	}

	log := logging.WithComponent(ctx, "config")
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.handleFileEvent(log, e)
	})
	m.viper.WatchConfig()
	m.watching = true

	logging.FromContext(log).Debug().Str("file", m.viper.ConfigFileUsed()).Msg("watching config file")
	return nil
}

func (m *Manager) handleFileEvent(ctx context.Context, e fsnotify.Event) {
	log := logging.FromContext(ctx)
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

	m.mu.Lock()
	if m.skipNextReload {
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to resync config after save")
		}
	} else if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("ignoring invalid config change")
		return
	}

	cfg := m.config
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

// reload re-reads and validates the file. Callers hold m.mu.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg, err := m.parse()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}
