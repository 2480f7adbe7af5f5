package config

import (
	"context"
	"fmt"
	"reflect"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/splitview/internal/logging"
)

// reloadOps are the file events that can change the config contents.
const reloadOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// Watch reloads config.toml whenever it changes on disk and passes the new
// config to the OnConfigChange callbacks. Edits that leave the parsed config
// unchanged, such as whitespace or comments, trigger no callbacks.
// Calling Watch again is a no-op.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	log := logging.FromContext(logging.WithComponent(ctx, "config"))

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&reloadOps == 0 {
			return
		}
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

		m.mu.Lock()
		if m.skipNextReload {
			// Save already stored the new config.
			m.skipNextReload = false
			if err := m.viper.ReadInConfig(); err != nil {
				log.Warn().Err(err).Msg("failed to sync viper after save")
			}
			m.notifyCallbacksLocked()
			return
		}

		changed, err := m.reload()
		if err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("keeping previous config")
			return
		}
		if !changed {
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked unlocks m.mu, then runs every callback.
func (m *Manager) notifyCallbacksLocked() {
	cfg := m.config
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

// OnConfigChange registers fn to run after each effective reload.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, fn)
}

// reload re-reads the file and reports whether the parsed config differs
// from the current one. m.mu must be held for write.
func (m *Manager) reload() (bool, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return false, err
	}

	cfg, err := m.unmarshalConfig()
	if err != nil {
		return false, err
	}
	if err := ensureDatabasePath(cfg); err != nil {
		return false, err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return false, fmt.Errorf("configuration validation failed: %w", err)
	}

	if reflect.DeepEqual(m.config, cfg) {
		return false, nil
	}
	m.config = cfg
	return true, nil
}
