package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/workbench/navstate/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager reading
// $XDG_CONFIG_HOME/navstate/config.toml. A non-empty configFile overrides
// the lookup.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	v.SetConfigType("toml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	// NAVSTATE_DATABASE_PATH, NAVSTATE_NAVIGATION_MAX_URL_SIZE, ...
	v.SetEnvPrefix("NAVSTATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "NAVSTATE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind NAVSTATE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "NAVSTATE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind NAVSTATE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.parse()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// parse turns what viper read into a normalized, validated Config.
func (m *Manager) parse() (*Config, error) {
	config, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	configFile, createErr := m.createDefaultConfig()
	if createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configFile,
			createErr,
		)
	}
	m.viper.SetConfigFile(configFile)
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.Navigation.DefaultPlace = strings.TrimSpace(config.Navigation.DefaultPlace)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return err
		}
	}

	// Our own write will trigger fsnotify; the in-memory config is already current.
	if m.watching {
		m.skipNextReload = true
	}
	if err := WriteConfigOrdered(cfg, configFile); err != nil {
		m.skipNextReload = false
		return err
	}

	m.config = cfg
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and the JSON schema next to the
// config file and returns the config file path.
func (m *Manager) createDefaultConfig() (string, error) {
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return configFile, err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return configFile, err
	}

	log := logging.NewFromEnv()
	log.Info().Str("path", configFile).Msg("created default configuration file")

	schemaFile := filepath.Join(filepath.Dir(configFile), schemaName)
	if err := WriteSchemaFile(schemaFile); err != nil {
		log.Warn().Err(err).Msg("failed to write config schema")
	}

	return configFile, nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("navigation.max_url_size", defaults.Navigation.MaxURLSize)
	m.viper.SetDefault("navigation.default_place", defaults.Navigation.DefaultPlace)

	m.viper.SetDefault("snapshot.enabled", defaults.Snapshot.Enabled)
	m.viper.SetDefault("snapshot.interval_ms", defaults.Snapshot.IntervalMs)
	m.viper.SetDefault("snapshot.max_states", defaults.Snapshot.MaxStates)

	m.viper.SetDefault("bookmarks.max_listed", defaults.Bookmarks.MaxListed)
}
