package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

// SessionConfig drives the PIN gate. PINHash (bcrypt) takes precedence
// over the plain PIN when both are set.
type SessionConfig struct {
	Secret            string `mapstructure:"secret"`
	PIN               string `mapstructure:"pin"`
	PINHash           string `mapstructure:"pin_hash"`
	InactivityMinutes int    `mapstructure:"inactivity_minutes"`
	CookieName        string `mapstructure:"cookie_name"`
}

// InactivityTimeout returns the configured inactivity window.
func (s SessionConfig) InactivityTimeout() time.Duration {
	if s.InactivityMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(s.InactivityMinutes) * time.Minute
}

type BackupConfig struct {
	Dir           string `mapstructure:"dir"`
	EncryptionKey string `mapstructure:"encryption_key"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	Backup   BackupConfig   `mapstructure:"backup"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from the given file path (e.g. "config.yaml").
// A missing config file is not an error: defaults plus environment
// overrides (PORTAL_SESSION_PIN, PORTAL_SERVER_PORT, ...) are enough to boot.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		v.SetDefault("server.address", "")
		v.SetDefault("server.port", 5020)
		v.SetDefault("server.mode", "")
		v.SetDefault("database.path", "data/portal.db")
		v.SetDefault("database.log_mode", false)
		v.SetDefault("session.secret", "cambia-esta-clave-por-una-mas-larga")
		v.SetDefault("session.pin", "1234")
		v.SetDefault("session.inactivity_minutes", 15)
		v.SetDefault("session.cookie_name", "portal_token")
		v.SetDefault("backup.dir", "data/backups")

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		// environment overrides, e.g. PORTAL_SESSION_PIN=4321
		v.SetEnvPrefix("PORTAL")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if readErr := v.ReadInConfig(); readErr != nil {
			if _, notFound := readErr.(viper.ConfigFileNotFoundError); !notFound {
				err = fmt.Errorf("read config: %w", readErr)
				return
			}
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}
