package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for the optional JSON or
// YAML config file. Durations are written as strings such as "30s".
type StructuredFileConfig struct {
	App struct {
		Name             string   `json:"name" yaml:"name"`
		LogLevel         string   `json:"log_level" yaml:"log_level"`
		TokenSignKey     string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration    Duration `json:"token_duration" yaml:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost" yaml:"password_hash_cost"`
		SecureCookies    bool     `json:"secure_cookies" yaml:"secure_cookies"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn" yaml:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns" yaml:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns" yaml:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Redis struct {
			Address  string `json:"address" yaml:"address"`
			Password string `json:"password" yaml:"password"`
			DB       int    `json:"db" yaml:"db"`
		} `json:"redis,omitempty" yaml:"redis,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ReadTimeout     Duration `json:"read_timeout" yaml:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout" yaml:"write_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Workers struct {
		SessionCleanupInterval Duration `json:"session_cleanup_interval" yaml:"session_cleanup_interval"`
		DBStatsInterval        Duration `json:"db_stats_interval" yaml:"db_stats_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func parseFile(filePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructuredConfig(), nil
}

func (f StructuredFileConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:             f.App.Name,
			LogLevel:         f.App.LogLevel,
			TokenSignKey:     f.App.TokenSignKey,
			TokenIssuer:      f.App.TokenIssuer,
			TokenDuration:    time.Duration(f.App.TokenDuration),
			PasswordHashCost: f.App.PasswordHashCost,
			SecureCookies:    f.App.SecureCookies,
		},
		Storage: Storage{
			DB: DB{
				DSN:             f.Storage.DB.DSN,
				MaxOpenConns:    f.Storage.DB.MaxOpenConns,
				MaxIdleConns:    f.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: time.Duration(f.Storage.DB.ConnMaxLifetime),
			},
			Redis: Redis{
				Address:  f.Storage.Redis.Address,
				Password: f.Storage.Redis.Password,
				DB:       f.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ReadTimeout:     time.Duration(f.Server.ReadTimeout),
			WriteTimeout:    time.Duration(f.Server.WriteTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
		Workers: Workers{
			SessionCleanupInterval: time.Duration(f.Workers.SessionCleanupInterval),
			DBStatsInterval:        time.Duration(f.Workers.DBStatsInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
