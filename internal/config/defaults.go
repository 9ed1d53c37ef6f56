package config

import "time"

// Defaults applied to every field that no other source has set.
const (
	DefaultAppName                = "notes"
	DefaultLogLevel               = "info"
	DefaultTokenIssuer            = "go-notes"
	DefaultTokenDuration          = 12 * time.Hour
	DefaultPasswordHashCost       = 10
	DefaultDSN                    = "sqlite://notes.db"
	DefaultMaxOpenConns           = 10
	DefaultMaxIdleConns           = 5
	DefaultConnMaxLifetime        = 30 * time.Minute
	DefaultHTTPAddress            = ":8080"
	DefaultRequestTimeout         = 30 * time.Second
	DefaultReadTimeout            = 15 * time.Second
	DefaultWriteTimeout           = 30 * time.Second
	DefaultShutdownTimeout        = 10 * time.Second
	DefaultSessionCleanupInterval = 5 * time.Minute
	DefaultDBStatsInterval        = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:             DefaultAppName,
			LogLevel:         DefaultLogLevel,
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
		},
		Storage: Storage{
			DB: DB{
				DSN:             DefaultDSN,
				MaxOpenConns:    DefaultMaxOpenConns,
				MaxIdleConns:    DefaultMaxIdleConns,
				ConnMaxLifetime: DefaultConnMaxLifetime,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Workers: Workers{
			SessionCleanupInterval: DefaultSessionCleanupInterval,
			DBStatsInterval:        DefaultDBStatsInterval,
		},
	}
}
