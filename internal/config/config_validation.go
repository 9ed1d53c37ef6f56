// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// bcrypt accepts costs in [4, 31].
const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and positive duration are required", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost %d is out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and positive request timeout are required", ErrInvalidServerConfigs)
	}

	if cfg.Workers.SessionCleanupInterval <= 0 || cfg.Workers.DBStatsInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
