// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup requirements. Every violated group contributes one wrapped
// sentinel to the joined error.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch {
	case cfg.App.JWTSecret == "":
		errs = append(errs, fmt.Errorf("%w: jwt secret is empty", ErrInvalidAppConfigs))
	case cfg.App.TokenDuration <= 0:
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	case cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost:
		errs = append(errs, fmt.Errorf("%w: password hash cost %d is out of range %d..%d",
			ErrInvalidAppConfigs, cfg.App.PasswordHashCost, bcrypt.MinCost, bcrypt.MaxCost))
	}

	switch {
	case cfg.Storage.DB.DSN == "":
		errs = append(errs, fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs))
	case cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite:
		errs = append(errs, fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}

	switch {
	case cfg.Server.StatusPolicy != StatusPolicyAlwaysOK && cfg.Server.StatusPolicy != StatusPolicyMirror:
		errs = append(errs, fmt.Errorf("%w: unsupported status policy %q", ErrInvalidServerConfigs, cfg.Server.StatusPolicy))
	case cfg.Server.MaxBodyBytes <= 0:
		errs = append(errs, fmt.Errorf("%w: max body bytes must be positive", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *SmokeConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
