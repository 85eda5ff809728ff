// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/gookit/validate"
)

// validate checks the client config using the struct tags of each group
// and the cross-field rules tags cannot express.
func (cfg *ClientConfig) validate() error {
	if err := validateStruct(&cfg.App, ErrInvalidAppConfigs); err != nil {
		return err
	}

	if err := validateStruct(&cfg.Adapter, ErrInvalidAdapterConfigs); err != nil {
		return err
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if err := validateStruct(&cfg.Workers, ErrInvalidWorkerConfigs); err != nil {
		return err
	}
	if cfg.Workers.ProbeInterval < 0 {
		return fmt.Errorf("%w: negative probe interval", ErrInvalidWorkerConfigs)
	}

	if cfg.Cache.Enabled && (cfg.Cache.SizeMB <= 0 || cfg.Cache.TTL <= 0) {
		return ErrInvalidCacheConfigs
	}

	return nil
}

func validateStruct(v any, sentinel error) error {
	vd := validate.Struct(v)
	if !vd.Validate() {
		return fmt.Errorf("%w: %s", sentinel, vd.Errors.One())
	}
	return nil
}
