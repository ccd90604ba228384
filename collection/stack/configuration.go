/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package stack

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/boundedstack/stackutils/commonerrors"
	"github.com/boundedstack/stackutils/config"
	"github.com/boundedstack/stackutils/safecast"
)

// Configuration describes stacks in a form which can be loaded from the environment.
//
// With the prefix `STACK`, the following environment variables are considered:
//
//	STACK_CAPACITY_INITIAL, STACK_CAPACITY_MIN, STACK_CAPACITY_MAX
//	STACK_MAX_ELEMENT_SIZE (human readable byte size e.g. 1KiB or 2kB)
type Configuration struct {
	Capacity       CapacityPolicy `mapstructure:"capacity"`
	MaxElementSize string         `mapstructure:"max_element_size"`
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		Capacity:       DefaultCapacityPolicy(),
		MaxElementSize: humanize.IBytes(DefaultMaxElementByteSize),
	}
}

func (cfg *Configuration) Validate() error {
	// Validate Embedded Structs
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	err = validation.ValidateStruct(cfg,
		validation.Field(&cfg.MaxElementSize, validation.Required, validation.By(isByteSize)),
	)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid stack configuration")
	}
	return nil
}

// MaxElementByteSize returns the maximum element size in bytes.
func (cfg *Configuration) MaxElementByteSize() (int, error) {
	if cfg == nil {
		return 0, commonerrors.UndefinedVariable("stack configuration")
	}
	size, err := humanize.ParseBytes(cfg.MaxElementSize)
	if err != nil {
		return 0, commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "could not parse element size %q", cfg.MaxElementSize)
	}
	return safecast.ToInt(size), nil
}

// LoadConfiguration loads a stack configuration from the environment variables starting with envVarPrefix.
// Values which are not set default to those of DefaultConfiguration.
func LoadConfiguration(envVarPrefix string) (*Configuration, error) {
	cfg := &Configuration{}
	err := config.Load(envVarPrefix, cfg, DefaultConfiguration())
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func isByteSize(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected a string but got %T", value)
	}
	size, err := humanize.ParseBytes(s)
	if err != nil {
		return err
	}
	if size == 0 {
		return errors.New("size must be positive")
	}
	return nil
}
