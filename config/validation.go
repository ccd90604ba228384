/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"reflect"
	"strings"

	"github.com/boundedstack/stackutils/commonerrors"
)

// ValidateEmbedded uses reflection to find embedded structures and validate them.
func ValidateEmbedded(cfg IServiceConfiguration) error {
	if cfg == nil {
		return commonerrors.UndefinedVariable("configuration")
	}
	r := reflect.ValueOf(cfg)
	if r.Kind() != reflect.Ptr || r.IsNil() {
		return commonerrors.New(commonerrors.ErrInvalid, "configuration must be a non-nil pointer to a structure")
	}
	r = r.Elem()
	if r.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() != reflect.Struct || !f.CanAddr() || !f.Addr().CanInterface() {
			continue
		}
		validator, ok := f.Addr().Interface().(IServiceConfiguration)
		if !ok {
			continue
		}
		err := validator.Validate()
		if err != nil {
			return WrapFieldValidationError(r.Type().Field(i), err)
		}
	}
	return nil
}

// WrapFieldValidationError marks a validation error with the path of the structure field which failed.
func WrapFieldValidationError(field reflect.StructField, err error) error {
	if err == nil {
		return nil
	}
	name := field.Name
	if tag, ok := field.Tag.Lookup("mapstructure"); ok {
		if mapStructure := processMapStructureString(tag); mapStructure != "" {
			name = mapStructure
		}
	}
	return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "structure failed validation (%v)", name)
}

func processMapStructureString(tag string) string {
	elems := strings.Split(tag, ",")
	name := strings.TrimSpace(elems[0])
	if name == "-" {
		return ""
	}
	return name
}
