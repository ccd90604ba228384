/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logrimp provides the logr implementations which can be handed to collections for diagnostics.
package logrimp

import (
	"fmt"

	"github.com/bombsimon/logrusr/v4"
	"github.com/evanphx/hclogr"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/zapr"
	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// NewNoopLogger returns a logger discarding everything.
func NewNoopLogger() logr.Logger {
	return logr.Discard()
}

// NewStdOutLogr returns a logger to standard output.
// verbosity sets the highest V-level which is printed.
func NewStdOutLogr(verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Printf("%s: %s\n", prefix, args)
		} else {
			fmt.Println(args)
		}
	}, funcr.Options{Verbosity: verbosity})
}

// NewZapLogger returns a logger backed by zap (https://github.com/uber-go/zap).
func NewZapLogger(logger *zap.Logger) logr.Logger {
	if logger == nil {
		return NewNoopLogger()
	}
	return zapr.NewLogger(logger)
}

// NewLogrusLogger returns a logger backed by logrus.
func NewLogrusLogger(logger logrus.FieldLogger, opts ...logrusr.Option) logr.Logger {
	if logger == nil {
		return NewNoopLogger()
	}
	return logrusr.New(logger, opts...)
}

// NewHclogLogger returns a logger backed by HashiCorp's hclog.
func NewHclogLogger(logger hclog.Logger) logr.Logger {
	if logger == nil {
		return NewNoopLogger()
	}
	return hclogr.Wrap(logger)
}
