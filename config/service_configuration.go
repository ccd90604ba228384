/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads service configurations from the environment, `.env` files and flags.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/boundedstack/stackutils/commonerrors"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "uniqueprefixforprivateflagbindingkeys123" // Has to be lower case and hopefully unique
)

// Load loads the configuration from the environment (i.e. .env file, environment variables) and puts the entries into the configuration object configurationToSet.
// If not found in the environment, the values will come from the default values defined in defaultConfiguration.
// `envVarPrefix` defines a prefix that ENVIRONMENT variables will use.  E.g. if your prefix is "stack", the env registry will look for env variables that start with "STACK_".
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but reuses the viper session provided.
// Precedence (highest first): explicit `Set` calls, flags, environment (variables or `.env`), values of defaultConfiguration, flag default values.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	if viperSession == nil {
		err = commonerrors.UndefinedVariable("viper session")
		return
	}
	if configurationToSet == nil {
		err = commonerrors.UndefinedVariable("configuration to set")
		return
	}
	if defaultConfiguration != nil {
		var defaults map[string]interface{}
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not decode default configuration")
			return
		}
		err = viperSession.MergeConfigMap(defaults)
		if err != nil {
			return
		}
	}

	// Load .env file contents into environment, if it exists
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)

	linkFlagKeysToStructureKeys(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode config into struct")
		return
	}
	err = configurationToSet.Validate()
	return
}

// BindFlagToEnv binds pflags to environment variable.
// Envvar is the environment variable string with or without the prefix envVarPrefix
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	if viperSession == nil {
		err = commonerrors.UndefinedVariable("viper session")
		return
	}
	if flag == nil {
		err = commonerrors.UndefinedVariable("flag")
		return
	}
	setEnvOptions(viperSession, envVarPrefix)
	shortKey, cleansedEnvVar := generateEnvVarConfigKeys(envVar, envVarPrefix)

	err = viperSession.BindPFlag(shortKey, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(shortKey, cleansedEnvVar)
	return
}

func generateEnvVarConfigKeys(envVar, envVarPrefix string) (shortKey string, cleansedEnvVar string) {
	envVarLower := strings.ToLower(envVar)
	envVarPrefixLower := strings.ToLower(envVarPrefix)
	short := envVarLower
	if envVarPrefixLower != "" && strings.HasPrefix(envVarLower, envVarPrefixLower) {
		short = strings.TrimPrefix(strings.TrimPrefix(envVarLower, envVarPrefixLower), EnvVarSeparator)
	}
	shortKey = fmt.Sprintf("%v%v%v", flagKeyPrefix, configKeySeparator, strings.ReplaceAll(short, EnvVarSeparator, configKeySeparator))
	cleansedEnvVar = strings.ToUpper(strings.ReplaceAll(fmt.Sprintf("%v%v%v", envVarPrefix, EnvVarSeparator, short), configKeySeparator, EnvVarSeparator))
	return
}

func isFlagKey(key string) bool {
	return strings.HasPrefix(key, flagKeyPrefix)
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return reflect.ValueOf(value).IsZero()
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// linkFlagKeysToStructureKeys copies values of flags bound via BindFlagToEnv onto the structure keys they relate to.
// Viper aliasing does not work well with multi-level keys, hence the manual binding.
func linkFlagKeysToStructureKeys(viperSession *viper.Viper, envVarPrefix string) {
	keys := viperSession.AllKeys()
	for i := range keys {
		key := keys[i]
		if isFlagKey(key) {
			continue
		}
		flagKey, _ := generateEnvVarConfigKeys(key, envVarPrefix)
		if viperSession.IsSet(flagKey) {
			viperSession.Set(key, viperSession.Get(flagKey))
			continue
		}
		value := viperSession.Get(flagKey)
		if isEmpty(value) {
			continue
		}
		viperSession.SetDefault(key, value)
		if isEmpty(viperSession.Get(key)) {
			viperSession.Set(key, value)
		}
	}
}
