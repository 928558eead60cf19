// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package model defines the interfaces of the agent configuration.
package model

// Reader is a subset of Config that only allows reading of configuration
type Reader interface {
	Get(key string) interface{}
	GetString(key string) string
	GetBool(key string) bool
	GetStringSlice(key string) []string
	IsSet(key string) bool
	AllKeys() []string
	ConfigFileUsed() string
}

// Setup is a subset of Config that allows setting up the configuration
type Setup interface {
	SetDefault(key string, value interface{})
	BindEnv(key string, envvars ...string)
	BindEnvAndSetDefault(key string, val interface{}, env ...string)
	SetConfigFile(in string)
	ReadInConfig() error
}

// Writer is a subset of Config that allows writing the configuration
type Writer interface {
	Set(key string, value interface{})
}

// Config represents an object that can load and store configuration parameters
// coming from different kind of sources:
// - defaults
// - files
// - environment variables
// - flags
type Config interface {
	Reader
	Setup
	Writer
}
