// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package setup defines the configuration keys of the agent and their defaults.
package setup

import (
	"strings"

	"github.com/DataDog/datadog-checkctx/pkg/config/model"
	"github.com/DataDog/datadog-checkctx/pkg/config/viperconfig"
)

// DefaultLoggerName is the name of the logger of the check-context CLI.
const DefaultLoggerName = "CHECKCTX"

// NewDatadogConfig returns a configuration reading `DD_`-prefixed env vars,
// with every agent key registered with its default.
func NewDatadogConfig() model.Config {
	cfg := viperconfig.NewConfig("datadog", "DD", strings.NewReplacer(".", "_"))
	InitConfig(cfg)
	return cfg
}

// InitConfig registers the configuration keys and their defaults on config.
func InitConfig(config model.Setup) {
	// Hostname resolution
	config.BindEnvAndSetDefault("hostname", "")
	config.BindEnvAndSetDefault("hostname_file", "")
	config.BindEnvAndSetDefault("hostname_fqdn", false)
	config.BindEnvAndSetDefault("cloud_provider_metadata", []string{})

	// Logging
	config.BindEnvAndSetDefault("log_level", "info")
	config.BindEnvAndSetDefault("log_file", "")
	config.BindEnvAndSetDefault("log_to_console", true)
	config.BindEnvAndSetDefault("log_format_json", false)
}

// LoadWithFile reads the YAML file at path into config. An empty path keeps
// defaults and environment variables only.
func LoadWithFile(config model.Setup, path string) error {
	if path == "" {
		return nil
	}
	config.SetConfigFile(path)
	return config.ReadInConfig()
}
