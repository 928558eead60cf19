// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package config

// Params defines the parameters for the config component.
type Params struct {
	// ConfFilePath is the path at which to look for configuration, usually
	// given by the --cfgpath command-line flag. It is either a YAML file or
	// a directory holding a datadog.yaml file.
	ConfFilePath string

	// configMissingOK determines whether it is a fatal error if the config
	// file does not exist.
	configMissingOK bool

	// Overrides are applied on top of the loaded configuration. Only the
	// mock honors them.
	Overrides map[string]interface{}
}

// NewParams creates a new instance of Params
func NewParams(confFilePath string, options ...func(*Params)) Params {
	params := Params{
		ConfFilePath: confFilePath,
	}
	for _, o := range options {
		o(&params)
	}
	return params
}

// WithConfigMissingOK sets the configMissingOK field.
func WithConfigMissingOK(v bool) func(*Params) {
	return func(b *Params) {
		b.configMissingOK = v
	}
}
