// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/fx"

	"github.com/DataDog/datadog-checkctx/pkg/config/model"
	pkgconfigsetup "github.com/DataDog/datadog-checkctx/pkg/config/setup"
)

const defaultConfigFileName = "datadog.yaml"

type dependencies struct {
	fx.In

	Params Params
}

type cfg struct {
	model.Config
}

func newConfig(deps dependencies) (Component, error) {
	config := pkgconfigsetup.NewDatadogConfig()
	if err := setupConfig(config, deps.Params); err != nil {
		return nil, err
	}
	return &cfg{Config: config}, nil
}

// setupConfig loads the configuration file named by the params, if any.
func setupConfig(config model.Config, p Params) error {
	path := resolveConfigFile(p.ConfFilePath)

	err := pkgconfigsetup.LoadWithFile(config, path)
	if err != nil && !(p.configMissingOK && errors.Is(err, fs.ErrNotExist)) {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("cannot access the Datadog config file (%w); try running the command under the same user as the Datadog Agent", err)
		}
		return fmt.Errorf("unable to load Datadog config file: %w", err)
	}
	return nil
}

func resolveConfigFile(confFilePath string) string {
	if confFilePath == "" {
		return ""
	}
	if strings.HasSuffix(confFilePath, ".yaml") || strings.HasSuffix(confFilePath, ".yml") {
		return confFilePath
	}
	return filepath.Join(confFilePath, defaultConfigFileName)
}
