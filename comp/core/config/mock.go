// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package config

import (
	"testing"

	"go.uber.org/fx"

	pkgconfigsetup "github.com/DataDog/datadog-checkctx/pkg/config/setup"
)

type mockDependencies struct {
	fx.In

	Params Params `optional:"true"`
}

type mockProvides struct {
	fx.Out

	Comp Component
	Mock Mock
}

// NewMock returns a mock for the config component with every key at its
// default value, environment variables applied, and overrides set.
func NewMock(t testing.TB, overrides map[string]interface{}) Mock {
	t.Helper()
	return newMockConfig(overrides)
}

func newMock(deps mockDependencies) mockProvides {
	m := newMockConfig(deps.Params.Overrides)
	return mockProvides{Comp: m, Mock: m}
}

func newMockConfig(overrides map[string]interface{}) *cfg {
	config := pkgconfigsetup.NewDatadogConfig()
	for k, v := range overrides {
		config.Set(k, v)
	}
	return &cfg{Config: config}
}
