// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package config implements a component to handle agent configuration. This
// component wraps the configuration built by pkg/config/setup.
package config

import (
	"go.uber.org/fx"

	"github.com/DataDog/datadog-checkctx/pkg/config/model"
	"github.com/DataDog/datadog-checkctx/pkg/util/fxutil"
)

// team: agent-configuration

// Component is the component type.
type Component interface {
	model.Reader
}

// Mock implements mock-specific methods.
type Mock interface {
	Component
	model.Writer
}

// Module defines the fx options for this component.
func Module() fxutil.Module {
	return fxutil.Component(
		fx.Provide(newConfig),
	)
}

// MockModule defines the fx options for the mock component.
func MockModule() fxutil.Module {
	return fxutil.Component(
		fx.Provide(newMock),
	)
}
