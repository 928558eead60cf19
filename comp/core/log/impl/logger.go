// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package logimpl implements a component to handle logging internal to the agent.
package logimpl

import (
	"context"
	"errors"

	"go.uber.org/fx"

	"github.com/DataDog/datadog-checkctx/comp/core/config"
	logdef "github.com/DataDog/datadog-checkctx/comp/core/log/def"
	"github.com/DataDog/datadog-checkctx/pkg/util/fxutil"
	pkglog "github.com/DataDog/datadog-checkctx/pkg/util/log"
	pkglogsetup "github.com/DataDog/datadog-checkctx/pkg/util/log/setup"
)

// Requires declares the input types to the logger component constructor
type Requires struct {
	fx.In

	Lc     fx.Lifecycle
	Params logdef.Params
	Config config.Component
}

// Provides defines the output of the log component
type Provides struct {
	fx.Out

	Comp logdef.Component
}

// Module defines the fx options for this component.
func Module() fxutil.Module {
	return fxutil.Component(
		fx.Provide(NewComponent),
	)
}

// NewComponent creates a log.Component using the provided config
func NewComponent(deps Requires) (Provides, error) {
	if !deps.Params.IsLogLevelFnSet() {
		return Provides{}, errors.New("must call one of log.ForOneShot or log.ForDaemon")
	}

	err := pkglogsetup.SetupLogger(
		pkglogsetup.LoggerName(deps.Params.LoggerName()),
		pkglogsetup.Options{
			Level:      deps.Params.LogLevelFn(deps.Config),
			File:       deps.Params.LogFileFn(deps.Config),
			Console:    deps.Params.LogToConsoleFn(deps.Config),
			JSONFormat: deps.Params.LogFormatJSONFn(deps.Config),
		})
	if err != nil {
		return Provides{}, err
	}

	l := pkglog.NewWrapper()
	deps.Lc.Append(fx.Hook{OnStop: func(context.Context) error {
		l.Flush()
		return nil
	}})

	return Provides{Comp: l}, nil
}
