// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package fxutil

import (
	"go.uber.org/fx"
)

// Module is an fx.Module for a component, with some additional data.
type Module struct {
	fx.Option
	Options []fx.Option
}

// Component is a simple wrapper around fx.Options, annotating the options as
// belonging to a single component.
func Component(opts ...fx.Option) Module {
	return Module{
		Option:  fx.Options(opts...),
		Options: opts,
	}
}
