// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package fx provides the fx module for the executioncontext component
package fx

import (
	"go.uber.org/fx"

	executioncontextimpl "github.com/DataDog/datadog-checkctx/comp/checks/executioncontext/impl"
	"github.com/DataDog/datadog-checkctx/pkg/util/fxutil"
)

// Module defines the fx options for this component
func Module() fxutil.Module {
	return fxutil.Component(
		fx.Provide(executioncontextimpl.NewComponent),
	)
}
