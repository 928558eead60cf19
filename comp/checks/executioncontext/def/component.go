// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package executioncontext provides the execution context shared by checks:
// the agent hostname and the default HTTP headers of check requests.
package executioncontext

import (
	"github.com/DataDog/datadog-checkctx/pkg/collector/check/execctx"
)

// team: agent-runtimes

// Component is the component type.
type Component interface {
	// Get returns a copy of the execution context resolved when the agent
	// started. Callers are free to mutate the returned value.
	Get() execctx.ExecutionContext
}
