// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package executioncontextimpl implements the executioncontext component.
package executioncontextimpl

import (
	"context"
	"maps"
	"slices"
	"sync"

	"go.uber.org/fx"

	executioncontext "github.com/DataDog/datadog-checkctx/comp/checks/executioncontext/def"
	"github.com/DataDog/datadog-checkctx/comp/core/hostname/hostnameinterface"
	log "github.com/DataDog/datadog-checkctx/comp/core/log/def"
	"github.com/DataDog/datadog-checkctx/pkg/collector/check/execctx"
)

// Requires defines the dependencies for the executioncontext component
type Requires struct {
	fx.In

	Lc       fx.Lifecycle
	Log      log.Component
	Hostname hostnameinterface.Component
}

// Provides defines the output of the executioncontext component
type Provides struct {
	fx.Out

	Comp executioncontext.Component
}

type executionContext struct {
	log  log.Component
	host hostnameinterface.Component

	mu sync.RWMutex
	ec execctx.ExecutionContext
}

// hostProvider adapts the hostname component to execctx.HostProvider.
type hostProvider struct {
	hostname hostnameinterface.Component
}

func (h hostProvider) GetHostname(ctx context.Context) (string, error) {
	return h.hostname.Get(ctx)
}

// environment exposes the agent components to execctx.FromEnvironmentProvider.
type environment struct {
	hostname hostnameinterface.Component
}

func (e environment) Host() execctx.HostProvider {
	return hostProvider{hostname: e.hostname}
}

// NewComponent creates a new executioncontext component. The context starts
// as the default one and gets its hostname when the app starts.
func NewComponent(reqs Requires) Provides {
	c := &executionContext{
		log:  reqs.Log,
		host: reqs.Hostname,
		ec:   execctx.Default(),
	}
	reqs.Lc.Append(fx.Hook{OnStart: c.start})
	return Provides{Comp: c}
}

func (c *executionContext) start(ctx context.Context) error {
	ec, err := execctx.FromEnvironmentProvider(ctx, environment{hostname: c.host})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.ec = ec
	c.mu.Unlock()

	c.log.Debugf("Check execution context resolved: hostname=%q headers=%v", ec.Hostname, slices.Sorted(maps.Keys(maps.Collect(ec.HTTPHeaders.All()))))
	return nil
}

// Get implements executioncontext.Component#Get.
func (c *executionContext) Get() execctx.ExecutionContext {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ec.Clone()
}
