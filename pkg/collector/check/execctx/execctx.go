// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package execctx holds the execution context handed to checks: the hostname
// the agent resolved and the default HTTP headers checks use on their requests.
package execctx

import (
	"context"

	"github.com/DataDog/datadog-checkctx/pkg/util/log"
	"github.com/DataDog/datadog-checkctx/pkg/version"
)

const (
	userAgentPrefix    = "Datadog Agent/"
	defaultContentType = "application/x-www-form-urlencoded"
	defaultAccept      = "text/html, */*"
)

// AgentMetadata exposes the build information of the running agent.
type AgentMetadata interface {
	// Version returns the raw agent version string.
	Version() string
}

// HostProvider resolves the hostname of the machine the agent runs on.
type HostProvider interface {
	GetHostname(ctx context.Context) (string, error)
}

// EnvironmentProvider gives access to the services describing the agent environment.
type EnvironmentProvider interface {
	Host() HostProvider
}

// ExecutionContext caches execution information from the agent for checks.
//
// An empty Hostname means the host is unknown.
type ExecutionContext struct {
	Hostname    string
	HTTPHeaders HTTPHeaders
}

// Default returns the execution context seeded from the running agent's
// version, with an unknown hostname.
func Default() ExecutionContext {
	return DefaultFor(version.Metadata{})
}

// DefaultFor returns the default execution context using meta for the agent version.
func DefaultFor(meta AgentMetadata) ExecutionContext {
	var headers HTTPHeaders
	headers.Set("User-Agent", userAgentPrefix+meta.Version())
	headers.Set("Content-Type", defaultContentType)
	headers.Set("Accept", defaultAccept)

	return ExecutionContext{
		Hostname:    "",
		HTTPHeaders: headers,
	}
}

// FromEnvironmentProvider builds the default execution context and fills in the
// hostname reported by env.
//
// A hostname lookup failure is logged and leaves the hostname empty. The only
// error returned is the context error when ctx is done before the lookup completes.
func FromEnvironmentProvider(ctx context.Context, env EnvironmentProvider) (ExecutionContext, error) {
	return EnrichHostname(ctx, Default(), env.Host())
}

// EnrichHostname returns a copy of ec with the hostname resolved by provider.
// It follows the failure semantics of FromEnvironmentProvider.
func EnrichHostname(ctx context.Context, ec ExecutionContext, provider HostProvider) (ExecutionContext, error) {
	if err := ctx.Err(); err != nil {
		return ExecutionContext{}, err
	}

	hostname, err := provider.GetHostname(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ExecutionContext{}, ctxErr
	}
	if err != nil {
		log.Warnf("Failed to get hostname: %v", err)
		hostname = ""
	}

	enriched := ec.Clone()
	enriched.Hostname = hostname
	return enriched, nil
}

// Clone returns a deep copy of the execution context.
func (ec ExecutionContext) Clone() ExecutionContext {
	return ExecutionContext{
		Hostname:    ec.Hostname,
		HTTPHeaders: ec.HTTPHeaders.Clone(),
	}
}

// WithHeader returns a copy of the execution context with field set to value.
func (ec ExecutionContext) WithHeader(field, value string) ExecutionContext {
	c := ec.Clone()
	c.HTTPHeaders.Set(field, value)
	return c
}

// Header returns the value of the default header field, if set.
func (ec *ExecutionContext) Header(field string) (string, bool) {
	return ec.HTTPHeaders.Get(field)
}

// SetHeader overrides a default header field and returns the replaced value.
func (ec *ExecutionContext) SetHeader(field, value string) (string, bool) {
	return ec.HTTPHeaders.Set(field, value)
}

// UnsetHeader removes a default header field and returns its value.
func (ec *ExecutionContext) UnsetHeader(field string) (string, bool) {
	return ec.HTTPHeaders.Unset(field)
}
