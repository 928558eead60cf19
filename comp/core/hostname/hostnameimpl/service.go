// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package hostnameimpl implements a component to get the hostname of the
// agent through pkg/util/hostname.
package hostnameimpl

import (
	"context"

	"go.uber.org/fx"

	"github.com/DataDog/datadog-checkctx/comp/core/config"
	"github.com/DataDog/datadog-checkctx/comp/core/hostname/hostnameinterface"
	"github.com/DataDog/datadog-checkctx/pkg/util/fxutil"
	pkghostname "github.com/DataDog/datadog-checkctx/pkg/util/hostname"
)

// Module defines the fx options for this component.
func Module() fxutil.Module {
	return fxutil.Component(
		fx.Provide(newHostnameService),
	)
}

type dependencies struct {
	fx.In

	Config config.Component
}

type service struct {
	config config.Component
}

var _ hostnameinterface.Component = (*service)(nil)

func newHostnameService(deps dependencies) hostnameinterface.Component {
	return &service{config: deps.Config}
}

// Get returns the host name for the agent.
func (hs *service) Get(ctx context.Context) (string, error) {
	return pkghostname.Get(ctx, hs.config)
}

// GetSafe is Get(), but it returns 'unknown host' if anything goes wrong.
func (hs *service) GetSafe(ctx context.Context) string {
	name, err := hs.Get(ctx)
	if err != nil {
		return "unknown host"
	}
	return name
}

// GetWithProvider returns the hostname for the Agent and the provider that was used to retrieve it.
func (hs *service) GetWithProvider(ctx context.Context) (hostnameinterface.Data, error) {
	data, err := pkghostname.GetWithProvider(ctx, hs.config)
	if err != nil {
		return hostnameinterface.Data{}, err
	}
	return hostnameinterface.Data{
		Hostname: data.Hostname,
		Provider: data.Provider,
	}, nil
}
