// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package hostnameimpl

import (
	"go.uber.org/fx"

	"github.com/DataDog/datadog-checkctx/comp/core/hostname/hostnameinterface"
	"github.com/DataDog/datadog-checkctx/pkg/util/fxutil"
)

const defaultMockHostname = "my-hostname"

type mockDependencies struct {
	fx.In

	Name hostnameinterface.MockHostname `optional:"true"`
}

type mockProvides struct {
	fx.Out

	Comp hostnameinterface.Component
	Mock hostnameinterface.Mock
}

// MockModule defines the fx options for the mock component. The hostname
// defaults to "my-hostname" and can be changed by supplying a
// hostnameinterface.MockHostname.
func MockModule() fxutil.Module {
	return fxutil.Component(
		fx.Provide(newMock),
	)
}

func newMock(deps mockDependencies) mockProvides {
	name := deps.Name
	if name == "" {
		name = defaultMockHostname
	}
	comp, mock := hostnameinterface.NewMock(name)
	return mockProvides{Comp: comp, Mock: mock}
}
