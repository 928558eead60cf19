// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package hostnameimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/DataDog/datadog-checkctx/comp/core/config"
	"github.com/DataDog/datadog-checkctx/comp/core/hostname/hostnameinterface"
	"github.com/DataDog/datadog-checkctx/pkg/util/fxutil"
	pkghostname "github.com/DataDog/datadog-checkctx/pkg/util/hostname"
)

func TestGet(t *testing.T) {
	pkghostname.ResetCache()
	t.Cleanup(pkghostname.ResetCache)

	s := fxutil.Test[hostnameinterface.Component](t,
		fx.Supply(config.Params{Overrides: map[string]interface{}{"hostname": "test-hostname"}}),
		config.MockModule(),
		Module(),
	)

	name, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-hostname", name)

	data, err := s.GetWithProvider(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-hostname", data.Hostname)
	assert.True(t, data.FromConfiguration())

	assert.Equal(t, "test-hostname", s.GetSafe(context.Background()))
}

func TestMockModule(t *testing.T) {
	deps := fxutil.Test[struct {
		fx.In

		Comp hostnameinterface.Component
		Mock hostnameinterface.Mock
	}](t, MockModule())

	assert.Equal(t, "my-hostname", deps.Comp.GetSafe(context.Background()))

	deps.Mock.Set("other")
	assert.Equal(t, "other", deps.Comp.GetSafe(context.Background()))
}

func TestMockModuleWithName(t *testing.T) {
	s := fxutil.Test[hostnameinterface.Component](t,
		fx.Supply(hostnameinterface.MockHostname("custom")),
		MockModule(),
	)
	assert.Equal(t, "custom", s.GetSafe(context.Background()))
}
