// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package hostname

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataDog/datadog-checkctx/cmd/check-context/command"
	"github.com/DataDog/datadog-checkctx/comp/core/config"
	"github.com/DataDog/datadog-checkctx/comp/core/hostname/hostnameinterface"
	"github.com/DataDog/datadog-checkctx/pkg/util/fxutil"
)

func TestCommand(t *testing.T) {
	fxutil.TestOneShotSubcommand(t,
		Commands(&command.GlobalParams{ConfFilePath: "/etc/datadog-agent"}),
		[]string{"hostname", "--provider"},
		printHostname,
		func(params *cliParams, confParams config.Params) {
			require.True(t, params.showProvider)
			require.Equal(t, "/etc/datadog-agent", params.ConfFilePath)
			require.Equal(t, "/etc/datadog-agent", confParams.ConfFilePath)
		})
}

func TestPrintHostname(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	hostname, mock := hostnameinterface.NewMock("web-01")

	var out bytes.Buffer
	params := &cliParams{GlobalParams: &command.GlobalParams{}, out: &out}
	require.NoError(t, printHostname(nil, hostname, params))
	assert.Equal(t, "web-01\n", out.String())

	out.Reset()
	params.showProvider = true
	require.NoError(t, printHostname(nil, hostname, params))
	assert.Equal(t, "web-01 (provider: mock)\n", out.String())

	mock.Set("")
	assert.ErrorContains(t, printHostname(nil, hostname, params), "Error getting the hostname")
}
