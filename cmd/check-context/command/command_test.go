// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package command

import (
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeCommandGlobalFlags(t *testing.T) {
	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })
	color.NoColor = false

	var got GlobalParams
	factory := func(globalParams *GlobalParams) []*cobra.Command {
		return []*cobra.Command{{
			Use: "probe",
			Run: func(*cobra.Command, []string) { got = *globalParams },
		}}
	}

	cmd := MakeCommand([]SubcommandFactory{factory})
	cmd.SetArgs([]string{"probe", "-c", "/etc/datadog-agent", "--no-color"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, GlobalParams{ConfFilePath: "/etc/datadog-agent", NoColor: true}, got)
	assert.True(t, color.NoColor)
}
