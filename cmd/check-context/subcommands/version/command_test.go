// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package version

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataDog/datadog-checkctx/cmd/check-context/command"
	"github.com/DataDog/datadog-checkctx/pkg/version"
)

func setVersion(t *testing.T, agentVersion, commit string) {
	origVersion, origCommit, origNoColor := version.AgentVersion, version.Commit, color.NoColor
	version.AgentVersion, version.Commit, color.NoColor = agentVersion, commit, true
	t.Cleanup(func() {
		version.AgentVersion, version.Commit, color.NoColor = origVersion, origCommit, origNoColor
	})
}

func runVersion(t *testing.T) (string, error) {
	var out bytes.Buffer
	cmd := command.MakeCommand([]command.SubcommandFactory{Commands})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	setVersion(t, "7.50.1-rc.2+git.5.abc1234", "abc1234")

	out, err := runVersion(t)
	require.NoError(t, err)
	assert.Equal(t, "Agent 7.50.1-rc.2 - Meta: git.5.abc1234 - Commit: abc1234 - Go version: "+runtime.Version()+"\n", out)
}

func TestVersionCommandInvalidVersion(t *testing.T) {
	setVersion(t, "not-a-version", "")

	_, err := runVersion(t)
	assert.ErrorContains(t, err, `invalid agent version "not-a-version"`)
}
