// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package logimpl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/DataDog/datadog-checkctx/comp/core/config"
	logdef "github.com/DataDog/datadog-checkctx/comp/core/log/def"
	"github.com/DataDog/datadog-checkctx/pkg/util/fxutil"
)

func TestLogToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "agent.log")

	logger := fxutil.Test[logdef.Component](t,
		fx.Supply(config.Params{Overrides: map[string]interface{}{
			"log_file":       logFile,
			"log_level":      "debug",
			"log_to_console": false,
		}}),
		config.MockModule(),
		fx.Supply(logdef.ForDaemon("TEST", "log_file", "")),
		Module(),
	)

	logger.Debugf("resolved %s", "web-01")
	logger.Flush()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "TEST | DEBUG |")
	assert.Contains(t, string(content), "resolved web-01")
}

func TestMissingParams(t *testing.T) {
	app := fx.New(
		fx.Supply(logdef.Params{}),
		config.MockModule(),
		Module(),
		fx.Invoke(func(logdef.Component) {}),
		fx.NopLogger,
	)
	require.Error(t, app.Err())
	assert.Contains(t, app.Err().Error(), "must call one of log.ForOneShot or log.ForDaemon")
}
