// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/cihub/seelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapper(t *testing.T) {
	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	l, err := seelog.LoggerFromWriterWithMinLevelAndFormat(w, seelog.TraceLvl, "%Level %Msg%n")
	require.NoError(t, err)
	SetupLogger(l, "trace")
	t.Cleanup(func() { logger = nil })

	wrapper := NewWrapper()
	wrapper.Infof("hello %s", "world")
	err = wrapper.Warn("careful")
	w.Flush()

	assert.EqualError(t, err, "careful")
	assert.Contains(t, b.String(), "Info hello world")
	assert.Contains(t, b.String(), "Warn careful")
}

func TestWrapperBuffersBeforeSetup(t *testing.T) {
	logger = nil
	bufferLogsBeforeInit = true
	t.Cleanup(func() { logger = nil })

	NewWrapper().Debugf("early %d", 1)

	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	l, err := seelog.LoggerFromWriterWithMinLevelAndFormat(w, seelog.TraceLvl, "%Level %Msg%n")
	require.NoError(t, err)
	SetupLogger(l, "debug")
	w.Flush()

	assert.Contains(t, b.String(), "Debug early 1")
}
