// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewDatadogConfig()

	assert.Equal(t, "", cfg.GetString("hostname"))
	assert.Equal(t, "", cfg.GetString("hostname_file"))
	assert.False(t, cfg.GetBool("hostname_fqdn"))
	assert.Empty(t, cfg.GetStringSlice("cloud_provider_metadata"))
	assert.Equal(t, "info", cfg.GetString("log_level"))
	assert.True(t, cfg.GetBool("log_to_console"))
	assert.Equal(t, "", cfg.ConfigFileUsed())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DD_HOSTNAME", "env-host")
	t.Setenv("DD_HOSTNAME_FQDN", "true")
	t.Setenv("DD_CLOUD_PROVIDER_METADATA", "gcp")

	cfg := NewDatadogConfig()
	assert.Equal(t, "env-host", cfg.GetString("hostname"))
	assert.True(t, cfg.GetBool("hostname_fqdn"))
	assert.Equal(t, []string{"gcp"}, cfg.GetStringSlice("cloud_provider_metadata"))
}

func TestLoadWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datadog.yaml")
	content := "hostname: file-host\nlog_level: debug\ncloud_provider_metadata:\n  - gcp\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := NewDatadogConfig()
	require.NoError(t, LoadWithFile(cfg, path))

	assert.Equal(t, "file-host", cfg.GetString("hostname"))
	assert.Equal(t, "debug", cfg.GetString("log_level"))
	assert.Equal(t, []string{"gcp"}, cfg.GetStringSlice("cloud_provider_metadata"))
	assert.Equal(t, path, cfg.ConfigFileUsed())
}

func TestLoadWithFileMissing(t *testing.T) {
	cfg := NewDatadogConfig()
	assert.NoError(t, LoadWithFile(cfg, ""))
	assert.Error(t, LoadWithFile(cfg, filepath.Join(t.TempDir(), "missing.yaml")))
}
