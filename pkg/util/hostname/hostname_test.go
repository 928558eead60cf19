// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package hostname

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataDog/datadog-checkctx/pkg/config/model"
	"github.com/DataDog/datadog-checkctx/pkg/config/setup"
	"github.com/DataDog/datadog-checkctx/pkg/util/cache"
)

func setupHostnameTest(t *testing.T, osName string, osErr error) model.Config {
	t.Helper()
	ResetCache()

	origOS, origFQDN, origGCE := osHostname, fqdnHostname, gceHostname
	osHostname = func() (string, error) { return osName, osErr }
	fqdnHostname = func(context.Context) (string, error) { return "", errors.New("no fqdn in tests") }
	gceHostname = func(context.Context) (string, error) { return "", errors.New("not on GCE") }
	t.Cleanup(func() {
		osHostname, fqdnHostname, gceHostname = origOS, origFQDN, origGCE
		ResetCache()
	})

	return setup.NewDatadogConfig()
}

func TestGetFromConfig(t *testing.T) {
	cfg := setupHostnameTest(t, "os-host", nil)
	cfg.Set("hostname", "config-host")

	data, err := GetWithProvider(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "config-host", data.Hostname)
	assert.Equal(t, ConfigProvider, data.Provider)
	assert.True(t, data.FromConfiguration())
}

func TestGetInvalidConfigFallsBackToOS(t *testing.T) {
	cfg := setupHostnameTest(t, "os-host", nil)
	cfg.Set("hostname", "localhost")

	data, err := GetWithProvider(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "os-host", data.Hostname)
	assert.Equal(t, osProvider, data.Provider)
	assert.False(t, data.FromConfiguration())
}

func TestGetFromHostnameFile(t *testing.T) {
	cfg := setupHostnameTest(t, "os-host", nil)
	path := filepath.Join(t.TempDir(), "hostname")
	require.NoError(t, os.WriteFile(path, []byte("file-host\n"), 0o644))
	cfg.Set("hostname_file", path)

	data, err := GetWithProvider(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, Data{Hostname: "file-host", Provider: fileProvider}, data)
}

func TestGetFromGCEOnlyWhenEnabled(t *testing.T) {
	cfg := setupHostnameTest(t, "os-host", nil)
	gceHostname = func(context.Context) (string, error) { return "gce-host", nil }

	hostname, err := Get(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "os-host", hostname)

	ResetCache()
	cfg.Set("cloud_provider_metadata", []string{"gcp"})
	data, err := GetWithProvider(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, Data{Hostname: "gce-host", Provider: gceProvider}, data)
}

func TestGetFQDNWinsOverOS(t *testing.T) {
	cfg := setupHostnameTest(t, "os-host", nil)
	fqdnHostname = func(context.Context) (string, error) { return "os-host.example.com", nil }

	hostname, err := Get(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "os-host", hostname, "fqdn is only used when hostname_fqdn is enabled")

	ResetCache()
	cfg.Set("hostname_fqdn", true)
	data, err := GetWithProvider(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, Data{Hostname: "os-host.example.com", Provider: fqdnProvider}, data)
}

func TestGetNoProviderSucceeds(t *testing.T) {
	cfg := setupHostnameTest(t, "", errors.New("uname failed"))

	hostname, err := Get(context.Background(), cfg)
	require.Error(t, err)
	assert.Equal(t, "", hostname)
	assert.Contains(t, err.Error(), "unable to reliably determine the host name")
	assert.Contains(t, err.Error(), "uname failed")

	_, found := cache.Cache.Get(cacheHostnameKey)
	assert.False(t, found, "failures are not cached")
}

func TestGetIsCached(t *testing.T) {
	cfg := setupHostnameTest(t, "os-host", nil)

	hostname, err := Get(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "os-host", hostname)

	osHostname = func() (string, error) { return "other-host", nil }
	hostname, err = Get(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "os-host", hostname)

	ResetCache()
	hostname, err = Get(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "other-host", hostname)
}

func TestGetConcurrent(t *testing.T) {
	cfg := setupHostnameTest(t, "", nil)
	var calls atomic.Int32
	osHostname = func() (string, error) {
		calls.Add(1)
		return "os-host", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = Get(context.Background(), cfg)
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "os-host", r)
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestGetCallerCancellationDoesNotFailSharedLookup(t *testing.T) {
	cfg := setupHostnameTest(t, "os-host", nil)
	cfg.Set("cloud_provider_metadata", []string{"gcp"})

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	gceHostname = func(ctx context.Context) (string, error) {
		calls.Add(1)
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "gce-host", nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := Get(ctx, cfg)
		firstErr <- err
	}()

	<-started
	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	second := make(chan Data, 1)
	go func() {
		data, err := GetWithProvider(context.Background(), cfg)
		assert.NoError(t, err)
		second <- data
	}()
	close(release)

	assert.Equal(t, Data{Hostname: "gce-host", Provider: gceProvider}, <-second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetEmptyOSHostname(t *testing.T) {
	cfg := setupHostnameTest(t, "", nil)

	_, err := Get(context.Background(), cfg)
	assert.ErrorContains(t, err, "the OS reported an empty hostname")
}
