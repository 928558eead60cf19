// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package gce

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockMetadataServer(t *testing.T, status int, body string) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/computeMetadata/v1/instance/hostname" || r.Header.Get("Metadata-Flavor") != "Google" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Metadata-Flavor", "Google")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	t.Setenv("GCE_METADATA_HOST", strings.TrimPrefix(ts.URL, "http://"))
}

func TestHostnameProvider(t *testing.T) {
	mockMetadataServer(t, http.StatusOK, "gce-instance.c.project.internal")

	hostname, err := HostnameProvider(context.Background(), NewClient())
	require.NoError(t, err)
	assert.Equal(t, "gce-instance.c.project.internal", hostname)
}

func TestHostnameProviderNotFound(t *testing.T) {
	mockMetadataServer(t, http.StatusNotFound, "")

	_, err := HostnameProvider(context.Background(), NewClient())
	assert.ErrorContains(t, err, "unable to retrieve hostname from GCE")
}

func TestHostnameProviderInvalid(t *testing.T) {
	mockMetadataServer(t, http.StatusOK, "localhost")

	_, err := HostnameProvider(context.Background(), NewClient())
	assert.ErrorContains(t, err, "GCE hostname is not valid")
}
