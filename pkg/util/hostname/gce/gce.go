// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package gce resolves the hostname of Google Compute Engine instances from
// the metadata server.
package gce

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/compute/metadata"

	"github.com/DataDog/datadog-checkctx/pkg/util/hostname/validate"
)

// CloudProviderName is the name used in `cloud_provider_metadata` to enable GCE.
const CloudProviderName = "gcp"

const metadataTimeout = 300 * time.Millisecond

// NewClient returns a metadata client with a short timeout so a host outside
// GCE does not stall hostname resolution.
func NewClient() *metadata.Client {
	return metadata.NewClient(&http.Client{Timeout: metadataTimeout})
}

// HostnameProvider returns the instance hostname reported by the metadata server.
func HostnameProvider(ctx context.Context, client *metadata.Client) (string, error) {
	hostname, err := client.HostnameWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("unable to retrieve hostname from GCE: %w", err)
	}

	if err := validate.ValidHostname(hostname); err != nil {
		return "", fmt.Errorf("GCE hostname is not valid: %w", err)
	}
	return hostname, nil
}
