// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package file reads the agent hostname from a file, for hosts where it is
// provisioned out of band.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/DataDog/datadog-checkctx/pkg/util/hostname/validate"
)

// HostnameProvider reads the hostname from the file named by options["filename"].
// Surrounding whitespace is ignored, control characters are normalized away and
// the result must be a valid hostname.
func HostnameProvider(_ context.Context, options map[string]interface{}) (string, error) {
	if options == nil {
		return "", errors.New("filename is required to read the hostname from a file")
	}

	filename, ok := options["filename"].(string)
	if !ok || filename == "" {
		return "", errors.New("filename option is missing or not a string")
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("could not read hostname from %s: %w", filename, err)
	}

	hostname, err := validate.NormalizeHost(strings.TrimSpace(string(content)))
	if err != nil {
		return "", fmt.Errorf("could not normalize hostname from %s: %w", filename, err)
	}
	if err := validate.ValidHostname(hostname); err != nil {
		return "", fmt.Errorf("invalid hostname in %s: %w", filename, err)
	}
	return hostname, nil
}
