// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build !windows

package hostname

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const fqdnTimeout = 1 * time.Second

func getSystemFQDN(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fqdnTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "/bin/hostname", "-f").Output()
	return strings.TrimSpace(string(out)), err
}
