// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build windows

package hostname

import (
	"context"
	"net"
	"os"
)

func getSystemFQDN(_ context.Context) (string, error) {
	hn, err := os.Hostname()
	if err != nil {
		return "", err
	}

	addrs, err := net.LookupHost(hn)
	if err != nil || len(addrs) == 0 {
		return "", err
	}

	names, err := net.LookupAddr(addrs[0])
	if err != nil || len(names) == 0 {
		return "", err
	}
	return names[0], nil
}
