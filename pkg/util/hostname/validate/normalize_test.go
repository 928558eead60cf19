// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHost(t *testing.T) {
	// 9cbef2d1-8c20-4bf2-97a5-7d70 followed by NUL and replacement runes
	withNull := string([]byte{
		57, 99, 98, 101, 102, 50, 100, 49, 45, 56, 99, 50, 48, 45,
		52, 98, 102, 50, 45, 57, 55, 97, 53, 45, 55, 100, 55, 48,
		0, 0, 0, 0, 239, 191, 189, 239, 191, 189, 1,
	})

	tests := []struct {
		name     string
		in       string
		expected string
		wantErr  bool
	}{
		{name: "too long", in: strings.Repeat("a", 256), wantErr: true},
		{name: "lt defanged", in: "a<b", expected: "a-b"},
		{name: "gt defanged", in: "a>b", expected: "a-b"},
		{name: "CR/LF dropped", in: "example.com\r\n", expected: "example.com"},
		{name: "tab dropped", in: "\thost-a.local", expected: "host-a.local"},
		{name: "null rune", in: withNull, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hostname, err := NormalizeHost(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, "", hostname)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, hostname)
		})
	}
}
