// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

import (
	"regexp"
	"strings"
)

// Replacer masks the part of a log line matched by Regex.
type Replacer struct {
	Regex *regexp.Regexp
	// If none of these hints appear in the line, Regex cannot match either.
	Hints []string
	Repl  string
}

var replacers = []Replacer{
	{
		// If hinted, mask the value regardless if it doesn't match 32-char hexadecimal string
		Regex: regexp.MustCompile(`(api_?key=)\b[a-zA-Z0-9]+([a-zA-Z0-9]{5})\b`),
		Hints: []string{"api_key", "apikey"},
		Repl:  `$1***************************$2`,
	},
	{
		Regex: regexp.MustCompile(`\b[a-fA-F0-9]{27}([a-fA-F0-9]{5})\b`),
		Repl:  `***************************$1`,
	},
	{
		// URI Generic Syntax, https://tools.ietf.org/html/rfc3986
		Regex: regexp.MustCompile(`([A-Za-z][A-Za-z0-9+-.]+\:\/\/|\b)([^\:\s]+)\:([^\s]+)\@`),
		Hints: []string{"@"},
		Repl:  `$1$2:********@`,
	},
	{
		// header overrides set by checks end up in debug lines
		Regex: regexp.MustCompile(`(?i)((?:proxy-)?authorization"?\s*[:=]\s*"?)(?:[A-Za-z]+ )?[^\s",}]+`),
		Hints: []string{"uthorization"},
		Repl:  `$1********`,
	},
}

// Scrub masks credentials found in a log line.
func Scrub(message string) string {
	for _, repl := range replacers {
		if len(repl.Hints) > 0 && !containsAny(message, repl.Hints) {
			continue
		}
		message = repl.Regex.ReplaceAllString(message, repl.Repl)
	}
	return message
}

func containsAny(s string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(s, hint) {
			return true
		}
	}
	return false
}
