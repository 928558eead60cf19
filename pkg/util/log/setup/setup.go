// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package setup builds the seelog configuration of the agent logger.
package setup

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/cihub/seelog"

	pkglog "github.com/DataDog/datadog-checkctx/pkg/util/log"
)

// LoggerName is the name shown in every log line.
type LoggerName string

const (
	logDateFormat = "2006-01-02 15:04:05 MST"
	maxLogSize    = 10 * 1024 * 1024
	maxLogRolls   = 1
)

// Options describe where and how the logger writes.
type Options struct {
	Level      string
	File       string
	Console    bool
	JSONFormat bool
}

func buildCommonFormat(loggerName LoggerName) string {
	return fmt.Sprintf("%%Date(%s) | %s | %%LEVEL | (%%ShortFilePath:%%Line in %%FuncShort) | %%Msg%%n", logDateFormat, loggerName)
}

func buildJSONFormat(loggerName LoggerName) string {
	_ = seelog.RegisterCustomFormatter("QuoteMsg", createQuoteMsgFormatter)
	return fmt.Sprintf(`{"agent":"%s","time":"%%Date(%s)","level":"%%LEVEL","file":"%%ShortFilePath","line":"%%Line","func":"%%FuncShort","msg":%%QuoteMsg}%%n`, strings.ToLower(string(loggerName)), logDateFormat)
}

func createQuoteMsgFormatter(_ string) seelog.FormatterFunc {
	return func(message string, _ seelog.LogLevel, _ seelog.LogContextInterface) interface{} {
		quoted, err := json.Marshal(message)
		if err != nil {
			return `""`
		}
		return string(quoted)
	}
}

// buildConfig renders the seelog XML configuration for opts.
func buildConfig(loggerName LoggerName, opts Options) (string, error) {
	if _, ok := seelog.LogLevelFromString(strings.ToLower(opts.Level)); !ok {
		return "", fmt.Errorf("unknown log level: %s", opts.Level)
	}
	if !opts.Console && opts.File == "" {
		return "", errors.New("no log output configured: enable console logging or set a log file")
	}

	format := buildCommonFormat(loggerName)
	if opts.JSONFormat {
		format = buildJSONFormat(loggerName)
	}

	var outputs strings.Builder
	if opts.Console {
		outputs.WriteString(`<console />`)
	}
	if opts.File != "" {
		var path bytes.Buffer
		if err := xml.EscapeText(&path, []byte(opts.File)); err != nil {
			return "", err
		}
		fmt.Fprintf(&outputs, `<rollingfile type="size" filename="%s" maxsize="%d" maxrolls="%d" />`, path.String(), maxLogSize, maxLogRolls)
	}

	var formatAttr bytes.Buffer
	if err := xml.EscapeText(&formatAttr, []byte(format)); err != nil {
		return "", err
	}

	return fmt.Sprintf(`<seelog minlevel="%s"><outputs formatid="common">%s</outputs><formats><format id="common" format="%s"/></formats></seelog>`,
		strings.ToLower(opts.Level), outputs.String(), formatAttr.String()), nil
}

// SetupLogger configures the process logger from opts.
func SetupLogger(loggerName LoggerName, opts Options) error {
	cfg, err := buildConfig(loggerName, opts)
	if err != nil {
		return err
	}

	l, err := seelog.LoggerFromConfigAsString(cfg)
	if err != nil {
		return err
	}
	pkglog.SetupLogger(l, opts.Level)
	return nil
}
