// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

import (
	"os"
)

// Params defines the parameters for this log component.
//
// Logs-related parameters are implemented as unexported fields containing
// callbacks. These fields can be set with the `ForXxx()` methods, which
// return the updated Params. One of `log.ForOneShot` or `log.ForDaemon`
// must be called.
type Params struct {
	// loggerName is the name that appears in the logfile
	loggerName string

	// logLevelFn returns the log level. This field is set by methods on this
	// type.
	logLevelFn func(configGetter) string

	// logFileFn returns the log file. This field is set by methods on this type.
	logFileFn func(configGetter) string

	// logToConsoleFn returns true if logs should go to the console. This
	// field is set by methods on this type.
	logToConsoleFn func(configGetter) bool

	// logFormatJSONFn returns true if logs should be formatted as JSON. This
	// field is set by methods on this type.
	logFormatJSONFn func(configGetter) bool
}

// configGetter is a subset of the comp/core/config component, to avoid an
// import cycle.
type configGetter interface {
	GetString(key string) string
	GetBool(key string) bool
}

// ForOneShot sets up logging parameters for a one-shot app.
//
// If overrideFromEnv is set, then DD_LOG_LEVEL will override the given level.
//
// Logs go to the console only.
func ForOneShot(loggerName, level string, overrideFromEnv bool) Params {
	params := Params{
		loggerName:      loggerName,
		logLevelFn:      func(configGetter) string { return level },
		logFileFn:       func(configGetter) string { return "" },
		logToConsoleFn:  func(configGetter) bool { return true },
		logFormatJSONFn: func(configGetter) bool { return false },
	}
	if overrideFromEnv {
		params.logLevelFn = func(configGetter) string {
			if envLevel := os.Getenv("DD_LOG_LEVEL"); envLevel != "" {
				return envLevel
			}
			return level
		}
	}
	return params
}

// ForDaemon sets up logging parameters for a daemon.
//
// Level, console output and JSON formatting come from the `log_level`,
// `log_to_console` and `log_format_json` settings. The file is read from
// the logFileConfig setting, falling back to defaultLogFile.
func ForDaemon(loggerName, logFileConfig, defaultLogFile string) Params {
	return Params{
		loggerName: loggerName,
		logLevelFn: func(g configGetter) string { return g.GetString("log_level") },
		logFileFn: func(g configGetter) string {
			if logFile := g.GetString(logFileConfig); logFile != "" {
				return logFile
			}
			return defaultLogFile
		},
		logToConsoleFn:  func(g configGetter) bool { return g.GetBool("log_to_console") },
		logFormatJSONFn: func(g configGetter) bool { return g.GetBool("log_format_json") },
	}
}

// IsLogLevelFnSet returns whether the logLevelFn field is set
func (params Params) IsLogLevelFnSet() bool {
	return params.logLevelFn != nil
}

// LoggerName is the name that appears in the logfile
func (params Params) LoggerName() string {
	return params.loggerName
}

// LogLevelFn returns the log level
func (params Params) LogLevelFn(c configGetter) string {
	return params.logLevelFn(c)
}

// LogFileFn returns the log file
func (params Params) LogFileFn(c configGetter) string {
	return params.logFileFn(c)
}

// LogToConsoleFn returns true if logs should go to the console
func (params Params) LogToConsoleFn(c configGetter) bool {
	return params.logToConsoleFn(c)
}

// LogFormatJSONFn returns true if logs should be formatted as JSON
func (params Params) LogFormatJSONFn(c configGetter) bool {
	return params.logFormatJSONFn(c)
}
