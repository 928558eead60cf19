// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package log is the agent logger: a scrubbing wrapper around a seelog logger
// exposed through package-level functions.
package log

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/cihub/seelog"
)

var (
	logger *DatadogLogger

	// Lines logged before SetupLogger is called are kept here and replayed
	// once the logger exists.
	logsBuffer           = []func(){}
	bufferLogsBeforeInit = true
	bufferMutex          sync.Mutex

	// package function + exported function
	defaultStackDepth = 3
)

// DatadogLogger wraps a seelog logger with a level filter and message scrubbing.
type DatadogLogger struct {
	inner seelog.LoggerInterface
	level seelog.LogLevel
	l     sync.RWMutex
}

// SetupLogger installs l as the process logger at the given level. Unknown
// levels fall back to info.
func SetupLogger(l seelog.LoggerInterface, level string) {
	lvl, ok := seelog.LogLevelFromString(strings.ToLower(level))
	if !ok {
		lvl = seelog.InfoLvl
	}
	logger = &DatadogLogger{inner: l, level: lvl}
	logger.inner.SetAdditionalStackDepth(defaultStackDepth) //nolint:errcheck

	bufferMutex.Lock()
	defer bufferMutex.Unlock()
	bufferLogsBeforeInit = false
	for _, logLine := range logsBuffer {
		logLine()
	}
	logsBuffer = []func(){}
}

func addLogToBuffer(logHandle func()) {
	bufferMutex.Lock()
	defer bufferMutex.Unlock()

	logsBuffer = append(logsBuffer, logHandle)
}

func (sw *DatadogLogger) shouldLog(level seelog.LogLevel) bool {
	sw.l.RLock()
	defer sw.l.RUnlock()
	return level >= sw.level
}

// write sends an already formatted line to seelog at the given level.
func (sw *DatadogLogger) write(level seelog.LogLevel, s string) error {
	sw.l.Lock()
	defer sw.l.Unlock()

	scrubbed := Scrub(s)
	switch level {
	case seelog.TraceLvl:
		sw.inner.Trace(scrubbed)
	case seelog.DebugLvl:
		sw.inner.Debug(scrubbed)
	case seelog.InfoLvl:
		sw.inner.Info(scrubbed)
	case seelog.WarnLvl:
		return sw.inner.Warn(scrubbed)
	case seelog.ErrorLvl:
		return sw.inner.Error(scrubbed)
	case seelog.CriticalLvl:
		return sw.inner.Critical(scrubbed)
	}
	return nil
}

func ready() bool {
	return logger != nil && logger.inner != nil
}

func logLine(level seelog.LogLevel, replay func(), msg func() string) {
	if ready() {
		if logger.shouldLog(level) {
			logger.write(level, msg()) //nolint:errcheck
		}
		return
	}
	if bufferLogsBeforeInit {
		addLogToBuffer(replay)
	}
}

// logLineWithError logs like logLine and always returns the scrubbed message
// as an error so callers can `return log.Errorf(...)`.
func logLineWithError(level seelog.LogLevel, replay func(), msg func() string, fallbackStderr bool) error {
	if ready() {
		if logger.shouldLog(level) {
			s := msg()
			if err := logger.write(level, s); err != nil {
				return err
			}
			return errors.New(Scrub(s))
		}
	} else if bufferLogsBeforeInit {
		addLogToBuffer(replay)
	}

	err := errors.New(Scrub(msg()))
	if fallbackStderr {
		fmt.Fprintf(os.Stderr, "%s: %s\n", level.String(), err.Error())
	}
	return err
}

func sprint(v ...interface{}) func() string {
	return func() string {
		return strings.TrimSuffix(fmt.Sprintln(v...), "\n")
	}
}

func sprintf(format string, params ...interface{}) func() string {
	return func() string {
		return fmt.Sprintf(format, params...)
	}
}

// Trace logs at the trace level
func Trace(v ...interface{}) {
	logLine(seelog.TraceLvl, func() { Trace(v...) }, sprint(v...))
}

// Tracef logs with format at the trace level
func Tracef(format string, params ...interface{}) {
	logLine(seelog.TraceLvl, func() { Tracef(format, params...) }, sprintf(format, params...))
}

// Debug logs at the debug level
func Debug(v ...interface{}) {
	logLine(seelog.DebugLvl, func() { Debug(v...) }, sprint(v...))
}

// Debugf logs with format at the debug level
func Debugf(format string, params ...interface{}) {
	logLine(seelog.DebugLvl, func() { Debugf(format, params...) }, sprintf(format, params...))
}

// Info logs at the info level
func Info(v ...interface{}) {
	logLine(seelog.InfoLvl, func() { Info(v...) }, sprint(v...))
}

// Infof logs with format at the info level
func Infof(format string, params ...interface{}) {
	logLine(seelog.InfoLvl, func() { Infof(format, params...) }, sprintf(format, params...))
}

// Warn logs at the warn level and returns an error containing the formatted log message
func Warn(v ...interface{}) error {
	return logLineWithError(seelog.WarnLvl, func() { Warn(v...) }, sprint(v...), false)
}

// Warnf logs with format at the warn level and returns an error containing the formatted log message
func Warnf(format string, params ...interface{}) error {
	return logLineWithError(seelog.WarnLvl, func() { Warnf(format, params...) }, sprintf(format, params...), false)
}

// Error logs at the error level and returns an error containing the formatted log message
func Error(v ...interface{}) error {
	return logLineWithError(seelog.ErrorLvl, func() { Error(v...) }, sprint(v...), true)
}

// Errorf logs with format at the error level and returns an error containing the formatted log message
func Errorf(format string, params ...interface{}) error {
	return logLineWithError(seelog.ErrorLvl, func() { Errorf(format, params...) }, sprintf(format, params...), true)
}

// Critical logs at the critical level and returns an error containing the formatted log message
func Critical(v ...interface{}) error {
	return logLineWithError(seelog.CriticalLvl, func() { Critical(v...) }, sprint(v...), true)
}

// Criticalf logs with format at the critical level and returns an error containing the formatted log message
func Criticalf(format string, params ...interface{}) error {
	return logLineWithError(seelog.CriticalLvl, func() { Criticalf(format, params...) }, sprintf(format, params...), true)
}

// Flush flushes the underlying inner log
func Flush() {
	if ready() {
		logger.inner.Flush()
	}
}

// GetLogLevel returns a seelog native representation of the current log level
func GetLogLevel() (seelog.LogLevel, error) {
	if ready() {
		logger.l.RLock()
		defer logger.l.RUnlock()
		return logger.level, nil
	}

	// need to return something, just set to Info (expected default)
	return seelog.InfoLvl, errors.New("cannot get loglevel: logger not initialized")
}

// ChangeLogLevel changes the current log level. Valid levels are trace, debug,
// info, warn, error, critical and off.
func ChangeLogLevel(level string) error {
	if !ready() {
		return errors.New("cannot change loglevel: logger not initialized")
	}

	lvl, ok := seelog.LogLevelFromString(strings.ToLower(level))
	if !ok {
		return errors.New("bad log level")
	}

	logger.l.Lock()
	defer logger.l.Unlock()
	logger.level = lvl
	return nil
}
