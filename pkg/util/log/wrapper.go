// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

import "github.com/cihub/seelog"

// Wrapper exposes the package-level logger as a value, for components that
// take a logger as a dependency.
//
// Its methods call into the logger at the same depth as the package-level
// functions, so seelog reports the caller of the method.
type Wrapper struct{}

// NewWrapper returns a Wrapper logging through the process logger.
func NewWrapper() *Wrapper {
	return &Wrapper{}
}

// Trace implements Component#Trace.
func (w *Wrapper) Trace(v ...interface{}) {
	logLine(seelog.TraceLvl, func() { w.Trace(v...) }, sprint(v...))
}

// Tracef implements Component#Tracef.
func (w *Wrapper) Tracef(format string, params ...interface{}) {
	logLine(seelog.TraceLvl, func() { w.Tracef(format, params...) }, sprintf(format, params...))
}

// Debug implements Component#Debug.
func (w *Wrapper) Debug(v ...interface{}) {
	logLine(seelog.DebugLvl, func() { w.Debug(v...) }, sprint(v...))
}

// Debugf implements Component#Debugf.
func (w *Wrapper) Debugf(format string, params ...interface{}) {
	logLine(seelog.DebugLvl, func() { w.Debugf(format, params...) }, sprintf(format, params...))
}

// Info implements Component#Info.
func (w *Wrapper) Info(v ...interface{}) {
	logLine(seelog.InfoLvl, func() { w.Info(v...) }, sprint(v...))
}

// Infof implements Component#Infof.
func (w *Wrapper) Infof(format string, params ...interface{}) {
	logLine(seelog.InfoLvl, func() { w.Infof(format, params...) }, sprintf(format, params...))
}

// Warn implements Component#Warn.
func (w *Wrapper) Warn(v ...interface{}) error {
	return logLineWithError(seelog.WarnLvl, func() { w.Warn(v...) }, sprint(v...), false)
}

// Warnf implements Component#Warnf.
func (w *Wrapper) Warnf(format string, params ...interface{}) error {
	return logLineWithError(seelog.WarnLvl, func() { w.Warnf(format, params...) }, sprintf(format, params...), false)
}

// Error implements Component#Error.
func (w *Wrapper) Error(v ...interface{}) error {
	return logLineWithError(seelog.ErrorLvl, func() { w.Error(v...) }, sprint(v...), true)
}

// Errorf implements Component#Errorf.
func (w *Wrapper) Errorf(format string, params ...interface{}) error {
	return logLineWithError(seelog.ErrorLvl, func() { w.Errorf(format, params...) }, sprintf(format, params...), true)
}

// Critical implements Component#Critical.
func (w *Wrapper) Critical(v ...interface{}) error {
	return logLineWithError(seelog.CriticalLvl, func() { w.Critical(v...) }, sprint(v...), true)
}

// Criticalf implements Component#Criticalf.
func (w *Wrapper) Criticalf(format string, params ...interface{}) error {
	return logLineWithError(seelog.CriticalLvl, func() { w.Criticalf(format, params...) }, sprintf(format, params...), true)
}

// Flush implements Component#Flush.
func (*Wrapper) Flush() { Flush() }
