// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// defaultLogLevel is used when neither flag nor environment selects a level.
const defaultLogLevel = log.WarnLevel

// errUnknownLogLevel is returned for unrecognized -L values.
var errUnknownLogLevel = errors.New("unknown log level")

// verbosityOrder lists levels from quietest to noisiest; each -v moves one step right.
var verbosityOrder = []log.Level{
	log.ErrorLevel,
	log.WarnLevel,
	log.InfoLevel,
	log.DebugLevel,
}

// logLevelNames maps accepted level names to logger levels.
var logLevelNames = map[string]log.Level{
	"error":   log.ErrorLevel,
	"err":     log.ErrorLevel,
	"warn":    log.WarnLevel,
	"warning": log.WarnLevel,
	"info":    log.InfoLevel,
	"debug":   log.DebugLevel,
	"trace":   log.DebugLevel,
}

// newLogger creates stderr logger with short timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// resolveLogLevel combines -L value and -v count into the effective level.
func resolveLogLevel(value string, verbose int) (log.Level, error) {
	level, err := parseLogLevel(value)
	if err != nil {
		return 0, err
	}

	return raiseLogLevel(level, verbose), nil
}

// parseLogLevel accepts level names in any case and syslog severities 0-7.
func parseLogLevel(value string) (log.Level, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return defaultLogLevel, nil
	}

	if severity, err := strconv.Atoi(value); err == nil {
		return syslogLevel(severity)
	}

	level, ok := logLevelNames[value]
	if !ok {
		return 0, fmt.Errorf("%w %q", errUnknownLogLevel, value)
	}

	return level, nil
}

// syslogLevel maps syslog severity: 0-3 error, 4 warning, 5-6 info, 7 debug.
func syslogLevel(severity int) (log.Level, error) {
	switch {
	case severity < 0 || severity > 7:
		return 0, fmt.Errorf("%w %d: syslog severity must be 0-7", errUnknownLogLevel, severity)
	case severity <= 3:
		return log.ErrorLevel, nil
	case severity == 4:
		return log.WarnLevel, nil
	case severity <= 6:
		return log.InfoLevel, nil
	default:
		return log.DebugLevel, nil
	}
}

// raiseLogLevel moves level toward debug by steps, saturating at debug.
func raiseLogLevel(level log.Level, steps int) log.Level {
	idx := slices.Index(verbosityOrder, level)
	if idx < 0 {
		idx = slices.Index(verbosityOrder, defaultLogLevel)
	}

	idx = min(idx+max(steps, 0), len(verbosityOrder)-1)
	return verbosityOrder[idx]
}
