// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import "errors"

var (
	// ErrInputNotFound is returned when schema input file does not exist.
	ErrInputNotFound = errors.New("input file not found")
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrDecodeSchema is returned when schema document decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrSchemaTooDeep is returned when schema nesting exceeds decoder depth limit.
	ErrSchemaTooDeep = errors.New("schema nesting too deep")
	// ErrSchemaTooLarge is returned when alias expansion exceeds decoder size limit.
	ErrSchemaTooLarge = errors.New("schema expands too large")
	// ErrUnknownFormat is returned when requested input format is not supported.
	ErrUnknownFormat = errors.New("unknown input format")
)
