// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Options configures schema conversion.
type Options struct {
	// Format selects input syntax; empty means FormatAuto.
	Format Format
	// NoMinify returns rendered markup as is, without Minify.
	NoMinify bool
}

// ConvertFile reads schema from file and converts it into an HTML fragment.
// With FormatAuto the file extension selects the decoder when it is .json, .yaml or .yml.
func ConvertFile(path string, opt Options) (string, error) {
	schemaBytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrInputNotFound, path)
		}

		return "", fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	opt.Format = FormatForPath(opt.Format, path)
	return Convert(schemaBytes, opt)
}

// Convert decodes schema bytes, renders them and minifies the result unless disabled.
func Convert(schemaBytes []byte, opt Options) (string, error) {
	schema, err := Decode(schemaBytes, opt.Format)
	if err != nil {
		return "", err
	}

	html, err := Render(schema)
	if err != nil {
		return "", err
	}

	if opt.NoMinify {
		return html, nil
	}

	return Minify(html), nil
}

// Render converts schema value into an embeddable HTML fragment.
//
// Rendering is total over any Value: absent or wrong-typed keywords are
// skipped and `$ref` is shown as a badge, never resolved. The error result
// is kept for callers composing Render with fallible steps and is nil.
func Render(schema Value) (string, error) {
	var w htmlWriter
	w.document(schema)
	return w.out.String(), nil
}
