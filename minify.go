// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Minify compacts markup into one line in a single pass.
//
// Whitespace runs outside quoted attribute values collapse to one space,
// whitespace directly before a tag is dropped, and quoted attribute values
// inside tags are copied byte for byte. Quotes in text content are ordinary
// characters. The result is trimmed.
func Minify(html string) string {
	out := make([]byte, 0, len(html))

	var (
		inTag     bool
		inQuotes  bool
		quoteChar rune
		prev      = ' '
	)

	for _, ch := range html {
		switch {
		case ch == '<' && !inQuotes:
			inTag = true
			if len(out) > 0 && unicode.IsSpace(prev) {
				out = trimTrailingSpace(out)
			}

			out = utf8.AppendRune(out, ch)
		case ch == '>' && !inQuotes:
			inTag = false
			out = utf8.AppendRune(out, ch)
		case (ch == '"' || ch == '\'') && inTag:
			if inQuotes && ch == quoteChar {
				inQuotes = false
			} else if !inQuotes {
				inQuotes = true
				quoteChar = ch
			}

			out = utf8.AppendRune(out, ch)
		case isCollapsibleSpace(ch) && !inQuotes:
			if !unicode.IsSpace(prev) {
				out = append(out, ' ')
			}
		default:
			out = utf8.AppendRune(out, ch)
		}

		prev = ch
	}

	return strings.TrimSpace(string(out))
}

// isCollapsibleSpace reports ASCII whitespace handled by minification.
func isCollapsibleSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// trimTrailingSpace drops trailing whitespace runes from buf.
func trimTrailingSpace(buf []byte) []byte {
	for len(buf) > 0 {
		r, size := utf8.DecodeLastRune(buf)
		if !unicode.IsSpace(r) {
			break
		}

		buf = buf[:len(buf)-size]
	}

	return buf
}
