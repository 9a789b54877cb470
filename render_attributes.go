// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"strconv"
	"strings"
)

// uintConstraintKeywords render as `keyword: N` when value is a non-negative integer.
var uintConstraintKeywords = []string{"minLength", "maxLength"}

// itemConstraintKeywords render after pattern and format.
var itemConstraintKeywords = []string{"minItems", "maxItems"}

// typeBadge infers display type: explicit type, type union, composition
// keyword, then reference marker.
func typeBadge(node Value) (string, bool) {
	if value, ok := node.Get("type"); ok {
		if typeName, ok := value.AsString(); ok {
			return typeName, true
		}

		if union, ok := value.AsArray(); ok {
			names := make([]string, 0, len(union))
			for _, item := range union {
				if name, ok := item.AsString(); ok {
					names = append(names, name)
				}
			}

			if len(names) > 0 {
				return strings.Join(names, " | "), true
			}
		}
	}

	for _, keyword := range []string{"oneOf", "anyOf", "allOf", "$ref"} {
		if node.Has(keyword) {
			return keyword, true
		}
	}

	return "", false
}

// constraintList renders recognized constraint keywords in fixed order.
func constraintList(node Value) []string {
	out := make([]string, 0, 4)

	if value, ok := floatField(node, "minimum"); ok {
		out = append(out, "min: "+formatFloat(value))
	}

	if value, ok := floatField(node, "maximum"); ok {
		out = append(out, "max: "+formatFloat(value))
	}

	out = appendUintConstraints(out, node, uintConstraintKeywords)

	for _, key := range []string{"pattern", "format"} {
		if value, ok := stringField(node, key); ok {
			out = append(out, key+": "+value)
		}
	}

	out = appendUintConstraints(out, node, itemConstraintKeywords)

	if value, ok := node.Get("uniqueItems"); ok {
		if unique, ok := value.AsBool(); ok && unique {
			out = append(out, "uniqueItems")
		}
	}

	// Exclusive bounds are flagged by key presence only.
	for _, key := range []string{"exclusiveMinimum", "exclusiveMaximum"} {
		if node.Has(key) {
			out = append(out, key)
		}
	}

	return out
}

// appendUintConstraints appends `keyword: N` for each integer-valued keyword.
func appendUintConstraints(out []string, node Value, keys []string) []string {
	for _, key := range keys {
		value, ok := node.Get(key)
		if !ok {
			continue
		}

		if n, ok := value.AsUint(); ok {
			out = append(out, key+": "+strconv.FormatUint(n, 10))
		}
	}

	return out
}

// floatField extracts numeric member as float64.
func floatField(node Value, key string) (float64, bool) {
	value, ok := node.Get(key)
	if !ok {
		return 0, false
	}

	return value.AsFloat()
}

// formatFloat renders float in shortest plain decimal form, for example 10 or 0.5.
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// formatValue renders enum and default values: strings quoted verbatim,
// everything else in compact JSON form.
func formatValue(value Value) string {
	if text, ok := value.AsString(); ok {
		return `"` + text + `"`
	}

	return value.Text()
}

// exampleText renders example values: strings raw, everything else as compact JSON.
func exampleText(value Value) string {
	if text, ok := value.AsString(); ok {
		return text
	}

	return value.Text()
}
