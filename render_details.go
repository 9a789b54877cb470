// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

// details renders constraints, enum, default, examples and nested content
// of one schema node. Nested object properties and array items stay at the
// same depth; only property entries add a level.
func (w *htmlWriter) details(schema Value, depth int) {
	w.raw(`<div class="`)
	w.depthClass("schema-details", depth)
	w.raw(`">`)

	if constraints := constraintList(schema); len(constraints) > 0 {
		w.raw(`<div class="constraints">`)
		for _, constraint := range constraints {
			w.raw(`<span class="constraint">`)
			w.text(constraint)
			w.raw(`</span>`)
		}

		w.raw(`</div>`)
	}

	if values, ok := arrayField(schema, "enum"); ok {
		w.raw(`<div class="enum-values">`)
		w.raw(`<span class="enum-label">Possible values:</span>`)
		for _, value := range values {
			w.raw(` <span class="enum-value">`)
			w.text(formatValue(value))
			w.raw(`</span>`)
		}

		w.raw(`</div>`)
	}

	if value, ok := schema.Get("default"); ok {
		w.raw(`<div class="default-value">Default: <code>`)
		w.text(formatValue(value))
		w.raw(`</code></div>`)
	}

	if examples, ok := arrayField(schema, "examples"); ok && len(examples) > 0 {
		w.raw(`<div class="examples">`)
		w.raw(`<span class="examples-label">Examples:</span>`)
		for _, example := range examples {
			w.raw(` <code>`)
			w.text(exampleText(example))
			w.raw(`</code>`)
		}

		w.raw(`</div>`)
	}

	if schemaType(schema) == "object" {
		if properties, ok := objectField(schema, "properties"); ok {
			w.raw(`<div class="nested-properties">`)
			w.properties(properties, requiredSet(schema), depth)
			w.raw(`</div>`)
		}
	}

	if schemaType(schema) == "array" {
		if items, ok := schema.Get("items"); ok {
			w.raw(`<div class="array-items">`)
			w.raw(`<div class="array-label">Items:</div>`)
			w.details(items, depth)
			w.raw(`</div>`)
		}
	}

	w.raw(`</div>`)
}
