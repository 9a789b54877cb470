// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"strconv"
	"strings"
)

// compoundKeyword pairs composition keyword with its section heading.
type compoundKeyword struct {
	Name  string
	Label string
}

// compoundKeywords lists composition sections in rendering order.
var compoundKeywords = []compoundKeyword{
	{Name: "oneOf", Label: "One Of"},
	{Name: "anyOf", Label: "Any Of"},
	{Name: "allOf", Label: "All Of"},
}

// htmlEscaper replaces markup-significant characters in one pass.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// htmlWriter accumulates markup for one render call.
type htmlWriter struct {
	out strings.Builder
}

// raw appends trusted markup.
func (w *htmlWriter) raw(markup string) {
	w.out.WriteString(markup)
}

// text appends schema-derived text escaped for element and attribute content.
func (w *htmlWriter) text(value string) {
	_, _ = htmlEscaper.WriteString(&w.out, value)
}

// depthClass appends class list with depth marker, for example `property depth-2`.
func (w *htmlWriter) depthClass(class string, depth int) {
	w.raw(class)
	w.raw(" depth-")
	w.raw(strconv.Itoa(depth))
}

// document renders root container with header, properties, array items,
// compositions and definitions, in this order.
func (w *htmlWriter) document(schema Value) {
	w.raw(`<div class="schema-container">`)
	w.header(schema)

	if schemaType(schema) == "object" {
		if properties, ok := objectField(schema, "properties"); ok {
			w.raw(`<div class="properties-section">`)
			w.raw(`<h2>Properties</h2>`)
			w.raw(`<div class="properties-list">`)
			w.properties(properties, requiredSet(schema), 0)
			w.raw(`</div>`)
			w.raw(`</div>`)
		}
	}

	if schemaType(schema) == "array" {
		if items, ok := schema.Get("items"); ok {
			w.raw(`<div class="array-section">`)
			w.raw(`<h2>Array Items</h2>`)
			w.details(items, 0)
			w.raw(`</div>`)
		}
	}

	for _, keyword := range compoundKeywords {
		if options, ok := arrayField(schema, keyword.Name); ok {
			w.compound(keyword.Label, options)
		}
	}

	if definitions, ok := definitionsField(schema); ok {
		w.definitions(definitions)
	}

	w.raw(`</div>`)
}

// header renders schema description; title is never shown.
func (w *htmlWriter) header(schema Value) {
	w.raw(`<div class="schema-header">`)
	if description, ok := stringField(schema, "description"); ok {
		w.raw(`<p class="schema-description">`)
		w.text(description)
		w.raw(`</p>`)
	}

	w.raw(`</div>`)
}

// properties renders one property entry per member in declaration order.
func (w *htmlWriter) properties(properties []Member, required map[string]struct{}, depth int) {
	for _, member := range properties {
		_, isRequired := required[member.Key]
		w.property(member.Key, member.Value, isRequired, depth)
	}
}

// property renders name, badges, description and details of one property.
// Details are rendered one level deeper than the property itself.
func (w *htmlWriter) property(name string, schema Value, required bool, depth int) {
	w.raw(`<div class="`)
	w.depthClass("property", depth)
	w.raw(`" data-property="`)
	w.text(name)
	w.raw(`">`)

	w.raw(`<div class="property-header">`)
	w.raw(`<span class="property-name">`)
	w.text(name)
	w.raw(`</span>`)

	if badge, ok := typeBadge(schema); ok {
		w.raw(` <span class="type-badge">`)
		w.text(badge)
		w.raw(`</span>`)
	}

	if required {
		w.raw(` <span class="required-badge">required</span>`)
	}

	w.raw(`</div>`)

	if description, ok := stringField(schema, "description"); ok {
		w.raw(`<div class="property-description">`)
		w.text(description)
		w.raw(`</div>`)
	}

	w.details(schema, depth+1)
	w.raw(`</div>`)
}

// compound renders numbered options of one composition keyword.
func (w *htmlWriter) compound(label string, options []Value) {
	w.raw(`<div class="compound-schema"><h3>`)
	w.text(label)
	w.raw(`</h3>`)
	w.raw(`<div class="compound-options">`)

	for i, option := range options {
		w.raw(`<div class="compound-option"><h4>Option `)
		w.raw(strconv.Itoa(i + 1))
		w.raw(`</h4>`)
		w.details(option, 0)
		w.raw(`</div>`)
	}

	w.raw(`</div></div>`)
}

// definitions renders one anchored section per named definition.
func (w *htmlWriter) definitions(definitions []Member) {
	w.raw(`<div class="definitions-section">`)
	w.raw(`<h2>Definitions</h2>`)

	for _, member := range definitions {
		w.raw(`<div class="definition" id="def-`)
		w.text(member.Key)
		w.raw(`">`)
		w.raw(`<h3>`)
		w.text(member.Key)
		w.raw(`</h3>`)
		w.details(member.Value, 0)
		w.raw(`</div>`)
	}

	w.raw(`</div>`)
}
