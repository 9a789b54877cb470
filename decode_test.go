// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDecodeJSONPreservesMemberOrder(t *testing.T) {
	t.Parallel()

	value, err := Decode([]byte(`{"zulu": 1, "alpha": {"y": true, "b": null}, "mike": [1, "x"]}`), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := `{"zulu":1,"alpha":{"y":true,"b":null},"mike":[1,"x"]}`
	if got := value.Text(); got != want {
		t.Fatalf("Text = %s, want %s", got, want)
	}
}

func TestDecodeJSONDuplicateKeysKeepFirstPosition(t *testing.T) {
	t.Parallel()

	value, err := Decode([]byte(`{"a": 1, "b": 2, "a": 3}`), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got := value.Text(); got != `{"a":3,"b":2}` {
		t.Fatalf("Text = %s, want {\"a\":3,\"b\":2}", got)
	}
}

func TestDecodeJSONNumbers(t *testing.T) {
	t.Parallel()

	value, err := Decode([]byte(`{"f": 1.5, "u": 42, "n": -3}`), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	f, _ := value.Get("f")
	if got, ok := f.AsFloat(); !ok || got != 1.5 {
		t.Fatalf("f = (%v, %v), want 1.5", got, ok)
	}

	u, _ := value.Get("u")
	if got, ok := u.AsUint(); !ok || got != 42 {
		t.Fatalf("u = (%v, %v), want 42", got, ok)
	}

	n, _ := value.Get("n")
	if _, ok := n.AsUint(); ok {
		t.Fatal("negative number must not project to uint")
	}
}

func TestDecodeJSONNormalizesNumberText(t *testing.T) {
	t.Parallel()

	value, err := Decode([]byte(`[1e2, 1.50, -0, 42, -3, 0.5]`), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got := value.Text(); got != "[100.0,1.5,-0.0,42,-3,0.5]" {
		t.Fatalf("Text = %s, want [100.0,1.5,-0.0,42,-3,0.5]", got)
	}
}

func TestDecodeJSONErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"truncated":     `{"type": `,
		"trailing data": `{} {}`,
		"syntax":        `{"type": string}`,
		"empty":         ``,
	}

	for name, input := range cases {
		name, input := name, input
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(input), FormatJSON)
			if !errors.Is(err, ErrDecodeSchema) {
				t.Fatalf("Decode(%q) error = %v, want %v", input, err, ErrDecodeSchema)
			}
		})
	}
}

func TestDecodeJSONDepthLimit(t *testing.T) {
	t.Parallel()

	atLimit := strings.Repeat("[", maxNestingDepth) + strings.Repeat("]", maxNestingDepth)
	if _, err := Decode([]byte(atLimit), FormatJSON); err != nil {
		t.Fatalf("Decode at depth limit: %v", err)
	}

	tooDeep := strings.Repeat(`{"a":`, maxNestingDepth+1) + "null" + strings.Repeat("}", maxNestingDepth+1)
	_, err := Decode([]byte(tooDeep), FormatJSON)
	if !errors.Is(err, ErrSchemaTooDeep) {
		t.Fatalf("Decode error = %v, want %v", err, ErrSchemaTooDeep)
	}

	if !errors.Is(err, ErrDecodeSchema) {
		t.Fatalf("Decode error = %v, want wrapped %v", err, ErrDecodeSchema)
	}
}

func TestDecodeJSONWithByteOrderMark(t *testing.T) {
	t.Parallel()

	value, err := Decode([]byte("\ufeff{\"type\": \"object\"}"), FormatAuto)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got := schemaType(value); got != "object" {
		t.Fatalf("type = %q, want object", got)
	}
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	input := `
type: object
description: Service
properties:
  zeta:
    type: string
    default: ~
  alpha:
    type: integer
    minimum: 0x10
    exclusiveMaximum: 2.5
    enum: [1, "two", true, null]
`

	value, err := Decode([]byte(input), FormatAuto)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	properties, ok := objectField(value, "properties")
	if !ok || len(properties) != 2 || properties[0].Key != "zeta" || properties[1].Key != "alpha" {
		t.Fatalf("properties = %+v, want zeta then alpha", properties)
	}

	if defaultValue, ok := properties[0].Value.Get("default"); !ok || !defaultValue.IsNull() {
		t.Fatalf("zeta default = (%v, %v), want null", defaultValue, ok)
	}

	if minimum, ok := floatField(properties[1].Value, "minimum"); !ok || minimum != 16 {
		t.Fatalf("alpha minimum = (%v, %v), want 16", minimum, ok)
	}

	enum, _ := properties[1].Value.Get("enum")
	if got := enum.Text(); got != `[1,"two",true,null]` {
		t.Fatalf("enum = %s", got)
	}
}

func TestDecodeYAMLExpandsAliases(t *testing.T) {
	t.Parallel()

	input := "defs:\n  base: &base {type: string}\nprop: *base\n"
	value, err := Decode([]byte(input), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	prop, _ := value.Get("prop")
	if got := schemaType(prop); got != "string" {
		t.Fatalf("aliased type = %q, want string", got)
	}
}

func TestDecodeYAMLMergeKeys(t *testing.T) {
	t.Parallel()

	input := `
base: &base {type: string, description: base}
extra: &extra {format: email, description: extra}
single:
  <<: *base
  minLength: 1
prop:
  <<: [*base, *extra]
  description: own
`

	value, err := Decode([]byte(input), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	single, _ := value.Get("single")
	if got := single.Text(); got != `{"type":"string","description":"base","minLength":1}` {
		t.Fatalf("single = %s", got)
	}

	prop, _ := value.Get("prop")
	if got := prop.Text(); got != `{"type":"string","description":"own","format":"email"}` {
		t.Fatalf("prop = %s", got)
	}
}

func TestDecodeYAMLRejectsAliasExpansionBomb(t *testing.T) {
	t.Parallel()

	var input strings.Builder
	input.WriteString("a0: &a0 [x, x, x, x, x, x, x, x, x, x]\n")
	for level := 1; level <= 6; level++ {
		refs := strings.TrimSuffix(strings.Repeat(fmt.Sprintf("*a%d, ", level-1), 10), ", ")
		fmt.Fprintf(&input, "a%d: &a%d [%s]\n", level, level, refs)
	}

	_, err := Decode([]byte(input.String()), FormatYAML)
	if !errors.Is(err, ErrSchemaTooLarge) {
		t.Fatalf("Decode error = %v, want %v", err, ErrSchemaTooLarge)
	}

	if !errors.Is(err, ErrDecodeSchema) {
		t.Fatalf("Decode error = %v, want wrapped %v", err, ErrDecodeSchema)
	}
}

func TestDecodeYAMLAliasReuseWithinBudget(t *testing.T) {
	t.Parallel()

	input := "base: &base {type: string, enum: [a, b, c]}\nx: *base\ny: *base\nz: [*base, *base]\n"
	value, err := Decode([]byte(input), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	z, _ := value.Get("z")
	if got := z.Text(); got != `[{"type":"string","enum":["a","b","c"]},{"type":"string","enum":["a","b","c"]}]` {
		t.Fatalf("z = %s", got)
	}
}

func TestDecodeYAMLErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":       "",
		"complex key": "? [a, b]\n: value\n",
		"syntax":      "a: [1, 2\n",
		"bad merge":   "a:\n  <<: 5\n",
		"too deep":    strings.Repeat("[", 2*maxNestingDepth) + strings.Repeat("]", 2*maxNestingDepth),
	}

	for name, input := range cases {
		name, input := name, input
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(input), FormatYAML)
			if !errors.Is(err, ErrDecodeSchema) {
				t.Fatalf("Decode(%q) error = %v, want %v", name, err, ErrDecodeSchema)
			}
		})
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{}`), Format("toml"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Decode error = %v, want %v", err, ErrUnknownFormat)
	}
}

func TestSniffFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]Format{
		"":                  FormatJSON,
		"  \n{}":            FormatJSON,
		"\t[1]":             FormatJSON,
		"type: object":      FormatYAML,
		"---\ntype: string": FormatYAML,
	}

	for input, want := range cases {
		if got := sniffFormat([]byte(input)); got != want {
			t.Fatalf("sniffFormat(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		format Format
		path   string
		want   Format
	}{
		{format: "", path: "schema.yaml", want: FormatYAML},
		{format: FormatAuto, path: "schema.YML", want: FormatYAML},
		{format: "", path: "schema.json", want: FormatJSON},
		{format: "", path: "schema.txt", want: FormatAuto},
		{format: FormatJSON, path: "schema.yaml", want: FormatJSON},
		{format: "bogus", path: "schema.yaml", want: "bogus"},
	}

	for _, tc := range cases {
		if got := FormatForPath(tc.format, tc.path); got != tc.want {
			t.Fatalf("FormatForPath(%q, %q) = %q, want %q", tc.format, tc.path, got, tc.want)
		}
	}
}
