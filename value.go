// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Kind identifies the JSON data model variant held by a Value.
type Kind uint8

const (
	// KindNull is JSON null and the zero Value.
	KindNull Kind = iota
	// KindBool is JSON true or false.
	KindBool
	// KindNumber is a JSON number kept in its literal text form.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is an ordered sequence of values.
	KindArray
	// KindObject is a mapping from string keys to values in insertion order.
	KindObject
)

// String returns lowercase kind name.
func (kind Kind) String() string {
	switch kind {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(kind)) + ")"
	}
}

// Member is one key/value entry of an object Value.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON-like tree node.
//
// Object members keep insertion order, so rendering a decoded document is
// reproducible. All projections report absence through a boolean instead of
// failing, and the zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	// text holds string contents or number literal.
	text    string
	items   []Value
	members []Member
	index   map[string]int
}

// Null returns JSON null.
func Null() Value {
	return Value{}
}

// Bool returns JSON boolean.
func Bool(value bool) Value {
	return Value{kind: KindBool, boolean: value}
}

// Number returns JSON number from its literal text, for example "42" or "1.5e3".
func Number(literal string) Value {
	return Value{kind: KindNumber, text: literal}
}

// Int returns JSON number for an integer.
func Int(value int64) Value {
	return Number(strconv.FormatInt(value, 10))
}

// Float returns JSON number for a float; NaN and infinities become null.
// The literal always reads as a float, for example 100.0, 1.5 or 1e300.
func Float(value float64) Value {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Null()
	}

	return Number(floatLiteral(value))
}

// floatLiteral writes shortest round-trip digits with a fractional part
// or exponent: plain notation for decimal exponents in (-5, 16], scientific beyond.
func floatLiteral(value float64) string {
	if value == 0 {
		if math.Signbit(value) {
			return "-0.0"
		}

		return "0.0"
	}

	sci := strconv.FormatFloat(value, 'e', -1, 64)
	negative := strings.HasPrefix(sci, "-")
	sci = strings.TrimPrefix(sci, "-")

	mantissa, exponent, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp, _ := strconv.Atoi(exponent)

	// point is the decimal point position counted from the first digit.
	point := exp + 1
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}

	switch {
	case point >= len(digits) && point <= 16:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", point-len(digits)))
		b.WriteString(".0")
	case point > 0 && point <= 16:
		b.WriteString(digits[:point])
		b.WriteByte('.')
		b.WriteString(digits[point:])
	case point > -5 && point <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -point))
		b.WriteString(digits)
	default:
		b.WriteString(digits[:1])
		if len(digits) > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}

		b.WriteByte('e')
		b.WriteString(strconv.Itoa(point - 1))
	}

	return b.String()
}

// canonicalNumber normalizes decoded number literal: integers that fit 64 bits
// print in decimal, everything else prints as float, so 1e2 reads 100.0
// and 1.50 reads 1.5. Negative zero is a float.
func canonicalNumber(literal string) string {
	if !strings.ContainsAny(literal, ".eE") {
		if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
			if i == 0 && strings.HasPrefix(literal, "-") {
				return "-0.0"
			}

			return strconv.FormatInt(i, 10)
		}

		if u, err := strconv.ParseUint(literal, 10, 64); err == nil {
			return strconv.FormatUint(u, 10)
		}
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsInf(f, 0) {
		return literal
	}

	return floatLiteral(f)
}

// String returns JSON string.
func String(value string) Value {
	return Value{kind: KindString, text: value}
}

// Array returns JSON array holding items in order.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: items}
}

// Field builds one object member.
func Field(key string, value Value) Member {
	return Member{Key: key, Value: value}
}

// Object returns JSON object with members in the given order.
// A repeated key keeps its first position and takes the last value.
func Object(members ...Member) Value {
	out := Value{
		kind:    KindObject,
		members: make([]Member, 0, len(members)),
		index:   make(map[string]int, len(members)),
	}

	for _, member := range members {
		if pos, ok := out.index[member.Key]; ok {
			out.members[pos].Value = member.Value
			continue
		}

		out.index[member.Key] = len(out.members)
		out.members = append(out.members, member)
	}

	return out
}

// Kind returns value variant.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether value is JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Get returns object member by key; ok is false for missing keys and non-objects.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}

	pos, ok := v.index[key]
	if !ok {
		return Value{}, false
	}

	return v.members[pos].Value, true
}

// Has reports whether object value contains key, regardless of member value.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// AsString returns string contents.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}

	return v.text, true
}

// AsBool returns boolean value.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}

	return v.boolean, true
}

// AsFloat returns number as float64.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}

	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// AsUint returns number as uint64 when its literal is a non-negative integer.
func (v Value) AsUint() (uint64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}

	u, err := strconv.ParseUint(v.text, 10, 64)
	if err != nil {
		return 0, false
	}

	return u, true
}

// AsArray returns array items. The slice is shared and must not be modified.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}

	return v.items, true
}

// AsObject returns object members in order. The slice is shared and must not be modified.
func (v Value) AsObject() ([]Member, bool) {
	if v.kind != KindObject {
		return nil, false
	}

	return v.members, true
}

// Text returns compact JSON text of the value with object members in order.
func (v Value) Text() string {
	return string(v.appendJSON(nil))
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.appendJSON(nil), nil
}

// appendJSON appends compact JSON encoding of v to buf.
func (v Value) appendJSON(buf []byte) []byte {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(buf, v.boolean)
	case KindNumber:
		return append(buf, v.text...)
	case KindString:
		return appendJSONString(buf, v.text)
	case KindArray:
		buf = append(buf, '[')
		for i, item := range v.items {
			if i > 0 {
				buf = append(buf, ',')
			}

			buf = item.appendJSON(buf)
		}

		return append(buf, ']')
	case KindObject:
		buf = append(buf, '{')
		for i, member := range v.members {
			if i > 0 {
				buf = append(buf, ',')
			}

			buf = appendJSONString(buf, member.Key)
			buf = append(buf, ':')
			buf = member.Value.appendJSON(buf)
		}

		return append(buf, '}')
	default:
		return append(buf, "null"...)
	}
}

// appendJSONString appends quoted JSON string without HTML-escaping <, > and &.
func appendJSONString(buf []byte, value string) []byte {
	data, err := json.MarshalWithOption(value, json.DisableHTMLEscape())
	if err != nil {
		return strconv.AppendQuote(buf, value)
	}

	return append(buf, data...)
}
