// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

// schemaType returns `type` keyword when it is a single string.
func schemaType(node Value) string {
	value, _ := stringField(node, "type")
	return value
}

// stringField extracts string member; wrong types count as absent.
func stringField(node Value, key string) (string, bool) {
	value, ok := node.Get(key)
	if !ok {
		return "", false
	}

	return value.AsString()
}

// objectField extracts object member in declaration order.
func objectField(node Value, key string) ([]Member, bool) {
	value, ok := node.Get(key)
	if !ok {
		return nil, false
	}

	return value.AsObject()
}

// arrayField extracts array member.
func arrayField(node Value, key string) ([]Value, bool) {
	value, ok := node.Get(key)
	if !ok {
		return nil, false
	}

	return value.AsArray()
}

// requiredSet collects string entries of `required`, skipping other kinds.
func requiredSet(node Value) map[string]struct{} {
	values, _ := arrayField(node, "required")
	out := make(map[string]struct{}, len(values))
	for _, value := range values {
		if name, ok := value.AsString(); ok {
			out[name] = struct{}{}
		}
	}

	return out
}

// definitionsField selects `definitions`, or `$defs` when `definitions` is absent.
// A present but non-object `definitions` still shadows `$defs`.
func definitionsField(node Value) ([]Member, bool) {
	value, ok := node.Get("definitions")
	if !ok {
		value, ok = node.Get("$defs")
	}

	if !ok {
		return nil, false
	}

	return value.AsObject()
}
