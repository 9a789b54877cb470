// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import "strings"

// DraftInfo describes JSON Schema draft detected from `$schema` value.
type DraftInfo struct {
	// Raw is the trimmed `$schema` value.
	Raw string
	// Canonical is the normalized draft name, for example "2020-12" or "draft-07".
	Canonical string
	// Supported reports whether rendered keywords match the detected draft.
	Supported bool
}

// supportedDrafts maps draft tokens found in `$schema` URIs to canonical names.
var supportedDrafts = []struct {
	Token     string
	Canonical string
}{
	{Token: "2020-12", Canonical: "2020-12"},
	{Token: "2019-09", Canonical: "2019-09"},
	{Token: "draft-07", Canonical: "draft-07"},
	{Token: "draft-06", Canonical: "draft-06"},
	{Token: "draft-05", Canonical: "draft-05"},
	{Token: "draft-04", Canonical: "draft-04"},
}

// DetectDraft normalizes `$schema` URI or bare draft name into DraftInfo.
func DetectDraft(uri string) DraftInfo {
	raw := strings.TrimSpace(uri)
	info := DraftInfo{Raw: raw}
	if raw == "" {
		return info
	}

	normalized := strings.ToLower(raw)
	normalized = strings.TrimSuffix(normalized, "#")
	normalized = strings.TrimSuffix(normalized, "/")
	normalized = strings.TrimSuffix(normalized, "/schema")

	for _, draft := range supportedDrafts {
		if normalized == draft.Token ||
			strings.HasSuffix(normalized, "/"+draft.Token) ||
			strings.HasSuffix(normalized, "/draft/"+draft.Token) {
			info.Canonical = draft.Canonical
			info.Supported = true
			return info
		}
	}

	info.Canonical = normalized
	if idx := strings.LastIndex(normalized, "/"); idx >= 0 {
		info.Canonical = normalized[idx+1:]
	}

	return info
}

// SchemaDraft detects draft of decoded schema root from its `$schema` keyword.
func SchemaDraft(schema Value) DraftInfo {
	uri, _ := stringField(schema, "$schema")
	return DetectDraft(uri)
}
