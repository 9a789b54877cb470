// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// maxNestingDepth limits container nesting of decoded documents.
const maxNestingDepth = 128

// utf8BOM is stripped before JSON decoding; YAML parser handles it itself.
var utf8BOM = []byte("\ufeff")

const (
	// FormatAuto selects JSON or YAML from file extension or document content.
	FormatAuto Format = "auto"
	// FormatJSON decodes schema as JSON.
	FormatJSON Format = "json"
	// FormatYAML decodes schema as YAML.
	FormatYAML Format = "yaml"
)

// Format selects schema document syntax.
type Format string

// Decode parses schema document bytes into an order-preserving Value.
func Decode(data []byte, format Format) (Value, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return Value{}, err
	}

	if format == FormatAuto {
		format = sniffFormat(data)
	}

	var value Value
	switch format {
	case FormatYAML:
		value, err = decodeYAML(data)
	default:
		value, err = decodeJSON(data)
	}

	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	return value, nil
}

// normalizeFormat validates format name and falls back to auto.
func normalizeFormat(format Format) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(string(format)))) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// FormatForPath resolves FormatAuto from file extension when it is conclusive.
// Explicit formats are returned unchanged.
func FormatForPath(format Format, path string) Format {
	if normalized, err := normalizeFormat(format); err != nil || normalized != FormatAuto {
		return format
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

// sniffFormat treats documents opening with '{' or '[' as JSON and anything else as YAML.
func sniffFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return FormatJSON
	}

	switch trimmed[0] {
	case '{', '[':
		return FormatJSON
	default:
		return FormatYAML
	}
}

// decodeJSON walks decoder tokens so object member order survives decoding.
func decodeJSON(data []byte) (Value, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	value, err := readJSONValue(decoder, 0)
	if err != nil {
		return Value{}, err
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, err
		}

		return Value{}, errors.New("unexpected data after top-level value")
	}

	return value, nil
}

// readJSONValue reads one complete JSON value from decoder.
func readJSONValue(decoder *json.Decoder, depth int) (Value, error) {
	token, err := decoder.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, io.ErrUnexpectedEOF
		}

		return Value{}, err
	}

	switch typed := token.(type) {
	case json.Delim:
		if depth >= maxNestingDepth {
			return Value{}, ErrSchemaTooDeep
		}

		switch typed {
		case '{':
			return readJSONObject(decoder, depth+1)
		case '[':
			return readJSONArray(decoder, depth+1)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", rune(typed))
		}
	case string:
		return String(typed), nil
	case json.Number:
		return Number(canonicalNumber(typed.String())), nil
	case float64:
		return Float(typed), nil
	case bool:
		return Bool(typed), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", token)
	}
}

// readJSONObject reads members after an opening brace up to the closing brace.
func readJSONObject(decoder *json.Decoder, depth int) (Value, error) {
	members := make([]Member, 0, 8)
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return Value{}, err
		}

		key, ok := token.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be string, got %v", token)
		}

		value, err := readJSONValue(decoder, depth)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", key, err)
		}

		members = append(members, Field(key, value))
	}

	if _, err := decoder.Token(); err != nil {
		return Value{}, err
	}

	return Object(members...), nil
}

// readJSONArray reads items after an opening bracket up to the closing bracket.
func readJSONArray(decoder *json.Decoder, depth int) (Value, error) {
	items := make([]Value, 0, 4)
	for decoder.More() {
		value, err := readJSONValue(decoder, depth)
		if err != nil {
			return Value{}, fmt.Errorf("[%d]: %w", len(items), err)
		}

		items = append(items, value)
	}

	if _, err := decoder.Token(); err != nil {
		return Value{}, err
	}

	return Array(items...), nil
}

// decodeYAML converts the first YAML document node tree into Value.
func decodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, err
	}

	if doc.Kind == 0 {
		return Value{}, errors.New("empty document")
	}

	converter := yamlConverter{budget: yamlNodeBudget(len(data))}
	return converter.value(&doc, 0)
}

// yamlNodeBudget bounds values produced from a document of size n,
// so alias fan-out cannot expand a small input into a huge tree.
func yamlNodeBudget(n int) int {
	return max(minYAMLNodeBudget, n*yamlNodesPerByte)
}

const (
	// minYAMLNodeBudget is the node budget for small documents.
	minYAMLNodeBudget = 10000
	// yamlNodesPerByte scales the node budget with document size.
	yamlNodesPerByte = 16
)

// yamlConverter walks yaml.Node trees, expanding aliases and merge keys
// while spending one unit of budget per produced value.
type yamlConverter struct {
	budget int
}

// value converts one YAML node into Value.
func (c *yamlConverter) value(node *yaml.Node, depth int) (Value, error) {
	if node == nil {
		return Null(), nil
	}

	if depth > maxNestingDepth {
		return Value{}, ErrSchemaTooDeep
	}

	c.budget--
	if c.budget < 0 {
		return Value{}, ErrSchemaTooLarge
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}

		return c.value(node.Content[0], depth)
	case yaml.AliasNode:
		return c.value(node.Alias, depth+1)
	case yaml.MappingNode:
		return c.mapping(node, depth)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := c.value(child, depth+1)
			if err != nil {
				return Value{}, err
			}

			items = append(items, value)
		}

		return Array(items...), nil
	case yaml.ScalarNode:
		return yamlScalarValue(node), nil
	default:
		return Value{}, fmt.Errorf("line %d: unsupported yaml node kind %d", node.Line, node.Kind)
	}
}

// mapping converts mapping node. Merge keys (`<<`) contribute members of the
// referenced mappings; explicit keys override merged ones and earlier merge
// sources override later ones.
func (c *yamlConverter) mapping(node *yaml.Node, depth int) (Value, error) {
	var merged, explicit []Member
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return Value{}, fmt.Errorf("line %d: mapping key must be scalar", keyNode.Line)
		}

		value, err := c.value(valueNode, depth+1)
		if err != nil {
			return Value{}, err
		}

		if keyNode.ShortTag() == "!!merge" {
			merged, err = appendMergeSources(merged, value, keyNode.Line)
			if err != nil {
				return Value{}, err
			}

			continue
		}

		explicit = append(explicit, Field(keyNode.Value, value))
	}

	if len(merged) == 0 {
		return Object(explicit...), nil
	}

	return Object(append(merged, explicit...)...), nil
}

// appendMergeSources appends members of a merge value, a mapping or a
// sequence of mappings, skipping keys already merged.
func appendMergeSources(merged []Member, source Value, line int) ([]Member, error) {
	sources := []Value{source}
	if items, ok := source.AsArray(); ok {
		sources = items
	}

	for _, item := range sources {
		members, ok := item.AsObject()
		if !ok {
			return nil, fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings", line)
		}

		for _, member := range members {
			if !slices.ContainsFunc(merged, func(m Member) bool { return m.Key == member.Key }) {
				merged = append(merged, member)
			}
		}
	}

	return merged, nil
}

// yamlScalarValue maps resolved YAML scalar tags onto JSON kinds.
func yamlScalarValue(node *yaml.Node) Value {
	switch node.ShortTag() {
	case "!!null":
		return Null()
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return String(node.Value)
		}

		return Bool(b)
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return Int(i)
		}

		var u uint64
		if err := node.Decode(&u); err == nil {
			return Number(strconv.FormatUint(u, 10))
		}

		return String(node.Value)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return String(node.Value)
		}

		return Float(f)
	default:
		return String(node.Value)
	}
}
