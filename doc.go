// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

/*
Package schemahtml renders JSON Schema documents into embeddable HTML fragments.

The output is structural markup annotated with a fixed set of CSS class names
(schema-container, property depth-N, type-badge, constraint, ...) and carries
no <style>, <script> or document scaffold, so callers style it themselves.
Schemas are rendered best effort: nothing is validated and `$ref` is shown as
a badge, never resolved.

Convert schema bytes (JSON or YAML) into minified markup:

	schemaBytes, err := os.ReadFile("schema.json")
	if err != nil {
		return err
	}

	html, err := schemahtml.Convert(schemaBytes, schemahtml.Options{})
	if err != nil {
		return err
	}

	fmt.Println(html)

Convert directly from file, keeping unminified markup:

	html, err := schemahtml.ConvertFile("schema.yaml", schemahtml.Options{
		NoMinify: true,
	})
	if err != nil {
		return err
	}

Render an in-memory schema value; object member order is output order:

	schema := schemahtml.Object(
		schemahtml.Field("type", schemahtml.String("object")),
		schemahtml.Field("required", schemahtml.Array(schemahtml.String("id"))),
		schemahtml.Field("properties", schemahtml.Object(
			schemahtml.Field("id", schemahtml.Object(
				schemahtml.Field("type", schemahtml.String("integer")),
			)),
		)),
	)

	html, _ := schemahtml.Render(schema)
	fmt.Println(schemahtml.Minify(html))

Detect JSON Schema draft support:

	info := schemahtml.DetectDraft("https://json-schema.org/draft/2020-12/schema")
	fmt.Printf("draft=%s supported=%v\n", info.Canonical, info.Supported)

Render and Minify are pure functions and safe for concurrent use.
*/
package schemahtml
