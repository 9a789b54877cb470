// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"strings"
	"testing"
)

func TestMinify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses whitespace between tags",
			input: "<div>   <p>  Hello  World  </p>   </div>",
			want:  "<div><p> Hello World</p></div>",
		},
		{
			name:  "preserves double quoted attribute",
			input: `<div class="  multiple   spaces  ">  text  </div>`,
			want:  `<div class="  multiple   spaces  "> text</div>`,
		},
		{
			name:  "preserves single quoted attribute",
			input: `<div class='  spaced  '>  x  </div>`,
			want:  `<div class='  spaced  '> x</div>`,
		},
		{
			name:  "mixed quotes",
			input: `<div title="it's   here" data-x='say "hi"   now'>  y  </div>`,
			want:  `<div title="it's   here" data-x='say "hi"   now'> y</div>`,
		},
		{
			name:  "angle brackets inside quoted attribute",
			input: `<a title="a > b   < c">  link  </a>`,
			want:  `<a title="a > b   < c"> link</a>`,
		},
		{
			name:  "multiline markup",
			input: "<div>\n\t<span>a</span>\r\n\t<span>b</span>\n</div>\n",
			want:  "<div><span>a</span><span>b</span></div>",
		},
		{
			name:  "self closing tags",
			input: `<img src="test.jpg" />  <br />  <hr />`,
			want:  `<img src="test.jpg" /><br /><hr />`,
		},
		{
			name:  "quotes in text are plain characters",
			input: `<p>It's   "quoted"   text</p>`,
			want:  `<p>It's "quoted" text</p>`,
		},
		{
			name:  "text only",
			input: "  just   some\n\ttext  ",
			want:  "just some text",
		},
		{
			name:  "non ascii text passes through",
			input: "<p>héllo   wörld  ✓</p>",
			want:  "<p>héllo wörld ✓</p>",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \n\t\r ",
			want:  "",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Minify(tc.input); got != tc.want {
				t.Fatalf("Minify(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestMinifyIsIdempotentOnRenderedMarkup(t *testing.T) {
	t.Parallel()

	html, err := Render(readFixtureSchema(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	once := Minify(html)
	if twice := Minify(once); twice != once {
		t.Fatalf("Minify is not idempotent:\nonce:  %s\ntwice: %s", once, twice)
	}

	assertNotContains(t, once, "\n")
	assertNotContains(t, once, "> <")
}

func TestMinifyLargeInput(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("<span class=\"a  b\">  x  </span>\n", 20000)
	got := Minify(input)

	want := strings.TrimSpace(strings.Repeat(`<span class="a  b"> x</span>`, 20000))
	if got != want {
		t.Fatalf("Minify large input mismatch, len(got)=%d len(want)=%d", len(got), len(want))
	}
}
