package dsl_test

import (
	"testing"

	"github.com/ByLCY/quill/dsl"
)

const samplePresets = `
// 标题动画
preset hello {
  text: "Hello, ${user.name}!"
  font: "embed:go-bold"
  size: 96px
  letter-spacing: -2
  delay: 120ms
  strategy: sweep-reveal
  color: #0F62FE
}

/* 第二个预设 */
preset quiet { text: "hi"; timing: sequential }
`

// lookup 返回 key 最后一次出现的赋值，与 preset.Decode 的覆盖顺序一致。
func lookup(p *dsl.Preset, key string) (*dsl.Value, bool) {
	var found *dsl.Value
	for _, e := range p.Entries {
		if e.Key == key {
			found = e.Value
		}
	}
	return found, found != nil
}

func TestParsePresets(t *testing.T) {
	doc, err := dsl.ParseString(samplePresets)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(doc.Presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(doc.Presets))
	}

	hello, ok := doc.Find("hello")
	if !ok {
		t.Fatalf("preset hello missing")
	}
	if len(hello.Entries) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(hello.Entries))
	}

	cases := []struct {
		key  string
		want string
	}{
		{"text", "Hello, ${user.name}!"},
		{"font", "embed:go-bold"},
		{"size", "96px"},
		{"letter-spacing", "-2"},
		{"delay", "120ms"},
		{"strategy", "sweep-reveal"},
		{"color", "#0F62FE"},
	}
	for _, c := range cases {
		v, ok := lookup(hello, c.key)
		if !ok {
			t.Fatalf("key %s missing", c.key)
		}
		if got := v.Raw(); got != c.want {
			t.Fatalf("key %s: got %q want %q", c.key, got, c.want)
		}
	}
	if v, _ := lookup(hello, "color"); v.Color == nil {
		t.Fatalf("color should be captured as Color token, got %+v", v)
	}
	if v, _ := lookup(hello, "strategy"); v.Ident == nil {
		t.Fatalf("strategy should be captured as Ident token, got %+v", v)
	}

	quiet, ok := doc.Find("quiet")
	if !ok || len(quiet.Entries) != 2 {
		t.Fatalf("unexpected quiet preset: %+v", quiet)
	}
	if v, _ := lookup(quiet, "timing"); v.Raw() != "sequential" {
		t.Fatalf("unexpected timing value: %q", v.Raw())
	}
}

func TestFindDefaultsToFirst(t *testing.T) {
	doc, err := dsl.ParseString(samplePresets)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	p, ok := doc.Find("")
	if !ok || p.Name != "hello" {
		t.Fatalf("expected first preset, got %+v", p)
	}
	if _, ok := doc.Find("missing"); ok {
		t.Fatalf("unexpected preset for missing name")
	}
}

func TestRepeatedKeysKeepOrder(t *testing.T) {
	doc, err := dsl.ParseString(`preset p { size: 10
size: 20 }`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	v, ok := lookup(doc.Presets[0], "size")
	if !ok || v.Raw() != "20" {
		t.Fatalf("expected last assignment to win, got %+v", v)
	}
}

func TestParseRejectsMissingColon(t *testing.T) {
	if _, err := dsl.ParseString(`preset p { size 10 }`); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestHashComments(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		color string
	}{
		{"leading comment that looks like hex", "#add note\npreset a { color: #fff }", "#fff"},
		{"comment line inside preset", "preset a {\n  #bad\n  color: #0F62FE\n}", "#0F62FE"},
		{"trailing comment after value", "preset a { color: #1e1e1e # 深灰\n}", "#1e1e1e"},
		{"comment after ident value", "preset a { color: red #fed\n}", "red"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc, err := dsl.ParseString(c.src)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if len(doc.Presets) != 1 || len(doc.Presets[0].Entries) != 1 {
				t.Fatalf("unexpected document: %+v", doc.Presets)
			}
			v, _ := lookup(doc.Presets[0], "color")
			if got := v.Raw(); got != c.color {
				t.Fatalf("color: got %q want %q", got, c.color)
			}
		})
	}
}

func TestParseRejectsBadColorValue(t *testing.T) {
	if _, err := dsl.ParseString(`preset p { color: #zz }`); err == nil {
		t.Fatalf("expected parse error for invalid color")
	}
}
