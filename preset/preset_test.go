package preset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ByLCY/quill/compose"
	"github.com/ByLCY/quill/dsl"
	"github.com/ByLCY/quill/renderer"
	"github.com/ByLCY/quill/timing"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.quill")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestLoadAppliesUnitsAndKeepsBase(t *testing.T) {
	path := writePreset(t, `
preset title {
  text: "Hello ${user.name|guest}"
  font: "embed:go-bold"
  size: 1in
  letter-spacing: -1.5
  delay: 120ms
  fill-speed: 3x
  timing: sequential
  strategy: sweep-reveal
  color: #1e1e1e
}
`)
	base := compose.DefaultRequest("")
	cfg, err := Load(path, "title", base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	want := base
	want.Text = "Hello ${user.name|guest}"
	want.FontSize = 96
	want.LetterSpacing = -1.5
	want.InterLetterDelay = 0.12
	want.FillSpeedMultiplier = 3
	want.TimingMode = timing.Sequential
	want.Strategy = renderer.SweepReveal
	want.Color = "#1e1e1e"

	if diff := cmp.Diff(want, cfg.Request); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
	if cfg.Font != "embed:go-bold" || cfg.Name != "title" {
		t.Fatalf("unexpected config: name=%q font=%q", cfg.Name, cfg.Font)
	}
}

func TestLoadMissingPreset(t *testing.T) {
	path := writePreset(t, `preset a { text: "x" }`)
	_, err := Load(path, "b", compose.DefaultRequest(""))
	if err == nil || !strings.Contains(err.Error(), `"b"`) {
		t.Fatalf("expected missing preset error, got %v", err)
	}
}

func TestDecodeRejectsUnknownKeyAndBadValues(t *testing.T) {
	cases := []string{
		`preset p { colour: #fff }`,
		`preset p { size: big }`,
		`preset p { timing: random }`,
		`preset p { strategy: fade }`,
		`preset p { delay: "soon" }`,
	}
	for _, src := range cases {
		doc, err := dsl.ParseString(src)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if _, err := Decode(doc.Presets[0], compose.DefaultRequest("")); err == nil {
			t.Fatalf("expected decode error for %q", src)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	requests := []compose.Request{
		compose.DefaultRequest("Hello"),
		{
			Text:                "say \"hi\"\n你好",
			FontSize:            64.5,
			LetterSpacing:       -3,
			StrokeWidth:         0,
			DrawSpeed:           250,
			FillSpeedMultiplier: 1.5,
			InterLetterDelay:    0.05,
			TimingMode:          timing.Sequential,
			Strategy:            renderer.SweepReveal,
			Color:               "rgb(10, 20, 30)",
			Easing:              "cubic-bezier(0.4, 0, 0.2, 1)",
		},
		{
			Text:                "x",
			FontSize:            12,
			DrawSpeed:           1,
			FillSpeedMultiplier: 2,
			TimingMode:          timing.Stagger,
			Strategy:            renderer.StrokeDraw,
			Color:               "red",
			Easing:              "ease-in-out",
		},
	}
	for i, req := range requests {
		text := Encode("p", "fonts/custom.ttf", req)
		doc, err := dsl.ParseString(text)
		if err != nil {
			t.Fatalf("case %d: parse encoded preset: %v\n%s", i, err, text)
		}
		cfg, err := Decode(doc.Presets[0], compose.Request{})
		if err != nil {
			t.Fatalf("case %d: decode: %v", i, err)
		}
		if diff := cmp.Diff(req, cfg.Request); diff != "" {
			t.Fatalf("case %d: round trip mismatch (-want +got):\n%s", i, diff)
		}
		if cfg.Font != "fonts/custom.ttf" {
			t.Fatalf("case %d: font lost: %q", i, cfg.Font)
		}
	}
}

func TestParseSeconds(t *testing.T) {
	cases := map[string]float64{
		"120ms": 0.12,
		"0.5s":  0.5,
		"2":     2,
		" 1S ":  1,
	}
	for in, want := range cases {
		got, err := ParseSeconds(in)
		if err != nil || got != want {
			t.Fatalf("ParseSeconds(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseSeconds("abc"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadBundledExample(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "examples", "hello.quill"), "banner", compose.DefaultRequest(""))
	if err != nil {
		t.Fatalf("load example: %v", err)
	}
	if cfg.Request.FontSize != 96 || cfg.Request.Strategy != renderer.SweepReveal || cfg.Font != "embed:go-bold" {
		t.Fatalf("unexpected example preset: %+v", cfg)
	}
}
