package sweep

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ByLCY/quill/internal/testfont"
	"github.com/ByLCY/quill/layout"
	"github.com/ByLCY/quill/renderer"
	"github.com/ByLCY/quill/svg"
	"github.com/ByLCY/quill/timing"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func params(mode timing.Mode) renderer.Params {
	return renderer.Params{
		Color:            "#0f62fe",
		DrawSpeed:        400,
		InterLetterDelay: 0.12,
		Mode:             mode,
	}
}

func TestRenderSequential(t *testing.T) {
	res, err := layout.Build("Hi", layout.BuildOptions{Font: testfont.New(), FontSize: 100})
	if err != nil {
		t.Fatalf("排版失败: %v", err)
	}
	doc := svg.New(0, 0, 100, 90)
	entries, err := New(layout.DefaultRevealPadding).Render(doc, res, params(timing.Sequential))
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}

	// H 宽 50，i 宽 6，两侧各加 4。
	want := []timing.Entry{
		{Target: "#reveal-0", Kind: timing.KindLetter, Duration: 58.0 / 400, Delay: 0},
		{Target: "#reveal-1", Kind: timing.KindLetter, Duration: 14.0 / 400, Delay: 58.0 / 400},
	}
	if diff := cmp.Diff(want, entries, approx); diff != "" {
		t.Fatalf("时间表不符 (-want +got):\n%s", diff)
	}

	if doc.HasStyles() {
		t.Fatalf("扫描揭示不应产生样式规则")
	}
	if len(doc.Defs) != 2 || len(doc.Elements) != 2 {
		t.Fatalf("文档结构不符: %d defs, %d elements", len(doc.Defs), len(doc.Elements))
	}

	rect := doc.Defs[0].Children[0]
	wantRect := map[string]string{"x": "1", "y": "6", "width": "0", "height": "78"}
	for k, v := range wantRect {
		if got, _ := rect.Attr(k); got != v {
			t.Fatalf("裁剪矩形属性 %s = %q，期望 %q", k, got, v)
		}
	}
	grow := rect.Children[0]
	wantGrow := map[string]string{"attributeName": "width", "from": "0", "to": "58", "dur": "0.145s", "begin": "0.000s", "fill": "freeze"}
	for k, v := range wantGrow {
		if got, _ := grow.Attr(k); got != v {
			t.Fatalf("animate 属性 %s = %q，期望 %q", k, got, v)
		}
	}
	if got, _ := doc.Elements[1].Attr("clip-path"); got != "url(#reveal-1)" {
		t.Fatalf("路径裁剪引用不符: %q", got)
	}
	if got, _ := doc.Elements[1].Attr("fill"); got != "#0f62fe" {
		t.Fatalf("路径应实心填充: %q", got)
	}
}

func TestRenderStaggerUsesInterLetterDelay(t *testing.T) {
	res, err := layout.Build("HHH", layout.BuildOptions{Font: testfont.New(), FontSize: 100})
	if err != nil {
		t.Fatalf("排版失败: %v", err)
	}
	entries, err := New(0).Render(svg.New(0, 0, 1, 1), res, params(timing.Stagger))
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	got := []float64{entries[0].Delay, entries[1].Delay, entries[2].Delay}
	if diff := cmp.Diff([]float64{0, 0.12, 0.24}, got, approx); diff != "" {
		t.Fatalf("stagger 延迟不符 (-want +got):\n%s", diff)
	}
}

func TestRenderInvalidBoxFallsBackToBaselineBand(t *testing.T) {
	nan := math.NaN()
	res := &layout.Result{
		FontSize: 100,
		Baseline: 80,
		Glyphs: []layout.GlyphRecord{{
			Char:     "x",
			X:        10,
			Box:      layout.BoundingBox{X1: nan, Y1: nan, X2: nan, Y2: nan},
			PathData: "M0 0",
		}},
	}
	doc := svg.New(0, 0, 100, 40)
	entries, err := New(4).Render(doc, res, params(timing.Stagger))
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	if diff := cmp.Diff(8.0/400, entries[0].Duration, approx); diff != "" {
		t.Fatalf("无效包围盒的时长应只含余量:\n%s", diff)
	}
	rect := doc.Defs[0].Children[0]
	for k, v := range map[string]string{"x": "6", "y": "-20", "height": "100"} {
		if got, _ := rect.Attr(k); got != v {
			t.Fatalf("回退矩形属性 %s = %q，期望 %q", k, got, v)
		}
	}
}

func TestNewPadding(t *testing.T) {
	cases := map[float64]float64{
		-1: layout.DefaultRevealPadding,
		0:  0,
		2:  2,
	}
	for in, want := range cases {
		policy, ok := New(in).LengthPolicy().(layout.Approximate)
		if !ok {
			t.Fatalf("扫描揭示应使用近似长度")
		}
		if policy.Padding != want {
			t.Fatalf("New(%g) 余量为 %g，期望 %g", in, policy.Padding, want)
		}
	}
}

func TestRenderRejectsBadSpeed(t *testing.T) {
	p := params(timing.Stagger)
	p.DrawSpeed = -1
	if _, err := New(4).Render(svg.New(0, 0, 1, 1), &layout.Result{}, p); err == nil {
		t.Fatalf("绘制速度为负应报错")
	}
}
