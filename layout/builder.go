package layout

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/tdewolff/canvas"
	"golang.org/x/text/unicode/norm"
)

const (
	spaceWidthFactor    = 0.3 // 空格字形缺少步进宽度时使用 unitsPerEm*0.3
	advanceWidthFactor  = 0.5 // 字形缺少步进宽度时使用 unitsPerEm*0.5
	fallbackWidthFactor = 0.5 // 缺字时占用 fontSize*0.5 的水平空间
)

// Build 将文本沿基线排成字形序列。
// 空格与缺字只推进光标，不产生 GlyphRecord；结果为空时返回 ErrNoRenderableContent。
func Build(text string, opts BuildOptions) (*Result, error) {
	font := opts.Font
	if font == nil {
		return nil, fmt.Errorf("layout: 缺少字体")
	}
	upm := font.UnitsPerEm()
	if upm <= 0 || math.IsNaN(upm) || math.IsInf(upm, 0) {
		return nil, fmt.Errorf("layout: 字体 unitsPerEm 无效: %g", upm)
	}
	if opts.FontSize <= 0 {
		return nil, fmt.Errorf("layout: 字号必须为正数: %g", opts.FontSize)
	}

	scale := opts.FontSize / upm
	baseline := font.Ascender() * scale
	spacing := opts.LetterSpacing

	res := &Result{
		FontSize: opts.FontSize,
		Scale:    scale,
		Baseline: baseline,
	}

	x := 0.0
	for _, r := range norm.NFC.String(text) {
		if r == ' ' {
			adv := 0.0
			if g, ok := font.GlyphFor(' '); ok {
				adv = g.AdvanceWidth()
			}
			if adv <= 0 {
				adv = upm * spaceWidthFactor
			}
			x += adv*scale + spacing
			continue
		}

		glyph, ok := font.GlyphFor(r)
		var outline *canvas.Path
		if ok {
			outline = glyph.Path(x, baseline, opts.FontSize)
		}
		if outline == nil || outline.Empty() {
			x += opts.FontSize*fallbackWidthFactor + spacing
			continue
		}

		adv := glyph.AdvanceWidth()
		if adv <= 0 {
			adv = upm * advanceWidthFactor
		}
		advance := adv * scale

		res.Glyphs = append(res.Glyphs, GlyphRecord{
			Char:         string(r),
			X:            x,
			Box:          boundsOf(outline),
			AdvanceWidth: advance,
			PathData:     outline.ToSVG(),
			Contours:     SplitContours(outline),
			outline:      outline,
		})
		x += advance + spacing
	}
	res.Advance = x

	if len(res.Glyphs) == 0 {
		return nil, ErrNoRenderableContent
	}

	// 字形的输出顺序不一定与视觉上的从左到右一致，这里统一按左边缘排序。
	slices.SortStableFunc(res.Glyphs, func(a, b GlyphRecord) int {
		return cmp.Compare(a.sortKey(), b.sortKey())
	})
	return res, nil
}

func (g *GlyphRecord) sortKey() float64 {
	if g.Box.Valid() {
		return g.Box.X1
	}
	return g.X
}

func boundsOf(p *canvas.Path) BoundingBox {
	if p == nil || p.Empty() {
		nan := math.NaN()
		return BoundingBox{X1: nan, Y1: nan, X2: nan, Y2: nan}
	}
	r := p.Bounds()
	return BoundingBox{X1: r.X0, Y1: r.Y0, X2: r.X1, Y2: r.Y1}
}
