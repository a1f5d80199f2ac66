// Package testfont 提供一个由矩形轮廓组成的确定性字体，供各包测试使用，
// 避免测试依赖真实字体文件的曲线细节。
package testfont

import (
	"github.com/tdewolff/canvas"

	"github.com/ByLCY/quill/layout"
)

// Rect 以字体单位描述一个矩形轮廓，y 轴向上。
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Perimeter 返回矩形周长（字体单位）。
func (r Rect) Perimeter() float64 {
	return 2 * ((r.X1 - r.X0) + (r.Y1 - r.Y0))
}

// Glyph 是由若干矩形轮廓组成的字形。
type Glyph struct {
	Advance  float64
	Contours []Rect
	upm      float64
}

var _ layout.Glyph = (*Glyph)(nil)

func (g *Glyph) AdvanceWidth() float64 { return g.Advance }

func (g *Glyph) Path(x, baseline, fontSize float64) *canvas.Path {
	if len(g.Contours) == 0 {
		return nil
	}
	s := fontSize / g.upm
	p := &canvas.Path{}
	for _, r := range g.Contours {
		w := (r.X1 - r.X0) * s
		h := (r.Y1 - r.Y0) * s
		p = p.Append(canvas.Rectangle(w, h).Translate(x+r.X0*s, baseline-r.Y1*s))
	}
	return p
}

// Font 实现 layout.Font。
type Font struct {
	Upm     float64
	Ascent  float64
	Descent float64
	Glyphs  map[rune]*Glyph
}

var _ layout.Font = (*Font)(nil)

func (f *Font) UnitsPerEm() float64 { return f.Upm }
func (f *Font) Ascender() float64   { return f.Ascent }
func (f *Font) Descender() float64  { return f.Descent }

func (f *Font) GlyphFor(r rune) (layout.Glyph, bool) {
	g, ok := f.Glyphs[r]
	if !ok {
		return nil, false
	}
	return g, true
}

// 预置字形（字体单位，unitsPerEm = 1000）。
var (
	// H：两根竖画加一根横画，三段轮廓都属于主笔画。
	HLeft  = Rect{50, 0, 150, 700}
	HRight = Rect{450, 0, 550, 700}
	HBar   = Rect{150, 300, 450, 400}
	// i：竖画周长 1120，点周长 160，低于 0.2 倍阈值（224），归为点。
	IStem = Rect{60, 0, 120, 500}
	IDot  = Rect{70, 600, 110, 640}
	// o：外框与内孔。
	OOuter = Rect{50, 0, 450, 500}
	OInner = Rect{150, 100, 350, 400}
	// l：单段竖画。
	LStem = Rect{60, 0, 140, 720}
)

// New 返回包含 H、i、o、l、空格以及一个无轮廓字符（U+200B）的字体。
// 其余字符均视为缺字。
func New() *Font {
	f := &Font{Upm: 1000, Ascent: 800, Descent: -200, Glyphs: map[rune]*Glyph{}}
	add := func(r rune, adv float64, rects ...Rect) {
		f.Glyphs[r] = &Glyph{Advance: adv, Contours: rects, upm: f.Upm}
	}
	add('H', 600, HLeft, HRight, HBar)
	add('i', 180, IStem, IDot)
	add('o', 500, OOuter, OInner)
	add('l', 200, LStem)
	add(' ', 250)
	add('\u200b', 0)
	return f
}

// Add 向字体追加一个字形，便于测试构造特殊情况。
func (f *Font) Add(r rune, advance float64, rects ...Rect) {
	f.Glyphs[r] = &Glyph{Advance: advance, Contours: rects, upm: f.Upm}
}
