package layout

import (
	"fmt"
	"math"

	"github.com/ByLCY/quill/internal/logging"
)

// DefaultRevealPadding 为扫描揭示在字形左右两侧各留出的余量。
const DefaultRevealPadding = 4.0

// LengthPolicy 为一个字形的所有子轮廓填充长度。
type LengthPolicy interface {
	Resolve(g *GlyphRecord)
}

// Exact 通过外部几何能力测量真实弧长，描边动画依赖它与实际曲线一致。
// 测量失败时长度记为 0，不中断生成。
type Exact struct {
	Measurer LengthMeasurer
}

func (e Exact) Resolve(g *GlyphRecord) {
	for i := range g.Contours {
		c := &g.Contours[i]
		if c.Resolved {
			continue
		}
		length, err := e.measure(c.PathData)
		if err != nil {
			uerr := &UnresolvableLengthError{Char: g.Char, Contour: i, Err: err}
			logging.Logger().Debug("轮廓长度按 0 处理", "error", uerr)
			length = 0
		}
		c.Length = length
		c.Resolved = true
	}
}

func (e Exact) measure(d string) (float64, error) {
	if e.Measurer == nil {
		return 0, fmt.Errorf("未配置长度测量器")
	}
	l, err := e.Measurer.Measure(d)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(l) || math.IsInf(l, 0) || l < 0 {
		return 0, fmt.Errorf("长度无效: %g", l)
	}
	return l, nil
}

// Approximate 不测量弧长，而是取字形包围盒宽度加两侧余量：
// 揭示效果沿字形视觉宽度从左向右推进，与轮廓走向无关。
type Approximate struct {
	Padding float64
}

func (a Approximate) Resolve(g *GlyphRecord) {
	width := RevealWidth(g.Box, a.Padding)
	for i := range g.Contours {
		c := &g.Contours[i]
		if c.Resolved {
			continue
		}
		c.Length = width
		c.Resolved = true
	}
}

// RevealWidth 返回 box.Width() + 2*padding；包围盒无效时宽度按 0 计。
func RevealWidth(box BoundingBox, padding float64) float64 {
	w := 0.0
	if box.Valid() {
		w = box.Width()
	}
	return w + 2*padding
}

// ResolveLengths 对排版结果中的每个字形执行一次长度解析。
func ResolveLengths(res *Result, policy LengthPolicy) {
	if res == nil || policy == nil {
		return
	}
	for i := range res.Glyphs {
		policy.Resolve(&res.Glyphs[i])
	}
}
