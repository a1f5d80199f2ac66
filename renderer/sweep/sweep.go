// Package sweep 实现扫描揭示动画：字形实心填充，由一个从左向右增长的
// 裁剪矩形逐步显露。时间信息以 SMIL <animate> 内联在图元上，不依赖样式表。
package sweep

import (
	"fmt"

	"github.com/ByLCY/quill/layout"
	"github.com/ByLCY/quill/renderer"
	"github.com/ByLCY/quill/svg"
	"github.com/ByLCY/quill/timing"
)

// Renderer 为扫描揭示策略，整个字母是一个动画单元。
type Renderer struct {
	padding float64
}

var _ renderer.Renderer = (*Renderer)(nil)

// New 创建扫描揭示渲染器；padding 为负数时使用 layout.DefaultRevealPadding。
func New(padding float64) *Renderer {
	if padding < 0 {
		padding = layout.DefaultRevealPadding
	}
	return &Renderer{padding: padding}
}

// LengthPolicy 揭示宽度取包围盒宽度加两侧余量，不测量弧长。
func (r *Renderer) LengthPolicy() layout.LengthPolicy {
	return layout.Approximate{Padding: r.padding}
}

// Render 为每个字母输出一个裁剪矩形与一个填充路径。
func (r *Renderer) Render(doc *svg.Document, res *layout.Result, p renderer.Params) ([]timing.Entry, error) {
	if p.DrawSpeed <= 0 {
		return nil, fmt.Errorf("sweep: 绘制速度必须为正数: %g", p.DrawSpeed)
	}

	clock := p.Clock()
	entries := make([]timing.Entry, 0, len(res.Glyphs))
	for i, g := range res.Glyphs {
		width := layout.RevealWidth(g.Box, r.padding)
		duration := width / p.DrawSpeed
		delay := clock.Next(duration)

		x, y, height := g.X-r.padding, res.Baseline-res.FontSize, res.FontSize
		if g.Box.Valid() {
			x = g.Box.X1 - r.padding
			y = g.Box.Y1 - r.padding
			height = g.Box.Height() + 2*r.padding
		}

		id := fmt.Sprintf("reveal-%d", i)
		grow := svg.El("animate",
			svg.A("attributeName", "width"),
			svg.A("from", "0"),
			svg.A("to", svg.Num(width)),
			svg.A("dur", svg.Seconds(duration)),
			svg.A("begin", svg.Seconds(delay)),
			svg.A("fill", "freeze"),
		)
		rect := svg.El("rect",
			svg.A("x", svg.Num(x)),
			svg.A("y", svg.Num(y)),
			svg.A("width", "0"),
			svg.A("height", svg.Num(height)),
		).Append(grow)
		doc.AddDef(svg.El("clipPath", svg.A("id", id)).Append(rect))

		doc.Add(svg.El("path",
			svg.A("d", g.PathData),
			svg.A("fill", p.Color),
			svg.A("clip-path", "url(#"+id+")"),
		))

		entries = append(entries, timing.Entry{
			Target:   "#" + id,
			Kind:     timing.KindLetter,
			Duration: duration,
			Delay:    delay,
		})
	}
	return entries, nil
}
