// Package stroke 实现逐笔描边动画：只绘制轮廓线，通过 stroke-dashoffset
// 关键帧逐段显现，点与附加符号在主体笔画完成后统一绘制。
package stroke

import (
	"fmt"
	"math"

	"github.com/ByLCY/quill/layout"
	"github.com/ByLCY/quill/renderer"
	"github.com/ByLCY/quill/svg"
	"github.com/ByLCY/quill/timing"
)

// KeyframesName 为所有子轮廓共用的关键帧名称。
const KeyframesName = "draw"

// DefaultEasing 让描边速度与基于长度的时长保持一致。
const DefaultEasing = "linear"

// Renderer 为描边策略。
type Renderer struct {
	measurer     layout.LengthMeasurer
	dotThreshold float64
}

var _ renderer.Renderer = (*Renderer)(nil)

// New 创建描边渲染器；measurer 用于测量真实弧长，dotThreshold 为 0 时使用默认阈值。
func New(measurer layout.LengthMeasurer, dotThreshold float64) *Renderer {
	return &Renderer{measurer: measurer, dotThreshold: dotThreshold}
}

// LengthPolicy 描边需要与实际曲线一致的弧长，否则动画会领先或落后于笔画。
func (r *Renderer) LengthPolicy() layout.LengthPolicy {
	return layout.Exact{Measurer: r.measurer}
}

// Render 为每个子轮廓输出一个 path，并以 nth-of-type 选择器绑定各自的虚线长度与时间。
func (r *Renderer) Render(doc *svg.Document, res *layout.Result, p renderer.Params) ([]timing.Entry, error) {
	if p.DrawSpeed <= 0 {
		return nil, fmt.Errorf("stroke: 绘制速度必须为正数: %g", p.DrawSpeed)
	}
	if p.FillSpeedMultiplier <= 0 {
		return nil, fmt.Errorf("stroke: 点的速度倍数必须为正数: %g", p.FillSpeedMultiplier)
	}
	easing := p.Easing
	if easing == "" {
		easing = DefaultEasing
	}

	doc.AddKeyframes(svg.Keyframes{
		Name:   KeyframesName,
		Frames: []svg.Rule{{Selector: "to", Decls: []svg.Decl{svg.D("stroke-dashoffset", "0")}}},
	})

	params := timing.StrokeParams{
		DrawSpeed:           p.DrawSpeed,
		FillSpeedMultiplier: p.FillSpeedMultiplier,
		DotThreshold:        r.dotThreshold,
	}
	clock := p.Clock()
	n := countPaths(doc)
	var entries []timing.Entry
	for _, g := range res.Glyphs {
		lengths := make([]float64, len(g.Contours))
		for i, c := range g.Contours {
			lengths[i] = c.Length
		}
		plan := timing.PlanLetter(lengths, params)
		// sequential 下只按主笔画时长推进，点与下一个字母同时开始绘制
		base := clock.Next(plan.MainDuration)

		for _, s := range plan.Strokes {
			n++
			doc.Add(svg.El("path",
				svg.A("d", g.Contours[s.Index].PathData),
				svg.A("fill", "none"),
				svg.A("stroke", p.Color),
				svg.A("stroke-width", svg.Num(p.StrokeWidth)),
				svg.A("stroke-linecap", "round"),
				svg.A("stroke-linejoin", "round"),
			))

			selector := fmt.Sprintf("path:nth-of-type(%d)", n)
			dash := svg.Num(math.Ceil(s.Length*1000) / 1000)
			delay := base + s.Offset
			doc.AddRule(selector,
				svg.D("stroke-dasharray", dash),
				svg.D("stroke-dashoffset", dash),
				svg.D("animation", fmt.Sprintf("%s %s %s %s forwards",
					KeyframesName, svg.Seconds(s.Duration), easing, svg.Seconds(delay))),
			)
			entries = append(entries, timing.Entry{
				Target:   selector,
				Kind:     s.Kind,
				Duration: s.Duration,
				Delay:    delay,
			})
		}
	}
	return entries, nil
}

func countPaths(doc *svg.Document) int {
	n := 0
	for _, e := range doc.Elements {
		if e.Name == "path" {
			n++
		}
	}
	return n
}
