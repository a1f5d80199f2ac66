package renderer

import (
	"fmt"
	"strings"

	"github.com/ByLCY/quill/layout"
	"github.com/ByLCY/quill/svg"
	"github.com/ByLCY/quill/timing"
)

// Renderer 将排版结果与时间安排写入 SVG 文档模型。
// 两种动画策略共享同一个 timing.Clock 语义，可互相替换。
type Renderer interface {
	// LengthPolicy 返回该策略需要的子轮廓长度解析方式。
	LengthPolicy() layout.LengthPolicy
	// Render 向 doc 追加图元与样式，返回每个动画单元的时间安排。
	Render(doc *svg.Document, res *layout.Result, p Params) ([]timing.Entry, error)
}

// Params 为渲染器共用的参数，由生成请求转换而来。
type Params struct {
	Color               string
	StrokeWidth         float64
	DrawSpeed           float64
	FillSpeedMultiplier float64
	InterLetterDelay    float64
	Mode                timing.Mode
	Easing              string
}

// Clock 按参数创建字母级时钟。
func (p Params) Clock() *timing.Clock {
	return timing.NewClock(p.Mode, p.InterLetterDelay)
}

// Strategy 为动画策略名称。
type Strategy string

const (
	StrokeDraw  Strategy = "stroke-draw"
	SweepReveal Strategy = "sweep-reveal"
)

// ParseStrategy 解析策略名称，空字符串视为 stroke-draw。
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrokeDraw:
		return StrokeDraw, nil
	case SweepReveal:
		return SweepReveal, nil
	default:
		return "", fmt.Errorf("renderer: 未知的动画策略 %q", s)
	}
}
