// Package compose 串联排版、长度解析、时间调度与渲染，生成动画 SVG。
//
// Generate 是纯函数：不做 I/O，不保存跨调用的状态，相同输入得到逐字节相同的输出。
package compose

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ByLCY/quill/internal/logging"
	"github.com/ByLCY/quill/layout"
	"github.com/ByLCY/quill/renderer"
	canvasrenderer "github.com/ByLCY/quill/renderer/canvas"
	"github.com/ByLCY/quill/renderer/stroke"
	"github.com/ByLCY/quill/renderer/sweep"
	"github.com/ByLCY/quill/svg"
	"github.com/ByLCY/quill/timing"
)

// Options 配置生成阶段的外部依赖与可调常量，零值可用。
type Options struct {
	// Measurer 为描边策略提供真实弧长，为 nil 时使用 canvas 的路径几何。
	Measurer layout.LengthMeasurer
	// DotThreshold 覆盖 timing.DefaultDotThreshold。
	DotThreshold float64
	// RevealPadding 覆盖 layout.DefaultRevealPadding；nil 或负数使用默认值，0 表示不留余量。
	RevealPadding *float64
	// Minify 压缩三个输出产物。
	Minify bool
}

// Artifact 为一次生成的完整产物。
type Artifact struct {
	Combined string // 几何与样式合一的 SVG
	Geometry string // 去掉样式块的 SVG，单独嵌入时静态显示
	Style    string // 样式块内容，没有样式块时为空

	Viewport layout.Viewport
	Layout   *layout.Result
	Schedule []timing.Entry
	Stats    Stats
}

// Separable 报告产物是否可拆分为几何与样式两部分。
func (a *Artifact) Separable() bool { return a.Style != "" }

// Stats 为生成结果的摘要信息。
type Stats struct {
	Glyphs        int               `json:"glyphs"`
	Units         int               `json:"units"`
	TotalDuration float64           `json:"totalDuration"` // 秒
	Strategy      renderer.Strategy `json:"strategy"`
	Bytes         int               `json:"bytes"`
}

// SetLogger 为 quill 的所有包设置记录器；默认不输出任何日志，传入 nil 恢复静默。
func SetLogger(l *slog.Logger) { logging.Set(l) }

// Generate 根据字体与请求生成动画 SVG。
// 任一错误都会中止生成，不返回部分产物。
func Generate(font layout.Font, req Request, opts Options) (*Artifact, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if font == nil {
		return nil, ErrFontNotLoaded
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	strategy, _ := renderer.ParseStrategy(string(req.Strategy))
	mode, _ := timing.ParseMode(string(req.TimingMode))

	res, err := layout.Build(text, layout.BuildOptions{
		Font:          font,
		FontSize:      req.FontSize,
		LetterSpacing: req.LetterSpacing,
	})
	if err != nil {
		return nil, err
	}

	r := newRenderer(strategy, opts)
	layout.ResolveLengths(res, r.LengthPolicy())

	vp := layout.ComputeViewport(res)
	doc := svg.New(vp.MinX, vp.MinY, vp.Width, vp.Height)
	entries, err := r.Render(doc, res, renderer.Params{
		Color:               req.Color,
		StrokeWidth:         req.StrokeWidth,
		DrawSpeed:           req.DrawSpeed,
		FillSpeedMultiplier: req.FillSpeedMultiplier,
		InterLetterDelay:    req.InterLetterDelay,
		Mode:                mode,
		Easing:              req.Easing,
	})
	if err != nil {
		return nil, fmt.Errorf("渲染 %s 失败: %w", strategy, err)
	}

	art := &Artifact{
		Combined: doc.String(),
		Viewport: vp,
		Layout:   res,
		Schedule: entries,
	}
	art.Geometry, art.Style, _ = svg.SplitStyle(art.Combined)

	if opts.Minify {
		if err := art.minify(); err != nil {
			return nil, err
		}
	}

	art.Stats = Stats{
		Glyphs:        len(res.Glyphs),
		Units:         len(entries),
		TotalDuration: timing.Total(entries),
		Strategy:      strategy,
		Bytes:         len(art.Combined),
	}
	logging.Logger().Debug("生成完成",
		"strategy", strategy,
		"mode", mode,
		"glyphs", art.Stats.Glyphs,
		"units", art.Stats.Units,
		"duration", art.Stats.TotalDuration,
		"bytes", art.Stats.Bytes,
	)
	return art, nil
}

func newRenderer(strategy renderer.Strategy, opts Options) renderer.Renderer {
	switch strategy {
	case renderer.SweepReveal:
		padding := -1.0
		if opts.RevealPadding != nil {
			padding = *opts.RevealPadding
		}
		return sweep.New(padding)
	default:
		m := opts.Measurer
		if m == nil {
			m = canvasrenderer.Measurer{}
		}
		return stroke.New(m, opts.DotThreshold)
	}
}

func (a *Artifact) minify() error {
	var err error
	if a.Combined, err = svg.Minify(svg.MediaSVG, a.Combined); err != nil {
		return err
	}
	if a.Geometry, err = svg.Minify(svg.MediaSVG, a.Geometry); err != nil {
		return err
	}
	if a.Style, err = svg.Minify(svg.MediaCSS, a.Style); err != nil {
		return err
	}
	return nil
}
