package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/quill/layout"
)

// PreviewStyle 描述静帧的绘制方式，对应动画结束时的状态。
type PreviewStyle struct {
	Color       string
	StrokeWidth float64 // 像素
	Filled      bool    // 扫描揭示为填充，描边动画为轮廓线
}

// RenderPDF 将动画的最终画面绘制为单页 PDF，页面尺寸等于视口（px 换算为 mm）。
func RenderPDF(res *layout.Result, vp layout.Viewport, style PreviewStyle) ([]byte, error) {
	if res == nil || len(res.Glyphs) == 0 {
		return nil, fmt.Errorf("缺少可绘制的字形")
	}
	width := layout.Length{Value: vp.Width, Unit: layout.UnitPX}.ToMM()
	height := layout.Length{Value: vp.Height, Unit: layout.UnitPX}.ToMM()

	var buf bytes.Buffer
	writer := pdf.New(&buf, width, height, nil)
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 与 SVG 一致，左上角为原点、y 轴向下

	col := parseColor(style.Color)
	if style.Filled {
		ctx.SetFillColor(col)
		ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	} else {
		ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
		ctx.SetStrokeColor(col)
		ctx.SetStrokeWidth(style.StrokeWidth * layout.PxToMm)
		ctx.SetStrokeCapper(canvas.RoundCap)
		ctx.SetStrokeJoiner(canvas.RoundJoin)
	}

	m := canvas.Identity.Scale(layout.PxToMm, layout.PxToMm).Translate(-vp.MinX, -vp.MinY)
	for _, g := range res.Glyphs {
		outline := g.Outline()
		if outline == nil || outline.Empty() {
			continue
		}
		ctx.DrawPath(0, 0, outline.Copy().Transform(m))
	}
	c.RenderTo(writer)

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func parseColor(s string) color.Color {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return canvas.Hex(s)
	}
	return canvas.Black
}
