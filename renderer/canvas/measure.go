package canvasrenderer

import (
	"fmt"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/quill/layout"
)

// Measurer 使用 canvas 的路径几何计算真实弧长。
type Measurer struct{}

var _ layout.LengthMeasurer = Measurer{}

func (Measurer) Measure(pathData string) (float64, error) {
	p, err := canvas.ParseSVGPath(pathData)
	if err != nil {
		return 0, fmt.Errorf("解析路径失败: %w", err)
	}
	return p.Length(), nil
}
