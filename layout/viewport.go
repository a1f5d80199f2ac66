package layout

import (
	"math"

	"github.com/ByLCY/quill/internal/logging"
)

const (
	viewportPadding   = 10.0
	minViewportWidth  = 100.0
	minViewportHeight = 40.0
)

// ComputeViewport 取所有有效包围盒的并集，四周各扩展 10 个单位，
// 宽高分别不小于 100 与 40。
func ComputeViewport(res *Result) Viewport {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	if res != nil {
		for _, g := range res.Glyphs {
			if !g.Box.Valid() {
				continue
			}
			minX = math.Min(minX, g.Box.X1)
			minY = math.Min(minY, g.Box.Y1)
			maxX = math.Max(maxX, g.Box.X2)
			maxY = math.Max(maxY, g.Box.Y2)
		}
	}
	if math.IsInf(minX, 1) {
		logging.Logger().Warn("没有有效的字形包围盒，使用最小视口")
		return Viewport{Width: minViewportWidth, Height: minViewportHeight}
	}

	minX -= viewportPadding
	minY -= viewportPadding
	maxX += viewportPadding
	maxY += viewportPadding
	return Viewport{
		MinX:   minX,
		MinY:   minY,
		Width:  math.Max(maxX-minX, minViewportWidth),
		Height: math.Max(maxY-minY, minViewportHeight),
	}
}
