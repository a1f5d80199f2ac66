package layout

import "github.com/tdewolff/canvas"

// SplitContours 在每个 MoveTo 处拆分轮廓，按出现顺序返回子轮廓。
// 带孔的字母、i 的点、重音符号等因此可以独立动画。
func SplitContours(p *canvas.Path) []SubContour {
	if p == nil || p.Empty() {
		return nil
	}
	parts := p.Split()
	contours := make([]SubContour, 0, len(parts))
	for _, part := range parts {
		if part == nil || part.Empty() {
			continue
		}
		contours = append(contours, SubContour{PathData: part.ToSVG()})
	}
	return contours
}
