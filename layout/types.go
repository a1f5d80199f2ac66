package layout

import (
	"encoding/json"
	"math"

	"github.com/tdewolff/canvas"
)

// 该文件定义排版结果，供长度解析、时间调度、渲染与调试 JSON 共用。

// Result 保存一次生成请求排好的字形序列，按包围盒左边缘升序排列。
type Result struct {
	Glyphs   []GlyphRecord `json:"glyphs"`
	FontSize float64       `json:"fontSize"`
	Scale    float64       `json:"scale"`    // fontSize / unitsPerEm
	Baseline float64       `json:"baseline"` // ascender * scale
	Advance  float64       `json:"advance"`  // 排版结束时的光标位置
}

// GlyphRecord 表示一个已定位的字符。
// Contours 按轮廓数据中的出现顺序排列，拼接后即为完整轮廓；
// 渲染器如需重排应自行拷贝，不修改此处顺序。
type GlyphRecord struct {
	Char         string       `json:"char"`
	X            float64      `json:"x"` // 基线上的水平偏移
	Box          BoundingBox  `json:"box"`
	AdvanceWidth float64      `json:"advanceWidth"`
	PathData     string       `json:"pathData"`
	Contours     []SubContour `json:"contours"`

	outline *canvas.Path
}

// Outline 返回字形的几何路径（输出坐标系，y 轴向下）。
func (g *GlyphRecord) Outline() *canvas.Path {
	return g.outline
}

// SubContour 是字形中可独立闭合、独立动画的一段轮廓。
type SubContour struct {
	PathData string  `json:"pathData"`
	Length   float64 `json:"length"`
	Resolved bool    `json:"resolved"`
}

// BoundingBox 以输出坐标表示，(X1, Y1) 为左上角。
type BoundingBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Valid 报告包围盒是否可参与聚合计算（坐标有限且非反向）。
func (b BoundingBox) Valid() bool {
	for _, v := range [...]float64{b.X1, b.Y1, b.X2, b.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.X2 >= b.X1 && b.Y2 >= b.Y1
}

// MarshalJSON 对无效包围盒输出 null，避免 NaN 无法编码。
func (b BoundingBox) MarshalJSON() ([]byte, error) {
	if !b.Valid() {
		return []byte("null"), nil
	}
	type plain BoundingBox
	return json.Marshal(plain(b))
}

func (b BoundingBox) Width() float64  { return b.X2 - b.X1 }
func (b BoundingBox) Height() float64 { return b.Y2 - b.Y1 }

// Viewport 为最终图形的视口，每次生成只计算一次。
type Viewport struct {
	MinX   float64 `json:"minX"`
	MinY   float64 `json:"minY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
