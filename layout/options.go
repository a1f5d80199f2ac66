package layout

import "github.com/tdewolff/canvas"

// BuildOptions 配置排版阶段所需的依赖与参数。
type BuildOptions struct {
	Font          Font
	FontSize      float64 // 像素
	LetterSpacing float64 // 像素，可为负
}

// Font 由外部字体解码服务提供，排版期间只读。
type Font interface {
	UnitsPerEm() float64
	Ascender() float64
	Descender() float64
	// GlyphFor 查找字符对应的字形；字体不包含该字符时返回 false。
	GlyphFor(r rune) (Glyph, bool)
}

// Glyph 描述单个字形。
type Glyph interface {
	// AdvanceWidth 以字体单位返回步进宽度，未知时为 0。
	AdvanceWidth() float64
	// Path 返回缩放到 fontSize 并定位在 (x, baseline) 的轮廓，y 轴向下。
	// 没有可绘制轮廓时返回 nil 或空路径。
	Path(x, baseline, fontSize float64) *canvas.Path
}

// LengthMeasurer 计算一段轮廓描述的真实弧长。
type LengthMeasurer interface {
	Measure(pathData string) (float64, error)
}
