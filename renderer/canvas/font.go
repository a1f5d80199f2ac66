package canvasrenderer

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/font"

	"github.com/ByLCY/quill/fonts"
	"github.com/ByLCY/quill/internal/logging"
	"github.com/ByLCY/quill/layout"
)

// Font adapts a tdewolff/canvas font to layout.Font.
type Font struct {
	name      string
	sfnt      *canvas.Font
	upm       float64
	ascender  float64
	descender float64
}

var _ layout.Font = (*Font)(nil)

// LoadFont 解析 TTF/OTF/WOFF 字体数据。
func LoadFont(name string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("字体 %s 数据为空", name)
	}
	f, err := canvas.LoadFont(data, 0, canvas.FontRegular)
	if err != nil {
		return nil, fmt.Errorf("解析字体 %s 失败: %w", name, err)
	}
	if f.Head == nil || f.Head.UnitsPerEm == 0 {
		return nil, fmt.Errorf("字体 %s 缺少 unitsPerEm", name)
	}
	out := &Font{
		name: name,
		sfnt: f,
		upm:  float64(f.Head.UnitsPerEm),
	}
	if f.Hhea != nil {
		out.ascender = float64(f.Hhea.Ascender)
		out.descender = float64(f.Hhea.Descender)
	} else {
		out.ascender = out.upm * 0.8
		out.descender = -out.upm * 0.2
	}
	return out, nil
}

func (f *Font) UnitsPerEm() float64 { return f.upm }
func (f *Font) Ascender() float64   { return f.ascender }
func (f *Font) Descender() float64  { return f.descender }

// GlyphFor 查找字符的字形；映射到 .notdef（glyph 0）视为缺字。
func (f *Font) GlyphFor(r rune) (layout.Glyph, bool) {
	id := f.sfnt.GlyphIndex(r)
	if id == 0 {
		return nil, false
	}
	return glyph{font: f, id: id}, true
}

type glyph struct {
	font *Font
	id   uint16
}

func (g glyph) AdvanceWidth() float64 {
	return float64(g.font.sfnt.GlyphAdvance(g.id))
}

// Path 以字体单位（y 轴向上）取出轮廓，再翻转到输出坐标并平移到 (x, baseline)。
func (g glyph) Path(x, baseline, fontSize float64) *canvas.Path {
	scale := fontSize / g.font.upm
	ppem := uint16(math.Max(1, math.Min(math.Round(fontSize), math.MaxUint16)))
	p := &canvas.Path{}
	if err := g.font.sfnt.GlyphPath(p, g.id, ppem, 0, 0, scale, font.NoHinting); err != nil {
		logging.Logger().Debug("读取字形轮廓失败", "font", g.font.name, "glyph", g.id, "error", err)
		return nil
	}
	if p.Empty() {
		return nil
	}
	return p.Transform(canvas.Identity.Translate(x, baseline).Scale(1, -1))
}

// Loader 按来源加载并缓存字体，可并发使用。
// 来源可以是内置字体 "embed:go-regular"，也可以是相对 baseDir 的文件路径。
type Loader struct {
	baseDir string

	mu    sync.Mutex
	cache map[string]*Font
}

// NewLoader creates a loader rooted at baseDir for resolving relative font paths.
func NewLoader(baseDir string) *Loader {
	return &Loader{baseDir: baseDir, cache: map[string]*Font{}}
}

// Load 返回 src 对应的字体，src 为空时使用内置默认字体。
func (l *Loader) Load(src string) (*Font, error) {
	if strings.TrimSpace(src) == "" {
		src = "embed:" + fonts.Default
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.cache[src]; ok {
		return f, nil
	}
	data, err := l.loadBytes(src)
	if err != nil {
		return nil, err
	}
	f, err := LoadFont(src, data)
	if err != nil {
		return nil, err
	}
	l.cache[src] = f
	return f, nil
}

func (l *Loader) loadBytes(src string) ([]byte, error) {
	if strings.HasPrefix(src, "embed:") || strings.HasPrefix(src, "builtin:") {
		return fonts.Load(strings.TrimPrefix(src, "builtin:"))
	}
	path := src
	if !filepath.IsAbs(path) && l.baseDir != "" {
		path = filepath.Join(l.baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体文件 %s 失败: %w", src, err)
	}
	return data, nil
}
