// Package preset 读写预设文件，把命名预设转换为生成请求。
package preset

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ByLCY/quill/compose"
	"github.com/ByLCY/quill/dsl"
	"github.com/ByLCY/quill/layout"
	"github.com/ByLCY/quill/renderer"
	"github.com/ByLCY/quill/timing"
)

// 预设中可用的键。
const (
	KeyText          = "text"
	KeyFont          = "font"
	KeySize          = "size"
	KeyLetterSpacing = "letter-spacing"
	KeyStrokeWidth   = "stroke-width"
	KeySpeed         = "speed"
	KeyFillSpeed     = "fill-speed"
	KeyDelay         = "delay"
	KeyTiming        = "timing"
	KeyStrategy      = "strategy"
	KeyColor         = "color"
	KeyEasing        = "easing"
)

// Config 为解码后的预设。
type Config struct {
	Name    string
	Font    string // 字体来源，见 canvasrenderer.Loader.Load
	Request compose.Request
}

// Load 从文件读取名为 name 的预设；name 为空时取第一个。
// 预设中未出现的键保留 base 中的值。
func Load(path, name string, base compose.Request) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("无法打开预设文件 %s: %w", path, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return Config{}, fmt.Errorf("解析预设文件失败: %w", err)
	}
	p, ok := doc.Find(name)
	if !ok {
		if name == "" {
			return Config{}, fmt.Errorf("预设文件 %s 中没有预设", path)
		}
		return Config{}, fmt.Errorf("预设文件 %s 中没有名为 %q 的预设", path, name)
	}
	return Decode(p, base)
}

// Decode 把一个预设节点转换为请求，未出现的键保留 base 中的值。
func Decode(p *dsl.Preset, base compose.Request) (Config, error) {
	cfg := Config{Name: p.Name, Request: base}
	req := &cfg.Request
	for _, e := range p.Entries {
		raw := e.Value.Raw()
		var err error
		switch e.Key {
		case KeyText:
			req.Text = raw
		case KeyFont:
			cfg.Font = raw
		case KeySize:
			req.FontSize, err = parsePixels(raw)
		case KeyLetterSpacing:
			req.LetterSpacing, err = parsePixels(raw)
		case KeyStrokeWidth:
			req.StrokeWidth, err = parsePixels(raw)
		case KeySpeed:
			req.DrawSpeed, err = parseNumber(strings.TrimSuffix(raw, "px"))
		case KeyFillSpeed:
			req.FillSpeedMultiplier, err = parseNumber(strings.TrimSuffix(raw, "x"))
		case KeyDelay:
			req.InterLetterDelay, err = ParseSeconds(raw)
		case KeyTiming:
			var m timing.Mode
			m, err = timing.ParseMode(raw)
			req.TimingMode = m
		case KeyStrategy:
			var s renderer.Strategy
			s, err = renderer.ParseStrategy(raw)
			req.Strategy = s
		case KeyColor:
			req.Color = raw
		case KeyEasing:
			req.Easing = raw
		default:
			return Config{}, fmt.Errorf("%s: 预设 %s 中未知的键 %q", e.Pos, p.Name, e.Key)
		}
		if err != nil {
			return Config{}, fmt.Errorf("%s: 预设 %s 的 %s 无效: %w", e.Pos, p.Name, e.Key, err)
		}
	}
	return cfg, nil
}

// ParseSeconds 解析时长，支持 "120ms"、"0.12s" 与无单位秒数。
func ParseSeconds(raw string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.HasSuffix(v, "ms"):
		f, err := parseNumber(strings.TrimSuffix(v, "ms"))
		return f / 1000, err
	case strings.HasSuffix(v, "s"):
		return parseNumber(strings.TrimSuffix(v, "s"))
	default:
		return parseNumber(v)
	}
}

func parsePixels(raw string) (float64, error) {
	l, ok := layout.ParseLength(raw)
	if !ok {
		return 0, fmt.Errorf("无法解析长度 %q", raw)
	}
	return l.ToPX(), nil
}

func parseNumber(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("无法解析数值 %q", raw)
	}
	return f, nil
}

var (
	identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
	colorPattern = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)
)

// Encode 把请求写成预设文本，Load 读回后得到相同的请求。
func Encode(name, font string, req compose.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "preset %s {\n", name)
	line := func(key, value string) {
		fmt.Fprintf(&b, "  %s: %s\n", key, value)
	}
	line(KeyText, strconv.Quote(req.Text))
	if font != "" {
		line(KeyFont, strconv.Quote(font))
	}
	line(KeySize, number(req.FontSize)+"px")
	line(KeyLetterSpacing, number(req.LetterSpacing)+"px")
	line(KeyStrokeWidth, number(req.StrokeWidth)+"px")
	line(KeySpeed, number(req.DrawSpeed))
	line(KeyFillSpeed, number(req.FillSpeedMultiplier)+"x")
	line(KeyDelay, number(req.InterLetterDelay)+"s")
	if req.TimingMode != "" {
		line(KeyTiming, literal(string(req.TimingMode)))
	}
	if req.Strategy != "" {
		line(KeyStrategy, literal(string(req.Strategy)))
	}
	line(KeyColor, literal(req.Color))
	if req.Easing != "" {
		line(KeyEasing, literal(req.Easing))
	}
	b.WriteString("}\n")
	return b.String()
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// 颜色与标识符可以裸写，其余值加引号。
func literal(s string) string {
	if colorPattern.MatchString(s) || (identPattern.MatchString(s) && s != "preset") {
		return s
	}
	return strconv.Quote(s)
}
