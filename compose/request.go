package compose

import (
	"math"
	"strings"

	"github.com/ByLCY/quill/renderer"
	"github.com/ByLCY/quill/timing"
)

// 请求参数的默认值，与界面上的初始滑块位置一致。
const (
	DefaultFontSize            = 120.0
	DefaultStrokeWidth         = 2.0
	DefaultDrawSpeed           = 400.0 // 每秒绘制的长度（px）
	DefaultFillSpeedMultiplier = 2.0   // 点的绘制速度倍数
	DefaultInterLetterDelay    = 0.12  // 秒
	DefaultColor               = "#ffffff"
)

// Request 是一次生成请求，值类型、不可变，生成函数不保留任何请求状态。
type Request struct {
	Text                string            `json:"text"`
	FontSize            float64           `json:"fontSize"`
	LetterSpacing       float64           `json:"letterSpacing"`
	StrokeWidth         float64           `json:"strokeWidth"`
	DrawSpeed           float64           `json:"drawSpeed"`
	FillSpeedMultiplier float64           `json:"fillSpeedMultiplier"`
	InterLetterDelay    float64           `json:"interLetterDelay"`
	TimingMode          timing.Mode       `json:"timingMode"`
	Strategy            renderer.Strategy `json:"strategy"`
	Color               string            `json:"color"`
	Easing              string            `json:"easing,omitempty"`
}

// DefaultRequest 返回填好默认值的请求。
func DefaultRequest(text string) Request {
	return Request{
		Text:                text,
		FontSize:            DefaultFontSize,
		StrokeWidth:         DefaultStrokeWidth,
		DrawSpeed:           DefaultDrawSpeed,
		FillSpeedMultiplier: DefaultFillSpeedMultiplier,
		InterLetterDelay:    DefaultInterLetterDelay,
		TimingMode:          timing.Stagger,
		Strategy:            renderer.StrokeDraw,
		Color:               DefaultColor,
	}
}

func (r Request) validate() error {
	checks := []struct {
		field    string
		value    float64
		positive bool
	}{
		{"fontSize", r.FontSize, true},
		{"letterSpacing", r.LetterSpacing, false},
		{"strokeWidth", r.StrokeWidth, false},
		{"drawSpeed", r.DrawSpeed, true},
		{"fillSpeedMultiplier", r.FillSpeedMultiplier, true},
		{"interLetterDelay", r.InterLetterDelay, false},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return &InvalidParameterError{Field: c.field, Value: c.value, Reason: "必须是有限数值"}
		}
		if c.positive && c.value <= 0 {
			return &InvalidParameterError{Field: c.field, Value: c.value, Reason: "必须为正数"}
		}
	}
	if r.StrokeWidth < 0 {
		return &InvalidParameterError{Field: "strokeWidth", Value: r.StrokeWidth, Reason: "不能为负数"}
	}
	if r.InterLetterDelay < 0 {
		return &InvalidParameterError{Field: "interLetterDelay", Value: r.InterLetterDelay, Reason: "不能为负数"}
	}
	if _, err := timing.ParseMode(string(r.TimingMode)); err != nil {
		return err
	}
	if _, err := renderer.ParseStrategy(string(r.Strategy)); err != nil {
		return err
	}
	if strings.ContainsAny(r.Color, "<>&\"") {
		return &InvalidParameterError{Field: "color", Value: r.Color, Reason: "包含非法字符"}
	}
	if strings.ContainsAny(r.Easing, "<>&;{}") {
		return &InvalidParameterError{Field: "easing", Value: r.Easing, Reason: "包含非法字符"}
	}
	return nil
}
