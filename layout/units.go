package layout

import (
	"strconv"
	"strings"
)

// 排版与动画统一使用 CSS 像素（px）；这里提供与印刷单位之间的换算，
// 供预设文件解析与 PDF 静帧预览使用。

// Unit 表示长度的原始单位。
type Unit int

const (
	UnitNone Unit = iota // 无单位，按像素处理
	UnitPX
	UnitPT
	UnitMM
	UnitIN
)

// 1in = 96px = 72pt = 25.4mm
const (
	PxToMm = 25.4 / 96
	MmToPx = 96 / 25.4
	PtToPx = 96.0 / 72
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitPX:
		return "px"
	case UnitPT:
		return "pt"
	case UnitMM:
		return "mm"
	case UnitIN:
		return "in"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// ToPX 将长度换算为像素。
func (l Length) ToPX() float64 {
	switch l.Unit {
	case UnitPT:
		return l.Value * PtToPx
	case UnitMM:
		return l.Value * MmToPx
	case UnitIN:
		return l.Value * 96
	default:
		return l.Value
	}
}

// ToMM 将长度换算为毫米。
func (l Length) ToMM() float64 { return l.ToPX() * PxToMm }

// ParseLength 解析带单位的长度字符串，例如 "12pt"、"-1.5px"、"3mm"、"120"。
func ParseLength(value string) (Length, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, false
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"px", UnitPX}, {"pt", UnitPT}, {"mm", UnitMM}, {"in", UnitIN}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, false
	}
	return Length{Value: f, Unit: unit}, true
}
