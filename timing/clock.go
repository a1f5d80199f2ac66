// Package timing 将有序的动画单元转换为绝对的开始时间与持续时间。
//
// 两种错开策略：
//   - stagger：第 i 个单元在 i*interLetterDelay 开始，与持续时间无关，单元之间可能重叠或留空；
//   - sequential：第 i 个单元在之前所有单元的推进量之和处开始，不使用字间延迟。
package timing

import (
	"fmt"
	"strings"
)

// Mode 为时间错开策略。
type Mode string

const (
	Stagger    Mode = "stagger"
	Sequential Mode = "sequential"
)

// ParseMode 解析时间策略名称，空字符串视为 stagger。
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Stagger:
		return Stagger, nil
	case Sequential:
		return Sequential, nil
	default:
		return "", fmt.Errorf("timing: 未知的时间策略 %q", s)
	}
}

// Entry 是一个动画单元的时间安排（秒）。
type Entry struct {
	Target   string  `json:"target"`
	Kind     Kind    `json:"kind"`
	Duration float64 `json:"duration"`
	Delay    float64 `json:"delay"`
}

// End 返回单元结束时刻。
func (e Entry) End() float64 { return e.Delay + e.Duration }

// Kind 区分动画单元的类别。
type Kind string

const (
	KindLetter Kind = "letter" // 扫描揭示中的整个字母
	KindMain   Kind = "main"   // 描边中的主笔画
	KindDot    Kind = "dot"    // 描边中的点与附加符号
)

// Clock 按策略依次给出字母级的基准延迟。
type Clock struct {
	mode  Mode
	delay float64
	index int
	acc   float64
}

// NewClock 创建时钟；interLetterDelay 只在 stagger 下生效。
func NewClock(mode Mode, interLetterDelay float64) *Clock {
	return &Clock{mode: mode, delay: interLetterDelay}
}

// Next 返回当前单元的开始延迟，并以 advance（该单元在 sequential 下占用的时长）推进时钟。
func (c *Clock) Next(advance float64) float64 {
	var start float64
	switch c.mode {
	case Sequential:
		start = c.acc
		c.acc += advance
	default:
		start = float64(c.index) * c.delay
	}
	c.index++
	if start < 0 {
		start = 0
	}
	return start
}

// Total 返回所有单元中最晚的结束时刻。
func Total(entries []Entry) float64 {
	total := 0.0
	for _, e := range entries {
		if end := e.End(); end > total {
			total = end
		}
	}
	return total
}
