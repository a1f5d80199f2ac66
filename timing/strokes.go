package timing

import (
	"cmp"
	"slices"
)

// DefaultDotThreshold：长度低于最长轮廓该比例的子轮廓视为“点”（i 的点、重音等）。
// 该值凭观感调出，保留为可覆盖的常量。
const DefaultDotThreshold = 0.2

// StrokeParams 控制单个字母内部的笔画时间安排。
type StrokeParams struct {
	DrawSpeed           float64 // 每秒绘制的长度
	FillSpeedMultiplier float64 // 点的绘制速度相对 DrawSpeed 的倍数
	DotThreshold        float64 // 0 表示使用 DefaultDotThreshold
}

// Stroke 是字母内一段子轮廓的安排，Offset 相对字母的基准延迟。
type Stroke struct {
	Index    int // 在原始子轮廓列表中的下标
	Length   float64
	Kind     Kind
	Offset   float64
	Duration float64
}

// LetterPlan 为一个字母的笔画计划，Strokes 按长度降序排列，即绘制与叠放顺序。
type LetterPlan struct {
	Strokes      []Stroke
	MainLength   float64 // 主笔画总长度
	MainDuration float64 // 主笔画总时长，也是 sequential 下字母的推进量
}

// PlanLetter 对子轮廓按长度降序分类：低于阈值的是点，其余是主笔画。
// 主笔画从 0 开始首尾相接；所有点在最后一笔主笔画结束时同时开始，
// 共用时长 MainLength/(DrawSpeed*FillSpeedMultiplier)。
func PlanLetter(lengths []float64, p StrokeParams) LetterPlan {
	threshold := p.DotThreshold
	if threshold <= 0 {
		threshold = DefaultDotThreshold
	}

	order := make([]int, len(lengths))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(lengths[b], lengths[a])
	})

	var plan LetterPlan
	if len(order) == 0 {
		return plan
	}
	cut := threshold * lengths[order[0]]

	offset := 0.0
	var dots []int
	for _, idx := range order {
		l := lengths[idx]
		if l < cut {
			dots = append(dots, idx)
			continue
		}
		d := l / p.DrawSpeed
		plan.Strokes = append(plan.Strokes, Stroke{Index: idx, Length: l, Kind: KindMain, Offset: offset, Duration: d})
		offset += d
		plan.MainLength += l
	}
	plan.MainDuration = offset

	if len(dots) > 0 {
		dotDuration := plan.MainLength / (p.DrawSpeed * p.FillSpeedMultiplier)
		for _, idx := range dots {
			plan.Strokes = append(plan.Strokes, Stroke{
				Index:    idx,
				Length:   lengths[idx],
				Kind:     KindDot,
				Offset:   plan.MainDuration,
				Duration: dotDuration,
			})
		}
	}
	return plan
}
