package timing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlanLetterClassifiesDots(t *testing.T) {
	// i：竖画 112，点 16，阈值 22.4
	plan := PlanLetter([]float64{112, 16}, StrokeParams{DrawSpeed: 400, FillSpeedMultiplier: 2})

	want := LetterPlan{
		Strokes: []Stroke{
			{Index: 0, Length: 112, Kind: KindMain, Offset: 0, Duration: 0.28},
			{Index: 1, Length: 16, Kind: KindDot, Offset: 0.28, Duration: 0.14},
		},
		MainLength:   112,
		MainDuration: 0.28,
	}
	if diff := cmp.Diff(want, plan, approx); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanLetterMainStrokesBackToBack(t *testing.T) {
	// 输入顺序与长度顺序不同，等长时保持原始顺序。
	lengths := []float64{80, 160, 160}
	plan := PlanLetter(lengths, StrokeParams{DrawSpeed: 400, FillSpeedMultiplier: 2})

	gotOrder := make([]int, len(plan.Strokes))
	for i, s := range plan.Strokes {
		gotOrder[i] = s.Index
		if s.Kind != KindMain {
			t.Fatalf("stroke %d should be main", s.Index)
		}
	}
	if diff := cmp.Diff([]int{1, 2, 0}, gotOrder); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	offset := 0.0
	sum := 0.0
	for _, s := range plan.Strokes {
		if diff := cmp.Diff(offset, s.Offset, approx); diff != "" {
			t.Fatalf("stroke %d offset mismatch:\n%s", s.Index, diff)
		}
		offset += s.Duration
		sum += s.Duration
	}
	if diff := cmp.Diff(400.0/400, sum, approx); diff != "" {
		t.Fatalf("main durations should sum to total/speed:\n%s", diff)
	}
	if diff := cmp.Diff(sum, plan.MainDuration, approx); diff != "" {
		t.Fatalf("MainDuration mismatch:\n%s", diff)
	}
}

func TestPlanLetterSharedDotSchedule(t *testing.T) {
	// 一个主笔画与两个附加符号（例如 ä 的两点）。
	plan := PlanLetter([]float64{10, 200, 12}, StrokeParams{DrawSpeed: 100, FillSpeedMultiplier: 4})
	var dots []Stroke
	for _, s := range plan.Strokes {
		if s.Kind == KindDot {
			dots = append(dots, s)
		}
	}
	if len(dots) != 2 {
		t.Fatalf("expected 2 dots, got %d", len(dots))
	}
	for _, d := range dots {
		if d.Offset != plan.MainDuration || d.Duration != 0.5 {
			t.Fatalf("dot %d should start at %g with duration 0.5, got %+v", d.Index, plan.MainDuration, d)
		}
	}
	// 叠放顺序：长的在前。
	if plan.Strokes[1].Index != 2 || plan.Strokes[2].Index != 0 {
		t.Fatalf("dots should be emitted longest first: %+v", plan.Strokes)
	}
}

func TestPlanLetterCustomThreshold(t *testing.T) {
	plan := PlanLetter([]float64{100, 40}, StrokeParams{DrawSpeed: 100, FillSpeedMultiplier: 1, DotThreshold: 0.5})
	if plan.Strokes[1].Kind != KindDot {
		t.Fatalf("40 < 0.5*100 should be a dot")
	}
	plan = PlanLetter([]float64{100, 40}, StrokeParams{DrawSpeed: 100, FillSpeedMultiplier: 1})
	if plan.Strokes[1].Kind != KindMain {
		t.Fatalf("40 >= 0.2*100 should be main with the default threshold")
	}
}

func TestPlanLetterEmpty(t *testing.T) {
	plan := PlanLetter(nil, StrokeParams{DrawSpeed: 100, FillSpeedMultiplier: 1})
	if len(plan.Strokes) != 0 || plan.MainDuration != 0 {
		t.Fatalf("empty letter should have empty plan: %+v", plan)
	}
}
