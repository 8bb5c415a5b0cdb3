package nutrition

import "testing"

func TestEvaluateWithoutGoal(t *testing.T) {
	for _, total := range []float64{0, 12.5, 400} {
		got := Evaluate(total, nil)
		if got.Achieved || got.Percentage != 0 {
			t.Fatalf("total %v: expected zero evaluation, got %+v", total, got)
		}
	}
}

func TestEvaluateZeroGoalDoesNotDivide(t *testing.T) {
	got := Evaluate(50, &Goal{Protein: 0})
	if got.Achieved || got.Percentage != 0 {
		t.Fatalf("expected zero evaluation, got %+v", got)
	}
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		total    float64
		goal     float64
		achieved bool
		percent  float64
	}{
		{total: 40, goal: 40, achieved: true, percent: 100},
		{total: 33.33, goal: 40, achieved: false, percent: 83.3},
		{total: 150, goal: 120, achieved: true, percent: 125},
		{total: 0, goal: 120, achieved: false, percent: 0},
	}

	for _, tc := range cases {
		got := Evaluate(tc.total, &Goal{Protein: tc.goal})
		if got.Achieved != tc.achieved {
			t.Fatalf("%v/%v: expected achieved %v, got %v", tc.total, tc.goal, tc.achieved, got.Achieved)
		}
		if got.Percentage != tc.percent {
			t.Fatalf("%v/%v: expected %v%%, got %v", tc.total, tc.goal, tc.percent, got.Percentage)
		}
	}
}

func TestEvaluateIgnoresOptionalMacros(t *testing.T) {
	calories := 2200.0
	got := Evaluate(100, &Goal{Protein: 100, Calories: &calories})
	if !got.Achieved || got.Percentage != 100 {
		t.Fatalf("unexpected evaluation %+v", got)
	}
}
