package quiz

import "testing"

func TestClassifyMajority(t *testing.T) {
	cases := []struct {
		name    string
		answers []Label
		want    Label
	}{
		{
			name:    "clear majority",
			answers: []Label{LabelB, LabelB, LabelB, LabelB, LabelB, LabelA, LabelC, LabelA},
			want:    LabelB,
		},
		{
			name:    "all same",
			answers: []Label{LabelC, LabelC, LabelC, LabelC, LabelC, LabelC, LabelC, LabelC},
			want:    LabelC,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.answers); got != tc.want {
				t.Fatalf("Classify(%v) = %s, want %s", tc.answers, got, tc.want)
			}
		})
	}
}

func TestClassifyTieBreak(t *testing.T) {
	// Ties resolve in priority order A, B, C.
	cases := []struct {
		name    string
		answers []Label
		want    Label
	}{
		{
			name:    "three way tie falls to A",
			answers: []Label{LabelA, LabelA, LabelA, LabelB, LabelB, LabelB, LabelC, LabelC},
			want:    LabelA,
		},
		{
			name:    "B and C tied, A loses count but B wins priority",
			answers: []Label{LabelB, LabelB, LabelB, LabelB, LabelA, LabelA, LabelA, LabelC},
			want:    LabelB,
		},
		{
			name:    "B and C tied without A",
			answers: []Label{LabelB, LabelB, LabelB, LabelB, LabelC, LabelC, LabelC, LabelC},
			want:    LabelB,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.answers); got != tc.want {
				t.Fatalf("Classify(%v) = %s, want %s", tc.answers, got, tc.want)
			}
		})
	}
}

func TestQuestionStateRoundTrip(t *testing.T) {
	for n := 1; n <= QuestionCount; n++ {
		st, ok := QuestionState(n)
		if !ok {
			t.Fatalf("QuestionState(%d) not ok", n)
		}
		back, ok := QuestionNumber(st)
		if !ok || back != n {
			t.Fatalf("QuestionNumber(%s) = %d, %v; want %d", st, back, ok, n)
		}
	}
	if _, ok := QuestionState(0); ok {
		t.Fatal("QuestionState(0) should be rejected")
	}
	if _, ok := QuestionState(QuestionCount + 1); ok {
		t.Fatal("QuestionState above range should be rejected")
	}
	if _, ok := QuestionNumber(StateSubscription); ok {
		t.Fatal("subscription state is not a question")
	}
}

func TestParseLabel(t *testing.T) {
	for _, l := range Labels {
		got, ok := ParseLabel(string(l))
		if !ok || got != l {
			t.Fatalf("ParseLabel(%q) = %s, %v", l, got, ok)
		}
	}
	for _, raw := range []string{"", "D", "a", "AB"} {
		if _, ok := ParseLabel(raw); ok {
			t.Fatalf("ParseLabel(%q) should fail", raw)
		}
	}
}
