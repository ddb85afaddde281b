package timer

import "testing"

func TestPhaseIndexFor(t *testing.T) {
	cases := []struct {
		progress float64
		want     int
	}{
		{0, 0},
		{24.9, 0},
		{25, 1},
		{49.9, 1},
		{50, 2},
		{99.9, 3},
		{100, 3},
		{-1, 0},
	}
	for _, tc := range cases {
		if got := PhaseIndexFor(tc.progress); got != tc.want {
			t.Fatalf("PhaseIndexFor(%v) = %d, want %d", tc.progress, got, tc.want)
		}
	}
}

func TestActivePhaseOnlyDuringFocus(t *testing.T) {
	s := State{Mode: ModeFocus, FocusDuration: 100 * 60, BreakDuration: 600, Remaining: 50 * 60}
	idx, ok := s.ActivePhase()
	if !ok || idx != 2 {
		t.Fatalf("ActivePhase() = %d, %t; want 2, true", idx, ok)
	}
	s.Mode = ModeBreak
	s.Remaining = 0
	if _, ok := s.ActivePhase(); ok {
		t.Fatalf("expected no active phase during break")
	}
}

func TestProgressPercent(t *testing.T) {
	s := State{Mode: ModeFocus, FocusDuration: 200, Remaining: 150}
	if got := s.ProgressPercent(); got != 25 {
		t.Fatalf("ProgressPercent() = %v, want 25", got)
	}
	s.Remaining = 0
	if got := s.ProgressPercent(); got != 100 {
		t.Fatalf("ProgressPercent() = %v, want 100", got)
	}
	if got := (State{}).ProgressPercent(); got != 0 {
		t.Fatalf("zero state ProgressPercent() = %v, want 0", got)
	}
}

func TestPhasesCatalog(t *testing.T) {
	want := []string{"LEX", "PARSE", "OPT", "GEN"}
	for i, name := range want {
		if Phases[i].Name != name {
			t.Fatalf("Phases[%d].Name = %q, want %q", i, Phases[i].Name, name)
		}
		if Phases[i].Description == "" || Phases[i].FullName == "" {
			t.Fatalf("Phases[%d] missing labels", i)
		}
	}
}
