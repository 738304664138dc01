package fsrs

import "testing"

func TestPreviewAll_OrderAndMonotonicity(t *testing.T) {
	configs := []Params{
		{},
		{Version: V6},
		{LapseMinIntervalDays: 5},
		{MaxIntervalDays: 3}, // degenerate cap forces the bump path
		{RequestedRetention: 0.99},
	}
	states := []MemoryState{
		{}, // first review
		{Difficulty: 5, Stability: 10},
		{Difficulty: 10, Stability: 0.1},
	}

	for _, p := range configs {
		for _, st := range states {
			for _, elapsed := range []int{0, 1, 10, 365} {
				out := PreviewAll(p, st, elapsed)

				for i, g := range Grades {
					if out[i].Grade != g {
						t.Fatalf("entry %d: grade = %d, want %d", i, out[i].Grade, g)
					}
				}
				for i := 1; i < len(out); i++ {
					if out[i].ScheduledDays <= out[i-1].ScheduledDays {
						t.Fatalf("days not strictly increasing (p=%+v st=%+v t=%d): %d then %d",
							p, st, elapsed, out[i-1].ScheduledDays, out[i].ScheduledDays)
					}
				}
			}
		}
	}
}

func TestPreviewAll_MatchesNextState(t *testing.T) {
	p := DefaultParams()
	st := MemoryState{Difficulty: 5, Stability: 10}

	out := PreviewAll(p, st, 10)
	for i, g := range Grades {
		upd := NextState(p, st, g, 10)
		if out[i].State != upd.State {
			t.Errorf("grade %d: state %+v, want %+v", g, out[i].State, upd.State)
		}
		if out[i].Interval != upd.Interval {
			t.Errorf("grade %d: interval %d, want %d", g, out[i].Interval, upd.Interval)
		}
	}
}

func TestPreviewAll_DoesNotMutateInput(t *testing.T) {
	st := MemoryState{Difficulty: 5, Stability: 10}
	before := st

	PreviewAll(DefaultParams(), st, 10)
	if st != before {
		t.Errorf("input state mutated: %+v -> %+v", before, st)
	}
}

func TestPreviewAll_BumpIsNotReCapped(t *testing.T) {
	// With a 3-day cap every raw entry hits 3; the bump pass must push
	// later grades past the cap rather than collapse them back onto it.
	p := Params{MaxIntervalDays: 3}
	out := PreviewAll(p, MemoryState{Difficulty: 5, Stability: 100}, 100)

	// Hard, Good and Easy all hit the 3-day cap raw; Good and Easy are
	// bumped to 4 and 5.
	want := [4]int{0, 3, 4, 5}
	for i := range out {
		if out[i].ScheduledDays != want[i] {
			t.Errorf("entry %d: days = %d, want %d", i, out[i].ScheduledDays, want[i])
		}
	}
}
