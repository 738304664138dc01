package fsrs

// PreviewEntry is one non-mutating outcome in a four-grade preview.
type PreviewEntry struct {
	Grade         Grade
	State         MemoryState
	ScheduledDays int
	Interval      int // unfuzzed interval before floors
}

// PreviewAll evaluates all four grades against the same state without
// fuzz and without mutating anything. Entries are ordered
// Again, Hard, Good, Easy, and scheduledDays is forced to be strictly
// increasing across that order: whenever an entry's days would not
// exceed the previous entry's, it is bumped to previous+1. The raw
// per-grade math does not guarantee this ordering for arbitrary weight
// sets, but the UI relies on it.
func PreviewAll(p Params, state MemoryState, elapsedDays int) [4]PreviewEntry {
	p = p.Resolve()

	var out [4]PreviewEntry
	for i, g := range Grades {
		upd := NextState(p, state, g, elapsedDays)
		out[i] = PreviewEntry{
			Grade:         g,
			State:         upd.State,
			ScheduledDays: scheduledDays(p, g, upd.Interval),
			Interval:      upd.Interval,
		}
	}

	for i := 1; i < len(out); i++ {
		if out[i].ScheduledDays <= out[i-1].ScheduledDays {
			out[i].ScheduledDays = out[i-1].ScheduledDays + 1
		}
	}

	return out
}
