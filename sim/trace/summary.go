package trace

// ReplaySummary aggregates statistics from a Replay.
type ReplaySummary struct {
	TotalSteps      int
	TotalMovement   int
	LongestSeek     int
	LongestSeekStep int // first step with the longest seek; 0 when there are no steps
	Reversals       int
	LowestTrack     int
	HighestTrack    int
	Visits          map[int]int // track → number of times the arm stopped there (head included)
}

// Summarize computes aggregate statistics from a Replay.
// Safe for nil or empty replays (returns zero-value fields).
func Summarize(r *Replay) *ReplaySummary {
	summary := &ReplaySummary{
		Visits: make(map[int]int),
	}
	if r == nil || len(r.tracks) == 0 {
		return summary
	}

	summary.LowestTrack, summary.HighestTrack = r.Head, r.Head
	summary.Visits[r.Head]++
	for _, s := range r.Steps {
		summary.Visits[s.To]++
		summary.LowestTrack = min(summary.LowestTrack, s.To)
		summary.HighestTrack = max(summary.HighestTrack, s.To)
		if s.Distance > summary.LongestSeek {
			summary.LongestSeek = s.Distance
			summary.LongestSeekStep = s.Step
		}
		if s.Reversal {
			summary.Reversals++
		}
	}

	summary.TotalSteps = len(r.Steps)
	if summary.TotalSteps > 0 {
		summary.TotalMovement = r.Steps[summary.TotalSteps-1].Cumulative
	}
	return summary
}
