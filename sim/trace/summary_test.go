package trace

import "testing"

func TestSummarize_NilAndEmpty_ZeroValues(t *testing.T) {
	for _, r := range []*Replay{nil, NewReplay("empty", nil)} {
		summary := Summarize(r)
		if summary.TotalSteps != 0 || summary.TotalMovement != 0 || summary.LongestSeek != 0 {
			t.Errorf("expected zero summary, got %+v", summary)
		}
		if len(summary.Visits) != 0 {
			t.Error("expected empty visit map")
		}
	}
}

func TestSummarize_ScanSequence(t *testing.T) {
	// GIVEN the SCAN sequence for [10, 20] from 15 on a 30-track disk
	r := NewReplay("SCAN", []int{15, 20, 29, 10, 0})

	// WHEN summarized
	summary := Summarize(r)

	// THEN 5+9+19+10 = 43 over 4 steps with one reversal at the top edge
	if summary.TotalSteps != 4 {
		t.Errorf("expected 4 steps, got %d", summary.TotalSteps)
	}
	if summary.TotalMovement != 43 {
		t.Errorf("expected movement 43, got %d", summary.TotalMovement)
	}
	if summary.LongestSeek != 19 || summary.LongestSeekStep != 3 {
		t.Errorf("expected longest seek 19 at step 3, got %d at %d", summary.LongestSeek, summary.LongestSeekStep)
	}
	if summary.Reversals != 1 {
		t.Errorf("expected 1 reversal, got %d", summary.Reversals)
	}
	if summary.LowestTrack != 0 || summary.HighestTrack != 29 {
		t.Errorf("expected span [0, 29], got [%d, %d]", summary.LowestTrack, summary.HighestTrack)
	}
}

func TestSummarize_VisitsCountRepeatedStops(t *testing.T) {
	// C-SCAN stops at track 0 twice
	summary := Summarize(NewReplay("C-SCAN", []int{15, 20, 29, 0, 0, 10}))

	if summary.Visits[0] != 2 {
		t.Errorf("expected 2 visits to track 0, got %d", summary.Visits[0])
	}
	if summary.Visits[15] != 1 {
		t.Errorf("expected the head position counted once, got %d", summary.Visits[15])
	}
	if summary.Reversals != 2 {
		t.Errorf("expected 2 reversals, got %d", summary.Reversals)
	}
}

func TestSummarize_LongestSeekTieKeepsFirstStep(t *testing.T) {
	summary := Summarize(NewReplay("tie", []int{10, 20, 10}))
	if summary.LongestSeekStep != 1 {
		t.Errorf("expected first longest seek at step 1, got %d", summary.LongestSeekStep)
	}
}
