package trace

import "slices"

// Replay is the precomputed frame-by-frame view of one sequence.
// It is immutable once built; display speed is the caller's concern.
type Replay struct {
	Label string
	Head  int
	Steps []StepRecord

	tracks []int
}

// NewReplay builds the step records for tracks, whose first element is the head position.
// An empty slice yields an empty replay with Head 0.
func NewReplay(label string, tracks []int) *Replay {
	r := &Replay{
		Label:  label,
		Steps:  make([]StepRecord, 0, max(len(tracks)-1, 0)),
		tracks: slices.Clone(tracks),
	}
	if len(tracks) == 0 {
		return r
	}
	r.Head = tracks[0]

	cumulative := 0
	var last Direction
	for i := 1; i < len(tracks); i++ {
		from, to := tracks[i-1], tracks[i]
		rec := StepRecord{Step: i, From: from, To: to}
		switch {
		case to > from:
			rec.Direction, rec.Distance = DirectionUp, to-from
		case to < from:
			rec.Direction, rec.Distance = DirectionDown, from-to
		default:
			rec.Direction = DirectionStay
		}
		cumulative += rec.Distance
		rec.Cumulative = cumulative
		if rec.Direction != DirectionStay {
			rec.Reversal = last != "" && rec.Direction != last
			last = rec.Direction
		}
		r.Steps = append(r.Steps, rec)
	}
	return r
}

// Frames returns the number of display frames: the head alone plus one per step.
func (r *Replay) Frames() int {
	return len(r.tracks)
}

// Visible returns the tracks shown at frame (0-based), i.e. the sequence prefix
// ending at the arm's current position. frame is clamped to the last frame.
func (r *Replay) Visible(frame int) []int {
	if len(r.tracks) == 0 || frame < 0 {
		return []int{}
	}
	frame = min(frame, len(r.tracks)-1)
	return slices.Clone(r.tracks[:frame+1])
}

// MovementAt returns the cumulative head movement displayed at frame.
func (r *Replay) MovementAt(frame int) int {
	if frame <= 0 || len(r.Steps) == 0 {
		return 0
	}
	frame = min(frame, len(r.Steps))
	return r.Steps[frame-1].Cumulative
}
