// Package trace provides step-by-step replay records of a head-movement sequence.
// This package has no dependencies on sim/; it works on plain track slices.
package trace

// Direction is the arm's movement direction during one step.
type Direction string

const (
	DirectionUp   Direction = "up"   // toward higher tracks
	DirectionDown Direction = "down" // toward track 0
	DirectionStay Direction = "stay" // zero-length seek
)

// StepRecord captures one seek of the arm.
type StepRecord struct {
	Step       int       `json:"step"` // 1-based
	From       int       `json:"from"`
	To         int       `json:"to"`
	Distance   int       `json:"distance"`
	Cumulative int       `json:"cumulative"` // head movement after this step
	Direction  Direction `json:"direction"`
	Reversal   bool      `json:"reversal"` // direction differs from the last non-stay step
}
