// Derives seek metrics from a head-movement sequence.

package sim

// Sequence is the ordered list of tracks the arm visits, starting at the head position.
type Sequence []int

// Metrics aggregates the head movement of one sequence.
// Seek time is modeled as track distance, not physical time.
type Metrics struct {
	TotalMovement int     `json:"total_movement" yaml:"total_movement"` // sum of |seq[i]-seq[i-1]|
	AvgSeekTime   float64 `json:"avg_seek_time" yaml:"avg_seek_time"`   // TotalMovement / NumOperations
	NumOperations int     `json:"num_operations" yaml:"num_operations"` // len(seq)-1
}

// ComputeMetrics returns the movement metrics of seq.
// Sequences shorter than two stops have no seeks and yield all-zero metrics.
func ComputeMetrics(seq Sequence) Metrics {
	if len(seq) < 2 {
		return Metrics{}
	}
	total := 0
	for i := 1; i < len(seq); i++ {
		total += absDiff(seq[i], seq[i-1])
	}
	ops := len(seq) - 1
	return Metrics{
		TotalMovement: total,
		AvgSeekTime:   float64(total) / float64(ops),
		NumOperations: ops,
	}
}

// CumulativeMovement returns the head movement after the first steps seeks of seq.
// steps is clamped to [0, len(seq)-1].
func CumulativeMovement(seq Sequence, steps int) int {
	if steps > len(seq)-1 {
		steps = len(seq) - 1
	}
	total := 0
	for i := 1; i <= steps; i++ {
		total += absDiff(seq[i], seq[i-1])
	}
	return total
}

// PolicyResult pairs a policy with the sequence it produced and its metrics.
type PolicyResult struct {
	Policy   Policy   `json:"policy" yaml:"policy"`
	Sequence Sequence `json:"sequence" yaml:"sequence"`
	Metrics  Metrics  `json:"metrics" yaml:"metrics"`
}

// Best returns the result with the least total movement.
// Ties go to the earliest result, so callers must pass results in a stable order
// (the order the policies were requested). ok is false for an empty slice.
func Best(results []PolicyResult) (best PolicyResult, ok bool) {
	for i, r := range results {
		if i == 0 || r.Metrics.TotalMovement < best.Metrics.TotalMovement {
			best = r
		}
	}
	return best, len(results) > 0
}
