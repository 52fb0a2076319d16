// sim/metrics_utils.go
package sim

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SeekProfile describes the distribution of individual seek distances in a sequence.
// It complements Metrics for reports; all fields are zero when there are no seeks.
type SeekProfile struct {
	MinSeek    int     `json:"min_seek" yaml:"min_seek"`
	MaxSeek    int     `json:"max_seek" yaml:"max_seek"`
	MeanSeek   float64 `json:"mean_seek" yaml:"mean_seek"`
	StdDevSeek float64 `json:"stddev_seek" yaml:"stddev_seek"`
	Reversals  int     `json:"reversals" yaml:"reversals"` // sweep direction changes, ignoring zero-length seeks
}

// SeekDistances returns |seq[i]-seq[i-1]| for every step of seq.
func SeekDistances(seq Sequence) []int {
	if len(seq) < 2 {
		return []int{}
	}
	out := make([]int, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		out[i-1] = absDiff(seq[i], seq[i-1])
	}
	return out
}

// ComputeSeekProfile summarizes the seek distances of seq.
// StdDevSeek is the population standard deviation.
func ComputeSeekProfile(seq Sequence) SeekProfile {
	dists := SeekDistances(seq)
	if len(dists) == 0 {
		return SeekProfile{}
	}

	p := SeekProfile{MinSeek: dists[0], MaxSeek: dists[0]}
	xs := make([]float64, len(dists))
	for i, d := range dists {
		xs[i] = float64(d)
		p.MinSeek = min(p.MinSeek, d)
		p.MaxSeek = max(p.MaxSeek, d)
	}
	mean, variance := stat.PopMeanVariance(xs, nil)
	p.MeanSeek = mean
	p.StdDevSeek = math.Sqrt(variance)
	p.Reversals = countReversals(seq)
	return p
}

// countReversals counts sign changes of the movement direction.
func countReversals(seq Sequence) int {
	reversals := 0
	dir := 0
	for i := 1; i < len(seq); i++ {
		step := seq[i] - seq[i-1]
		if step == 0 {
			continue
		}
		d := 1
		if step < 0 {
			d = -1
		}
		if dir != 0 && d != dir {
			reversals++
		}
		dir = d
	}
	return reversals
}
