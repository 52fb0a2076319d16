package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics_FCFSTextbookQueue(t *testing.T) {
	// GIVEN the FCFS sequence of the textbook queue
	seq := Sequence{53, 98, 183, 37, 122, 14, 124, 65, 67}

	// WHEN metrics are computed
	m := ComputeMetrics(seq)

	// THEN 45+85+146+85+108+110+59+2 = 640 over 8 seeks
	assert.Equal(t, 640, m.TotalMovement)
	assert.Equal(t, 8, m.NumOperations)
	assert.InDelta(t, 80.0, m.AvgSeekTime, 1e-9)
}

func TestComputeMetrics_DegenerateSequences(t *testing.T) {
	assert.Equal(t, Metrics{}, ComputeMetrics(nil))
	assert.Equal(t, Metrics{}, ComputeMetrics(Sequence{}))
	assert.Equal(t, Metrics{}, ComputeMetrics(Sequence{42}))
}

func TestComputeMetrics_RealDivision(t *testing.T) {
	m := ComputeMetrics(Sequence{0, 1, 3})
	assert.Equal(t, 3, m.TotalMovement)
	assert.InDelta(t, 1.5, m.AvgSeekTime, 1e-12)
}

func TestComputeMetrics_Pure(t *testing.T) {
	seq := Sequence{15, 20, 29, 10, 0}
	before := append(Sequence(nil), seq...)

	first := ComputeMetrics(seq)
	second := ComputeMetrics(seq)

	assert.Equal(t, first, second)
	assert.Equal(t, before, seq)
}

func TestComputeMetrics_AverageTimesOperationsIsTotal(t *testing.T) {
	for _, p := range AllPolicies {
		seq, err := Schedule(string(p), textbookQueue, 53, 200)
		assert.NoError(t, err)
		m := ComputeMetrics(seq)
		if m.NumOperations > 0 {
			assert.InDelta(t, float64(m.TotalMovement), m.AvgSeekTime*float64(m.NumOperations), 1e-9, "policy %s", p)
		}
	}
}

func TestCumulativeMovement(t *testing.T) {
	seq := Sequence{53, 98, 183, 37}
	assert.Equal(t, 0, CumulativeMovement(seq, 0))
	assert.Equal(t, 45, CumulativeMovement(seq, 1))
	assert.Equal(t, 130, CumulativeMovement(seq, 2))
	assert.Equal(t, 276, CumulativeMovement(seq, 3))
	assert.Equal(t, 276, CumulativeMovement(seq, 10), "steps beyond the end clamp")
	assert.Equal(t, 0, CumulativeMovement(Sequence{}, 3))
}

func TestBest_FirstMinimumWins(t *testing.T) {
	results := []PolicyResult{
		{Policy: PolicySCAN, Metrics: Metrics{TotalMovement: 43}},
		{Policy: PolicyLOOK, Metrics: Metrics{TotalMovement: 15}},
		{Policy: PolicyFCFS, Metrics: Metrics{TotalMovement: 15}},
	}

	best, ok := Best(results)

	assert.True(t, ok)
	assert.Equal(t, PolicyLOOK, best.Policy)
}

func TestBest_Empty(t *testing.T) {
	_, ok := Best(nil)
	assert.False(t, ok)
}
