package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_AllPolicies_PreservesRequestOrder(t *testing.T) {
	// GIVEN every policy requested in reverse order
	names := []string{"C-LOOK", "LOOK", "C-SCAN", "SCAN", "SSTF", "FCFS"}

	c, err := Compare(names, NewDiskInput(textbookQueue, 53, 200), DefaultSchedulerOptions())
	require.NoError(t, err)

	// THEN results follow the requested order
	require.Len(t, c.Results, 6)
	for i, name := range names {
		assert.Equal(t, Policy(name), c.Results[i].Policy)
	}

	// THEN SSTF has the least movement
	best, ok := c.Best()
	require.True(t, ok)
	assert.Equal(t, PolicySSTF, best.Policy)
	assert.Equal(t, 236, best.Metrics.TotalMovement)
}

func TestCompare_TieGoesToFirstRequested(t *testing.T) {
	in := NewDiskInput([]int{10, 20}, 15, 30)

	c, err := Compare([]string{"LOOK", "FCFS", "C-LOOK"}, in, DefaultSchedulerOptions())
	require.NoError(t, err)
	best, _ := c.Best()
	assert.Equal(t, PolicyLOOK, best.Policy)

	c, err = Compare([]string{"C-LOOK", "LOOK"}, in, DefaultSchedulerOptions())
	require.NoError(t, err)
	best, _ = c.Best()
	assert.Equal(t, PolicyCLOOK, best.Policy)
}

func TestCompare_Result(t *testing.T) {
	c, err := Compare([]string{"SCAN"}, NewDiskInput([]int{10, 20}, 15, 30), DefaultSchedulerOptions())
	require.NoError(t, err)

	r, ok := c.Result(PolicySCAN)
	require.True(t, ok)
	assert.Equal(t, Sequence{15, 20, 29, 10, 0}, r.Sequence)
	assert.Equal(t, 43, r.Metrics.TotalMovement)

	_, ok = c.Result(PolicyFCFS)
	assert.False(t, ok)
}

func TestCompare_FailsFastWithoutPartialResults(t *testing.T) {
	cases := []struct {
		name     string
		policies []string
		in       DiskInput
	}{
		{"unknown policy after valid ones", []string{"FCFS", "SSTF", "bogus"}, NewDiskInput([]int{1}, 0, 10)},
		{"duplicate policy", []string{"SCAN", "scan"}, NewDiskInput([]int{1}, 0, 10)},
		{"empty list", nil, NewDiskInput([]int{1}, 0, 10)},
		{"bad request", []string{"FCFS"}, NewDiskInput([]int{1, 10}, 0, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Compare(tc.policies, tc.in, DefaultSchedulerOptions())
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRun_SinglePolicy(t *testing.T) {
	r, err := Run("sstf", NewDiskInput(textbookQueue, 53, 200), DefaultSchedulerOptions())
	require.NoError(t, err)
	assert.Equal(t, PolicySSTF, r.Policy)
	assert.Equal(t, Metrics{TotalMovement: 236, AvgSeekTime: 29.5, NumOperations: 8}, r.Metrics)
}

func TestAllPolicyNames(t *testing.T) {
	assert.Equal(t, []string{"FCFS", "SSTF", "SCAN", "C-SCAN", "LOOK", "C-LOOK"}, AllPolicyNames())
}
