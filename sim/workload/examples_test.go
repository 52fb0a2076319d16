package workload

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disk-sim/disk-sim/sim"
)

func loadExample(t *testing.T, name string) (*Scenario, sim.DiskInput) {
	t.Helper()
	s, err := LoadScenario(filepath.Join("..", "..", "examples", name))
	require.NoError(t, err, "failed to load %s", name)
	require.NoError(t, s.Validate())
	in, err := s.Resolve()
	require.NoError(t, err)
	require.NoError(t, in.Validate())
	return s, in
}

func TestExampleScenarios_Textbook(t *testing.T) {
	// GIVEN the textbook example
	s, in := loadExample(t, "textbook.yaml")

	// WHEN every listed policy is compared
	c, err := sim.Compare(s.Policies, in, s.Options())
	require.NoError(t, err)

	// THEN SSTF moves the head least
	best, ok := c.Best()
	require.True(t, ok)
	assert.Equal(t, sim.PolicySSTF, best.Policy)
	assert.Equal(t, 236, best.Metrics.TotalMovement)
}

func TestExampleScenarios_LookVsScan(t *testing.T) {
	s, in := loadExample(t, "look-vs-scan.yaml")
	assert.False(t, s.Options().IncludeBoundaryStops)

	c, err := sim.Compare(s.Policies, in, s.Options())
	require.NoError(t, err)

	scan, _ := c.Result(sim.PolicySCAN)
	look, _ := c.Result(sim.PolicyLOOK)
	assert.Equal(t, look.Sequence, scan.Sequence)
	cscan, _ := c.Result(sim.PolicyCSCAN)
	clook, _ := c.Result(sim.PolicyCLOOK)
	assert.Equal(t, clook.Sequence, cscan.Sequence)
}

func TestExampleScenarios_Random(t *testing.T) {
	_, in := loadExample(t, "random.yaml")
	_, again := loadExample(t, "random.yaml")

	assert.Equal(t, 500, in.DiskSize)
	assert.Len(t, in.Requests, 20)
	assert.Equal(t, in, again)
}
