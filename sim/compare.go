package sim

import (
	"github.com/sirupsen/logrus"
)

// Comparison holds the outcome of running several policies over one input.
// Results follow the order the policies were requested.
type Comparison struct {
	Input   DiskInput        `json:"input" yaml:"input"`
	Options SchedulerOptions `json:"options" yaml:"options"`
	Results []PolicyResult   `json:"results" yaml:"results"`
}

// Run schedules a single policy and computes its metrics.
func Run(policy string, in DiskInput, opts SchedulerOptions) (PolicyResult, error) {
	p, err := ParsePolicy(policy)
	if err != nil {
		return PolicyResult{}, err
	}
	seq, err := ScheduleWith(string(p), in, opts)
	if err != nil {
		return PolicyResult{}, err
	}
	return PolicyResult{Policy: p, Sequence: seq, Metrics: ComputeMetrics(seq)}, nil
}

// Compare runs every named policy over the same input.
// Policy names and the input are validated up front, so either every policy
// produces a result or none does.
func Compare(policies []string, in DiskInput, opts SchedulerOptions) (*Comparison, error) {
	parsed, err := ParsePolicies(policies)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	c := &Comparison{Input: in, Options: opts, Results: make([]PolicyResult, 0, len(parsed))}
	for _, p := range parsed {
		sched, err := NewScheduler(p, opts)
		if err != nil {
			return nil, err
		}
		seq := sched.Order(in)
		c.Results = append(c.Results, PolicyResult{Policy: p, Sequence: seq, Metrics: ComputeMetrics(seq)})
	}
	if best, ok := c.Best(); ok {
		logrus.Debugf("compared %d policies; best %s with movement %d", len(c.Results), best.Policy, best.Metrics.TotalMovement)
	}
	return c, nil
}

// Best returns the result with the least total movement, first minimum wins.
func (c *Comparison) Best() (PolicyResult, bool) {
	return Best(c.Results)
}

// Result returns the result for p, if p was part of the comparison.
func (c *Comparison) Result(p Policy) (PolicyResult, bool) {
	for _, r := range c.Results {
		if r.Policy == p {
			return r, true
		}
	}
	return PolicyResult{}, false
}

// AllPolicyNames returns the canonical names of AllPolicies as strings,
// convenient for Compare.
func AllPolicyNames() []string {
	names := make([]string, len(AllPolicies))
	for i, p := range AllPolicies {
		names[i] = string(p)
	}
	return names
}
