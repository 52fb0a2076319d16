package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disk-sim/disk-sim/sim"
	"github.com/disk-sim/disk-sim/sim/workload"
)

// buildScenario merges the optional --config file with the command's flags.
// Flags the user set explicitly win; unset flags only fill fields the file left empty.
func buildScenario(cmd *cobra.Command) (*workload.Scenario, error) {
	s := &workload.Scenario{Version: "1"}
	if scenarioPath != "" {
		loaded, err := workload.LoadScenario(scenarioPath)
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("head") || s.Head == nil {
		h := headPosition
		s.Head = &h
	}
	if flags.Changed("disk-size") || s.DiskSize == nil {
		d := diskSize
		s.DiskSize = &d
	}
	if flags.Changed("boundary-stops") || s.IncludeBoundaryStops == nil {
		b := boundaryStops
		s.IncludeBoundaryStops = &b
	}

	switch {
	case flags.Changed("random"):
		s.Random = &workload.RandomSpec{Count: randomCount, Seed: seed, RandomHead: randomHead}
		s.Requests = nil
	case flags.Changed("requests") || (len(s.Requests) == 0 && s.Random == nil):
		reqs, err := workload.ParseRequests(requestsText)
		if err != nil {
			return nil, fmt.Errorf("--requests: %w", err)
		}
		s.Requests = reqs
		s.Random = nil
	}
	if s.Random != nil {
		if flags.Changed("seed") {
			s.Random.Seed = seed
		}
		if flags.Changed("random-head") {
			s.Random.RandomHead = randomHead
		}
	}
	return s, s.Validate()
}

// resolveInput returns the engine input, scheduler options and any policies named in the scenario file.
func resolveInput(cmd *cobra.Command) (sim.DiskInput, sim.SchedulerOptions, []string, error) {
	s, err := buildScenario(cmd)
	if err != nil {
		return sim.DiskInput{}, sim.SchedulerOptions{}, nil, err
	}
	in, err := s.Resolve()
	if err != nil {
		return sim.DiskInput{}, sim.SchedulerOptions{}, nil, err
	}
	if err := in.Validate(); err != nil {
		return sim.DiskInput{}, sim.SchedulerOptions{}, nil, err
	}
	return in, s.Options(), s.Policies, nil
}
