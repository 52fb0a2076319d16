package workload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/disk-sim/disk-sim/sim"
)

// Defaults used when neither a scenario file nor a flag sets a value.
const (
	DefaultHead           = 50
	DefaultDiskSize       = 200
	DefaultRandomRequests = 8
	DefaultRequestQueue   = "98, 183, 37, 122, 14, 124, 65, 67"
)

// Scenario is a simulation input loaded from YAML via LoadScenario(path).
// Pointer fields distinguish "not set" from zero so CLI flags can fill the gaps.
type Scenario struct {
	Version              string      `yaml:"version"`
	Name                 string      `yaml:"name,omitempty"`
	Head                 *int        `yaml:"head,omitempty"`
	DiskSize             *int        `yaml:"disk_size,omitempty"`
	Requests             []int       `yaml:"requests,omitempty"`
	Random               *RandomSpec `yaml:"random,omitempty"`
	Policies             []string    `yaml:"policies,omitempty"`
	IncludeBoundaryStops *bool       `yaml:"include_boundary_stops,omitempty"`
}

// RandomSpec replaces the explicit request list with a seeded random queue.
type RandomSpec struct {
	Count      int   `yaml:"count"`
	Seed       int64 `yaml:"seed"`
	RandomHead bool  `yaml:"random_head,omitempty"` // also draw the head position
}

// LoadScenario reads and strictly parses a scenario file.
// Unknown keys are errors so typos never silently fall back to defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario strictly parses scenario YAML. An empty document is an empty scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if s.Version == "" {
		s.Version = "1"
	}
	return &s, nil
}

// Validate checks the fields that can be checked without generating requests.
// Track ranges are validated by the engine once the input is resolved.
func (s *Scenario) Validate() error {
	if s.Version != "1" {
		return fmt.Errorf("unsupported scenario version %q; valid: 1", s.Version)
	}
	if s.Random != nil && len(s.Requests) > 0 {
		return fmt.Errorf("requests and random are mutually exclusive")
	}
	if s.Random != nil && s.Random.Count < 0 {
		return fmt.Errorf("random.count must be non-negative, got %d", s.Random.Count)
	}
	for _, p := range s.Policies {
		if !sim.IsValidPolicy(p) {
			return fmt.Errorf("unknown policy %q; valid: %s", p, sim.PolicyNames())
		}
	}
	return nil
}

// Options returns the scheduler options, defaulting to boundary stops on.
func (s *Scenario) Options() sim.SchedulerOptions {
	opts := sim.DefaultSchedulerOptions()
	if s.IncludeBoundaryStops != nil {
		opts.IncludeBoundaryStops = *s.IncludeBoundaryStops
	}
	return opts
}

// Resolve produces the engine input. Missing head and disk size take the defaults;
// a random block draws the queue (and optionally the head) from a PartitionedRNG.
func (s *Scenario) Resolve() (sim.DiskInput, error) {
	if err := s.Validate(); err != nil {
		return sim.DiskInput{}, err
	}
	in := sim.NewDiskInput(s.Requests, DefaultHead, DefaultDiskSize)
	if s.DiskSize != nil {
		in.DiskSize = *s.DiskSize
	}
	if s.Head != nil {
		in.Head = *s.Head
	}
	if s.Random != nil {
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(s.Random.Seed))
		reqs, err := GenerateRequests(rng.ForSubsystem(sim.SubsystemWorkload), s.Random.Count, in.DiskSize)
		if err != nil {
			return sim.DiskInput{}, err
		}
		in.Requests = reqs
		if s.Random.RandomHead {
			head, err := GenerateHead(rng.ForSubsystem(sim.SubsystemHead), in.DiskSize)
			if err != nil {
				return sim.DiskInput{}, err
			}
			in.Head = head
		}
	}
	if in.Requests == nil {
		in.Requests = []int{}
	}
	return in, nil
}
