package sim

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// DiskScheduler orders a pending request queue into a head-movement sequence.
// Implementations receive validated input, MUST NOT modify in.Requests,
// and return a fresh slice whose first element is in.Head.
type DiskScheduler interface {
	Order(in DiskInput) Sequence
}

// SchedulerOptions tunes policy behavior. The zero value is not the default;
// use DefaultSchedulerOptions.
type SchedulerOptions struct {
	// IncludeBoundaryStops injects tracks 0 and DiskSize-1 into SCAN and C-SCAN sequences
	// (and the C-SCAN jump stop at track 0). Disabling it leaves only requested tracks.
	IncludeBoundaryStops bool
}

// DefaultSchedulerOptions returns the default options: boundary stops on.
func DefaultSchedulerOptions() SchedulerOptions {
	return SchedulerOptions{IncludeBoundaryStops: true}
}

// FCFSScheduler serves requests in arrival order.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Order(in DiskInput) Sequence {
	seq := make(Sequence, 0, len(in.Requests)+1)
	seq = append(seq, in.Head)
	return append(seq, in.Requests...)
}

// SSTFScheduler greedily serves the pending request closest to the arm.
// Ties go to the first minimum in the remaining pool's current order,
// so identical inputs always produce identical sequences.
type SSTFScheduler struct{}

func (s *SSTFScheduler) Order(in DiskInput) Sequence {
	remaining := slices.Clone(in.Requests)
	seq := make(Sequence, 0, len(in.Requests)+1)
	seq = append(seq, in.Head)
	pos := in.Head
	for len(remaining) > 0 {
		best := 0
		for i := 1; i < len(remaining); i++ {
			if absDiff(remaining[i], pos) < absDiff(remaining[best], pos) {
				best = i
			}
		}
		pos = remaining[best]
		seq = append(seq, pos)
		// slices.Delete keeps the order of the remaining pool intact for the tie-break.
		remaining = slices.Delete(remaining, best, best+1)
	}
	return seq
}

// SCANScheduler sweeps up to the last track, then reverses down to track 0.
type SCANScheduler struct {
	IncludeBoundaryStops bool
}

func (s *SCANScheduler) Order(in DiskInput) Sequence {
	left, right := partition(sortedTracks(in, s.IncludeBoundaryStops), in.Head)
	slices.Reverse(left)
	return concat(in.Head, right, left)
}

// CSCANScheduler sweeps up to the last track, jumps to track 0,
// then continues upward through the tracks below the head.
type CSCANScheduler struct {
	IncludeBoundaryStops bool
}

func (c *CSCANScheduler) Order(in DiskInput) Sequence {
	left, right := partition(sortedTracks(in, c.IncludeBoundaryStops), in.Head)
	if !c.IncludeBoundaryStops {
		return concat(in.Head, right, left)
	}
	return concat(in.Head, right, []int{0}, left)
}

// LOOKScheduler sweeps up to the highest request, then reverses.
type LOOKScheduler struct{}

func (l *LOOKScheduler) Order(in DiskInput) Sequence {
	left, right := partition(sortedTracks(in, false), in.Head)
	slices.Reverse(left)
	return concat(in.Head, right, left)
}

// CLOOKScheduler sweeps up to the highest request, then jumps back to the lowest.
type CLOOKScheduler struct{}

func (c *CLOOKScheduler) Order(in DiskInput) Sequence {
	left, right := partition(sortedTracks(in, false), in.Head)
	return concat(in.Head, right, left)
}

// NewScheduler creates a DiskScheduler for a canonical policy.
// Unrecognized policies return an *InvalidInputError.
func NewScheduler(policy Policy, opts SchedulerOptions) (DiskScheduler, error) {
	switch policy {
	case PolicyFCFS:
		return &FCFSScheduler{}, nil
	case PolicySSTF:
		return &SSTFScheduler{}, nil
	case PolicySCAN:
		return &SCANScheduler{IncludeBoundaryStops: opts.IncludeBoundaryStops}, nil
	case PolicyCSCAN:
		return &CSCANScheduler{IncludeBoundaryStops: opts.IncludeBoundaryStops}, nil
	case PolicyLOOK:
		return &LOOKScheduler{}, nil
	case PolicyCLOOK:
		return &CLOOKScheduler{}, nil
	default:
		return nil, invalidInput("policy", string(policy), "valid policies: %s", PolicyNames())
	}
}

// Schedule validates the input and returns the service sequence for the named policy
// using DefaultSchedulerOptions.
func Schedule(policy string, requests []int, head, diskSize int) (Sequence, error) {
	return ScheduleWith(policy, NewDiskInput(requests, head, diskSize), DefaultSchedulerOptions())
}

// ScheduleWith is Schedule with explicit options.
// All validation happens before any ordering work; no partial sequence is ever returned.
func ScheduleWith(policy string, in DiskInput, opts SchedulerOptions) (Sequence, error) {
	p, err := ParsePolicy(policy)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	sched, err := NewScheduler(p, opts)
	if err != nil {
		return nil, err
	}
	seq := sched.Order(in)
	logrus.Debugf("scheduled %s: %d requests, head=%d, disk_size=%d, %d stops", p, len(in.Requests), in.Head, in.DiskSize, len(seq))
	return seq, nil
}

// sortedTracks returns an ascending copy of the requests, optionally with
// tracks 0 and DiskSize-1 added.
func sortedTracks(in DiskInput, withBoundaries bool) []int {
	tracks := make([]int, 0, len(in.Requests)+2)
	tracks = append(tracks, in.Requests...)
	if withBoundaries {
		tracks = append(tracks, 0, in.LastTrack())
	}
	slices.Sort(tracks)
	return tracks
}

// partition splits ascending tracks into those below the head and those at or above it.
func partition(sorted []int, head int) (left, right []int) {
	split, _ := slices.BinarySearch(sorted, head)
	left = slices.Clone(sorted[:split])
	right = slices.Clone(sorted[split:])
	return left, right
}

func concat(head int, parts ...[]int) Sequence {
	n := 1
	for _, p := range parts {
		n += len(p)
	}
	seq := make(Sequence, 0, n)
	seq = append(seq, head)
	for _, p := range parts {
		seq = append(seq, p...)
	}
	return seq
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
