package workload

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/disk-sim/disk-sim/sim"
)

// GenerateRequests draws n distinct tracks from [1, diskSize) and returns them ascending.
// n is clamped to diskSize-1, the number of distinct tracks available; clamping logs a warning.
// The same rng state always yields the same queue.
func GenerateRequests(rng *rand.Rand, n, diskSize int) ([]int, error) {
	if diskSize < sim.MinDiskSize {
		return nil, &sim.InvalidInputError{Field: "disk_size", Value: diskSize, Reason: fmt.Sprintf("must be at least %d", sim.MinDiskSize)}
	}
	if n < 0 {
		return nil, &sim.InvalidInputError{Field: "num_requests", Value: n, Reason: "must be non-negative"}
	}
	available := diskSize - 1
	if n > available {
		logrus.Warnf("requested %d random requests but only %d distinct tracks exist on a %d-track disk; clamping", n, available, diskSize)
		n = available
	}

	reqs := sampleDistinct(rng, n, available)
	slices.Sort(reqs)
	return reqs, nil
}

// sampleDistinct returns n distinct values from [1, available] using Floyd's
// algorithm, so memory grows with n and not with the disk size.
func sampleDistinct(rng *rand.Rand, n, available int) []int {
	chosen := make(map[int]struct{}, n)
	reqs := make([]int, 0, n)
	for j := available - n + 1; j <= available; j++ {
		t := int(rng.Int63n(int64(j))) + 1
		if _, dup := chosen[t]; dup {
			t = j
		}
		chosen[t] = struct{}{}
		reqs = append(reqs, t)
	}
	return reqs
}

// GenerateHead draws an arm position uniformly from [0, diskSize).
func GenerateHead(rng *rand.Rand, diskSize int) (int, error) {
	if diskSize < sim.MinDiskSize {
		return 0, &sim.InvalidInputError{Field: "disk_size", Value: diskSize, Reason: fmt.Sprintf("must be at least %d", sim.MinDiskSize)}
	}
	return int(rng.Int63n(int64(diskSize))), nil
}
