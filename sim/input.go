package sim

import "fmt"

// MinDiskSize is the smallest disk accepted by the engine.
const MinDiskSize = 2

// DiskInput is one simulation input: the pending request queue, the arm position
// and the number of addressable tracks (0..DiskSize-1).
// The engine never mutates Requests.
type DiskInput struct {
	Requests []int `json:"requests" yaml:"requests"`
	Head     int   `json:"head" yaml:"head"`
	DiskSize int   `json:"disk_size" yaml:"disk_size"`
}

// NewDiskInput groups the three simulation inputs.
func NewDiskInput(requests []int, head, diskSize int) DiskInput {
	return DiskInput{Requests: requests, Head: head, DiskSize: diskSize}
}

// Validate checks the disk size, the head and every request before any scheduling happens.
// The first violation is returned as an *InvalidInputError; nothing is clamped.
func (in DiskInput) Validate() error {
	if in.DiskSize < MinDiskSize {
		return invalidInput("disk_size", in.DiskSize, "must be at least %d", MinDiskSize)
	}
	if in.Head < 0 || in.Head >= in.DiskSize {
		return invalidInput("head", in.Head, "must be in [0, %d)", in.DiskSize)
	}
	for i, r := range in.Requests {
		if r < 0 || r >= in.DiskSize {
			return invalidInput(fmt.Sprintf("requests[%d]", i), r, "track must be in [0, %d)", in.DiskSize)
		}
	}
	return nil
}

// LastTrack returns the highest addressable track.
func (in DiskInput) LastTrack() int {
	return in.DiskSize - 1
}
