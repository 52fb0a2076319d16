package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey is the seed behind a reproducible random scenario.
// Equal keys with equal scenario settings give equal queues and head positions.
type SimulationKey int64

// NewSimulationKey wraps a --seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Subsystem names accepted by PartitionedRNG.ForSubsystem.
const (
	// SubsystemWorkload draws the random request queue. It is seeded with the
	// key itself, so a given --seed always names the same queue.
	SubsystemWorkload = "workload"

	// SubsystemHead draws the random head position.
	SubsystemHead = "head"
)

// PartitionedRNG hands out one independent random stream per subsystem, all
// derived from a single SimulationKey. The workload stream is seeded with the
// key; every other stream with key ^ FNV-1a(name). Drawing a random head
// therefore never changes which queue a seed produces.
//
// A PartitionedRNG and the streams it returns belong to one goroutine;
// concurrent callers need their own instance.
type PartitionedRNG struct {
	key     SimulationKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG returns an RNG with no streams created yet.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{key: key, streams: make(map[string]*rand.Rand)}
}

// ForSubsystem returns the stream for name, creating it on first use.
// Later calls with the same name continue the same stream.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if stream, ok := p.streams[name]; ok {
		return stream
	}
	seed := int64(p.key)
	if name != SubsystemWorkload {
		seed ^= fnv1a64(name)
	}
	stream := rand.New(rand.NewSource(seed))
	p.streams[name] = stream
	return stream
}

// Key returns the key the streams are derived from.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
