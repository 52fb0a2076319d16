// Package sim provides the disk-scheduling engine and its metrics.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - input.go: DiskInput (request queue, head, disk size) and its validation
//   - scheduler.go: the DiskScheduler interface and the six policies
//   - metrics.go: Metrics, ComputeMetrics and the best-policy rule
//
// # Architecture
//
// Every policy is a pure function of its DiskInput: no package state, no I/O,
// and the caller's request slice is never modified. Sub-packages build on the
// engine's output:
//   - sim/workload/: request parsing, random request generation, scenario files
//   - sim/trace/: step-by-step replay records of a sequence
//   - sim/report/: text, CSV, JSON and YAML output
//
// # Key Types
//
//   - DiskScheduler: Order(DiskInput) Sequence, one implementation per Policy
//   - SchedulerOptions: IncludeBoundaryStops toggles SCAN/C-SCAN edge stops
//   - Comparison: several policies over one input, in request order
//   - InvalidInputError: the only error the engine returns (errors.Is ErrInvalidInput)
package sim
