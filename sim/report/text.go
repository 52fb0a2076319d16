package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/disk-sim/disk-sim/sim/workload"
)

// WriteText writes the human-readable report: the input header followed by
// the per-policy metrics block and, when several policies ran, the recommendation.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Disk Scheduling Simulation Report\n\n")
	fmt.Fprintf(&b, "Head Position: %d\n", r.Head)
	fmt.Fprintf(&b, "Disk Size: %d\n", r.DiskSize)
	fmt.Fprintf(&b, "Request Queue: %s\n\n", workload.FormatRequests(r.Requests))
	b.WriteString(r.MetricsText())
	_, err := io.WriteString(w, b.String())
	return err
}

// MetricsText returns the "Performance Metrics" block on its own.
func (r *Report) MetricsText() string {
	var b strings.Builder
	b.WriteString("Performance Metrics:\n\n")
	for _, row := range r.Results {
		fmt.Fprintf(&b, "%s:\n", row.Policy)
		fmt.Fprintf(&b, "  Total Head Movement: %d\n", row.Metrics.TotalMovement)
		fmt.Fprintf(&b, "  Average Seek Time: %.2f\n", row.Metrics.AvgSeekTime)
		fmt.Fprintf(&b, "  Number of Operations: %d\n", row.Metrics.NumOperations)
		fmt.Fprintf(&b, "  Sequence: %s\n\n", workload.FormatRequests(row.Sequence))
	}
	if r.Best != nil {
		fmt.Fprintf(&b, "Best Algorithm: %s (Movement: %d)\n", r.Best.Policy, r.Best.TotalMovement)
	}
	return b.String()
}
