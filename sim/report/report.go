// Package report renders simulation results for people and other programs:
// a text summary, a single-row CSV export, and JSON/YAML documents.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/disk-sim/disk-sim/sim"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// validFormats is the set of recognized format names.
var validFormats = map[Format]bool{FormatText: true, FormatCSV: true, FormatJSON: true, FormatYAML: true}

// ParseFormat resolves a format name (case-insensitive). Empty defaults to text.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FormatText, nil
	}
	if !validFormats[f] {
		return "", fmt.Errorf("unknown report format %q; valid: text, csv, json, yaml", name)
	}
	return f, nil
}

// PolicyRow is one policy's entry in a report.
type PolicyRow struct {
	Policy      sim.Policy      `json:"policy" yaml:"policy"`
	Sequence    sim.Sequence    `json:"sequence" yaml:"sequence"`
	Metrics     sim.Metrics     `json:"metrics" yaml:"metrics"`
	SeekProfile sim.SeekProfile `json:"seek_profile" yaml:"seek_profile"`
}

// Recommendation names the policy with the least head movement.
type Recommendation struct {
	Policy        sim.Policy `json:"policy" yaml:"policy"`
	TotalMovement int        `json:"total_movement" yaml:"total_movement"`
}

// Report is the serializable outcome of a simulation run.
type Report struct {
	RunID                string          `json:"run_id" yaml:"run_id"`
	GeneratedAt          time.Time       `json:"generated_at" yaml:"generated_at"`
	Head                 int             `json:"head_position" yaml:"head_position"`
	DiskSize             int             `json:"disk_size" yaml:"disk_size"`
	Requests             []int           `json:"requests" yaml:"requests"`
	IncludeBoundaryStops bool            `json:"include_boundary_stops" yaml:"include_boundary_stops"`
	Results              []PolicyRow     `json:"results" yaml:"results"`
	Best                 *Recommendation `json:"best,omitempty" yaml:"best,omitempty"`
}

// Option configures optional Report fields.
type Option func(*Report)

// WithRunID overrides the generated run ID.
func WithRunID(id string) Option {
	return func(r *Report) {
		r.RunID = id
	}
}

// WithTimestamp overrides the generation time.
func WithTimestamp(ts time.Time) Option {
	return func(r *Report) {
		r.GeneratedAt = ts
	}
}

// New builds a report from a comparison. Best is set only when more than one
// policy was compared.
func New(c *sim.Comparison, opts ...Option) *Report {
	r := &Report{
		RunID:                "run_" + uuid.New().String()[:8],
		GeneratedAt:          time.Now().UTC(),
		Head:                 c.Input.Head,
		DiskSize:             c.Input.DiskSize,
		Requests:             c.Input.Requests,
		IncludeBoundaryStops: c.Options.IncludeBoundaryStops,
		Results:              make([]PolicyRow, 0, len(c.Results)),
	}
	for _, res := range c.Results {
		r.Results = append(r.Results, PolicyRow{
			Policy:      res.Policy,
			Sequence:    res.Sequence,
			Metrics:     res.Metrics,
			SeekProfile: sim.ComputeSeekProfile(res.Sequence),
		})
	}
	if best, ok := c.Best(); ok && len(c.Results) > 1 {
		r.Best = &Recommendation{Policy: best.Policy, TotalMovement: best.Metrics.TotalMovement}
	}
	if r.Requests == nil {
		r.Requests = []int{}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Write renders the report in the given format.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText, "":
		return r.WriteText(w)
	case FormatCSV:
		return r.WriteCSV(w)
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}
