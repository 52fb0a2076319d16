// Package testutil provides shared test infrastructure for the disk scheduling simulator.
// It holds the golden scenario types and assertion helpers used across
// sim/ and its sub-package tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one input together with the expected output of every policy.
type GoldenTestCase struct {
	Name                 string                  `json:"name"`
	Requests             []int                   `json:"requests"`
	Head                 int                     `json:"head"`
	DiskSize             int                     `json:"disk_size"`
	IncludeBoundaryStops bool                    `json:"include_boundary_stops"`
	Best                 string                  `json:"best"`
	Policies             map[string]GoldenPolicy `json:"policies"`
}

// GoldenPolicy is the expected output of one policy.
type GoldenPolicy struct {
	Sequence      []int   `json:"sequence"`
	TotalMovement int     `json:"total_movement"`
	AvgSeekTime   float64 `json:"avg_seek_time"`
	NumOperations int     `json:"num_operations"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("golden dataset has no test cases")
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
