package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/disk-sim/disk-sim/sim/workload"
)

// CSVHeader returns the export columns: the input description followed by
// {policy}_Total_Movement, {policy}_Avg_Seek_Time and {policy}_Num_Operations per policy.
func (r *Report) CSVHeader() []string {
	header := []string{"Head Position", "Disk Size", "Request Queue"}
	for _, row := range r.Results {
		header = append(header,
			fmt.Sprintf("%s_Total_Movement", row.Policy),
			fmt.Sprintf("%s_Avg_Seek_Time", row.Policy),
			fmt.Sprintf("%s_Num_Operations", row.Policy),
		)
	}
	return header
}

// CSVRecord returns the single data row matching CSVHeader.
func (r *Report) CSVRecord() []string {
	record := []string{strconv.Itoa(r.Head), strconv.Itoa(r.DiskSize), workload.FormatRequests(r.Requests)}
	for _, row := range r.Results {
		record = append(record,
			strconv.Itoa(row.Metrics.TotalMovement),
			formatFloat(row.Metrics.AvgSeekTime),
			strconv.Itoa(row.Metrics.NumOperations),
		)
	}
	return record
}

// WriteCSV writes the header and the data row.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.CSVHeader()); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	if err := cw.Write(r.CSVRecord()); err != nil {
		return fmt.Errorf("writing csv record: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// formatFloat prints the shortest exact representation, keeping a ".0" on whole numbers
// so the column always reads as a real number.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		s += ".0"
	}
	return s
}
