package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/disk-sim/disk-sim/sim/report"
)

// reportFormat picks the --format value, falling back to the --output extension.
func reportFormat(format, path string) (report.Format, error) {
	if format == "" && path != "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
		if format == "txt" {
			format = string(report.FormatText)
		}
	}
	return report.ParseFormat(format)
}

// writeReport renders rep to --output, or stdout when no file was given.
func writeReport(rep *report.Report) error {
	f, err := reportFormat(outputFormat, outputPath)
	if err != nil {
		return err
	}
	if outputPath == "" {
		return rep.Write(os.Stdout, f)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	writer := bufio.NewWriter(file)
	if err := rep.Write(writer, f); err != nil {
		_ = file.Close()
		return err
	}
	if err := writer.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flushing %s: %w", outputPath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outputPath, err)
	}
	logrus.Infof("Report %s exported to %s (%s)", rep.RunID, outputPath, f)
	return nil
}
