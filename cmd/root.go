package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/disk-sim/disk-sim/sim"
	"github.com/disk-sim/disk-sim/sim/report"
	"github.com/disk-sim/disk-sim/sim/workload"
)

var (
	// CLI flags for the simulation input
	headPosition  int    // Arm position at the start of the run
	diskSize      int    // Number of addressable tracks
	requestsText  string // Delimited request queue
	randomCount   int    // Generate this many random requests instead of --requests
	randomHead    bool   // Also draw the head position at random
	seed          int64  // Seed for random request generation
	boundaryStops bool   // Inject tracks 0 and disk-size-1 into SCAN/C-SCAN
	scenarioPath  string // YAML scenario file

	// CLI flags for policy selection and output
	policyName      string   // Policy for run/replay
	comparePolicies []string // Policies for compare, in tie-break order
	outputFormat    string   // text, csv, json, yaml
	outputPath      string   // Output file; stdout when empty
	logLevel        string   // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "disk-sim",
	Short: "Disk scheduling simulator (FCFS, SSTF, SCAN, C-SCAN, LOOK, C-LOOK)",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd schedules the queue with a single policy
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Schedule the request queue with one policy and report its metrics",
	Run: func(cmd *cobra.Command, args []string) {
		in, opts, _, err := resolveInput(cmd)
		if err != nil {
			logrus.Fatalf("Invalid simulation input: %v", err)
		}
		c, err := sim.Compare([]string{policyName}, in, opts)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := writeReport(report.New(c)); err != nil {
			logrus.Fatalf("Writing report failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// compareCmd runs several policies over the same queue
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare policies on the same request queue and recommend the one with least head movement",
	Run: func(cmd *cobra.Command, args []string) {
		in, opts, scenarioPolicies, err := resolveInput(cmd)
		if err != nil {
			logrus.Fatalf("Invalid simulation input: %v", err)
		}
		policies := comparePolicies
		if !cmd.Flags().Changed("policies") && len(scenarioPolicies) > 0 {
			policies = scenarioPolicies
		}
		logrus.Infof("Comparing %v on %d requests, head=%d, disk_size=%d", policies, len(in.Requests), in.Head, in.DiskSize)

		c, err := sim.Compare(policies, in, opts)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
		if err := writeReport(report.New(c)); err != nil {
			logrus.Fatalf("Writing report failed: %v", err)
		}
		logrus.Info("Comparison complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addInputFlags registers the flags shared by every command that builds a DiskInput.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&headPosition, "head", workload.DefaultHead, "Initial head position (track)")
	cmd.Flags().IntVar(&diskSize, "disk-size", workload.DefaultDiskSize, "Number of tracks on the disk (tracks 0..disk-size-1)")
	cmd.Flags().StringVar(&requestsText, "requests", workload.DefaultRequestQueue, "Request queue as comma, semicolon or space separated tracks")
	cmd.Flags().IntVar(&randomCount, "random", workload.DefaultRandomRequests, "Generate this many distinct random requests instead of --requests (only when set)")
	cmd.Flags().BoolVar(&randomHead, "random-head", false, "With --random, also draw the head position")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random request generation")
	cmd.Flags().BoolVar(&boundaryStops, "boundary-stops", true, "Include disk-edge stops (0 and disk-size-1) in SCAN and C-SCAN sequences")
	cmd.Flags().StringVar(&scenarioPath, "config", "", "YAML scenario file; explicit flags override its values")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outputFormat, "format", "", "Output format: text, csv, json, yaml (default: from --output extension, else text)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Write the report to this file instead of stdout")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addInputFlags(runCmd)
	addOutputFlags(runCmd)
	runCmd.Flags().StringVar(&policyName, "policy", string(sim.PolicyFCFS), "Scheduling policy: "+sim.PolicyNames())

	addInputFlags(compareCmd)
	addOutputFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", sim.AllPolicyNames(), "Comma-separated policies to compare; ties go to the earlier policy")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
