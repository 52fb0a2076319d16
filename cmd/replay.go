package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/disk-sim/disk-sim/sim"
	"github.com/disk-sim/disk-sim/sim/trace"
	"github.com/disk-sim/disk-sim/sim/workload"
)

var (
	replayInterval time.Duration // Delay between printed steps
	replaySteps    int           // Stop after this many steps; 0 prints all
)

// replayCmd prints a policy's head movement one step at a time
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay one policy's head movement step by step",
	Run: func(cmd *cobra.Command, args []string) {
		in, opts, _, err := resolveInput(cmd)
		if err != nil {
			logrus.Fatalf("Invalid simulation input: %v", err)
		}
		res, err := sim.Run(policyName, in, opts)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		r := trace.NewReplay(string(res.Policy), res.Sequence)
		if err := writeReplay(ctx, os.Stdout, r, replaySteps, replayInterval); err != nil {
			logrus.Fatalf("Replay stopped: %v", err)
		}
	},
}

// writeReplay prints up to steps records (all when steps <= 0), pausing interval
// between them, then the replay summary. Cancelling ctx stops the replay early.
func writeReplay(ctx context.Context, w io.Writer, r *trace.Replay, steps int, interval time.Duration) error {
	if steps <= 0 || steps > len(r.Steps) {
		steps = len(r.Steps)
	}
	fmt.Fprintf(w, "=== %s replay ===\n", r.Label)
	fmt.Fprintf(w, "Head: %d\n", r.Head)
	for _, s := range r.Steps[:steps] {
		if interval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}
		mark := ""
		if s.Reversal {
			mark = "  (reversal)"
		}
		fmt.Fprintf(w, "Step %3d: %4d -> %4d  %-4s seek %4d  total %5d%s\n",
			s.Step, s.From, s.To, s.Direction, s.Distance, s.Cumulative, mark)
	}
	fmt.Fprintf(w, "Path: %s\n", workload.FormatRequests(r.Visible(steps)))

	sum := trace.Summarize(r)
	fmt.Fprintln(w, "=== Replay Summary ===")
	fmt.Fprintf(w, "Steps: %d of %d\n", steps, sum.TotalSteps)
	fmt.Fprintf(w, "Movement So Far: %d\n", r.MovementAt(steps))
	fmt.Fprintf(w, "Total Head Movement: %d\n", sum.TotalMovement)
	if sum.LongestSeekStep > 0 {
		fmt.Fprintf(w, "Longest Seek: %d (step %d)\n", sum.LongestSeek, sum.LongestSeekStep)
	}
	fmt.Fprintf(w, "Direction Reversals: %d\n", sum.Reversals)
	fmt.Fprintf(w, "Track Range: %d..%d\n", sum.LowestTrack, sum.HighestTrack)
	return nil
}

func init() {
	addInputFlags(replayCmd)
	replayCmd.Flags().StringVar(&policyName, "policy", string(sim.PolicyFCFS), "Scheduling policy: "+sim.PolicyNames())
	replayCmd.Flags().DurationVar(&replayInterval, "interval", 0, "Delay between steps (e.g. 500ms); 0 prints immediately")
	replayCmd.Flags().IntVar(&replaySteps, "step", 0, "Stop after this many steps; 0 replays the whole sequence")

	rootCmd.AddCommand(replayCmd)
}
