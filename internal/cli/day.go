package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/poochyard/internal/ports/primary"
	"github.com/example/poochyard/internal/scheduler"
	"github.com/example/poochyard/internal/wire"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Run day changes",
	Long:  "Advance the simulation clock: resolve births, age pooches, and restock vendors.",
}

var dayRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one day change now",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		seed, _ := cmd.Flags().GetInt64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}

		summaries, err := wire.LifecycleService().RunDayChange(ctx, seed)
		if err != nil {
			return fmt.Errorf("day change failed: %w", err)
		}

		for _, summary := range summaries {
			printSummary(summary)
		}
		return nil
	},
}

var dayLoopCmd = &cobra.Command{
	Use:   "loop",
	Short: "Run day changes on the configured schedule until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		sched, err := scheduler.New(wire.LifecycleService(), wire.Configuration(), wire.Logger())
		if err != nil {
			return fmt.Errorf("failed to build scheduler: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Println("Running day changes. Press Ctrl-C to stop.")
		if err := sched.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func printSummary(summary *primary.DayChangeSummary) {
	if len(summary.Births) == 0 && len(summary.Deaths) == 0 {
		return
	}

	fmt.Printf("Server %d:\n", summary.ServerID)
	for _, birth := range summary.Births {
		switch birth.Outcome {
		case primary.BirthPlaced:
			fmt.Printf("  %s pooch %d born to mother %d\n",
				color.New(color.FgGreen).Sprint("BORN   "), birth.ChildID, birth.MotherID)
		case primary.BirthAbandoned:
			fmt.Printf("  %s pooch %d born to mother %d, no kennel to join\n",
				color.New(color.FgYellow).Sprint("STRAY  "), birth.ChildID, birth.MotherID)
		case primary.BirthCrushed:
			fmt.Printf("  %s pooch %d born to mother %d, kennel was full\n",
				color.New(color.FgYellow).Sprint("CRUSHED"), birth.ChildID, birth.MotherID)
		}
	}
	for _, death := range summary.Deaths {
		fmt.Printf("  %s pooch %d\n", color.New(color.FgRed).Sprint("DIED   "), death.PoochID)
	}
}

func init() {
	dayRunCmd.Flags().Int64("seed", 0, "Random seed (defaults to the current time)")

	dayCmd.AddCommand(dayRunCmd)
	dayCmd.AddCommand(dayLoopCmd)
}

// DayCmd returns the day command tree.
func DayCmd() *cobra.Command {
	return dayCmd
}
