package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/poochyard/internal/cli"
	"github.com/example/poochyard/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "poochyard",
		Short:   "Poochyard - pooch breeding simulation",
		Version: version.String(),
		Long: `Poochyard is a persistent pooch breeding simulation.
Owners breed and house pooches, buy from vendors, and watch the
population age through daily lifecycle changes.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DayCmd())
	rootCmd.AddCommand(cli.ServerCmd())
	rootCmd.AddCommand(cli.OwnerCmd())
	rootCmd.AddCommand(cli.PoochCmd())
	rootCmd.AddCommand(cli.KennelCmd())
	rootCmd.AddCommand(cli.VendorCmd())
	rootCmd.AddCommand(cli.BreedCmd())
	rootCmd.AddCommand(cli.BuyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
