package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/poochyard/internal/ports/primary"
	"github.com/example/poochyard/internal/wire"
)

var poochCmd = &cobra.Command{
	Use:   "pooch",
	Short: "Manage pooches",
	Long:  "Inspect pooches, their vitals, and their family trees.",
}

var poochShowCmd = &cobra.Command{
	Use:   "show [server-id] [pooch-id]",
	Short: "Show pooch details",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		serverID, err := parseID("server-id", args[0])
		if err != nil {
			return err
		}
		poochID, err := parseID("pooch-id", args[1])
		if err != nil {
			return err
		}

		p, err := wire.PoochService().GetPooch(ctx, serverID, poochID)
		if err != nil {
			return fmt.Errorf("pooch not found: %w", err)
		}

		fmt.Printf("Pooch: %s (#%d)\n", p.Name, p.ID)
		fmt.Printf("Status: %s\n", statusColor(p.Status))
		fmt.Printf("Sex: %s\n", p.Sex)
		fmt.Printf("Age: %d\n", p.Age)
		fmt.Printf("Health: %d (base %d, age loss %d)\n", p.Health, p.BaseHealth, p.HealthLossAge)
		fmt.Printf("Breeding cooldown: %d\n", p.BreedingCooldown)
		fmt.Printf("Owner: %s\n", ownerLabel(p))
		fmt.Printf("Created: %s\n", p.CreatedAt)

		return nil
	},
}

var poochListCmd = &cobra.Command{
	Use:   "list [server-id] [owner-discord-id]",
	Short: "List an owner's pooches",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		serverID, err := parseID("server-id", args[0])
		if err != nil {
			return err
		}
		ownerID, err := parseID("owner-discord-id", args[1])
		if err != nil {
			return err
		}

		pooches, err := wire.PoochService().ListOwnerPooches(ctx, serverID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to list pooches: %w", err)
		}

		if len(pooches) == 0 {
			fmt.Println("No pooches found.")
			return nil
		}

		printPoochTable(pooches)
		return nil
	},
}

var poochFamilyCmd = &cobra.Command{
	Use:   "family [server-id] [pooch-id]",
	Short: "Show a pooch's family tree",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		serverID, err := parseID("server-id", args[0])
		if err != nil {
			return err
		}
		poochID, err := parseID("pooch-id", args[1])
		if err != nil {
			return err
		}

		family, err := wire.FamilyService().GetFamily(ctx, serverID, poochID)
		if err != nil {
			return fmt.Errorf("failed to resolve family: %w", err)
		}

		printFamilySection("Parents", family.Parents)
		printFamilySection("Siblings", family.Siblings)
		printFamilySection("Children", family.Children)
		return nil
	},
}

var breedCmd = &cobra.Command{
	Use:   "breed [server-id] [father-id] [mother-id]",
	Short: "Breed two pooches",
	Long: `Breed a father and mother pooch, starting a pregnancy.

The litter arrives on the next day change. Both parents go on breeding
cooldown immediately.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		serverID, err := parseID("server-id", args[0])
		if err != nil {
			return err
		}
		fatherID, err := parseID("father-id", args[1])
		if err != nil {
			return err
		}
		motherID, err := parseID("mother-id", args[2])
		if err != nil {
			return err
		}

		fetus, err := wire.PoochService().BreedPooches(ctx, serverID, fatherID, motherID)
		if err != nil {
			return fmt.Errorf("breeding failed: %w", err)
		}

		fmt.Printf("Pooch %d and pooch %d are expecting. The litter (#%d) arrives on the next day change.\n",
			fatherID, motherID, fetus.ID)
		return nil
	},
}

func printPoochTable(pooches []*primary.Pooch) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSEX\tAGE\tHEALTH\tSTATUS\tOWNER")
	fmt.Fprintln(w, "--\t----\t---\t---\t------\t------\t-----")
	for _, p := range pooches {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\t%s\n",
			p.ID,
			p.Name,
			p.Sex,
			p.Age,
			p.Health,
			p.Status,
			ownerLabel(p),
		)
	}
	w.Flush()
}

func printFamilySection(label string, members []*primary.Pooch) {
	fmt.Printf("%s:\n", label)
	if len(members) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, p := range members {
		fmt.Printf("  #%d %s (%s, age %d, %s)\n", p.ID, p.Name, p.Sex, p.Age, statusColor(p.Status))
	}
}

func init() {
	poochCmd.AddCommand(poochShowCmd)
	poochCmd.AddCommand(poochListCmd)
	poochCmd.AddCommand(poochFamilyCmd)
}

// PoochCmd returns the pooch command tree.
func PoochCmd() *cobra.Command {
	return poochCmd
}

// BreedCmd returns the breed command.
func BreedCmd() *cobra.Command {
	return breedCmd
}
