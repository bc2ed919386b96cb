package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/poochyard/internal/wire"
)

var kennelCmd = &cobra.Command{
	Use:   "kennel",
	Short: "Manage kennels",
	Long:  "Create kennels and move pooches in and out of them.",
}

var kennelCreateCmd = &cobra.Command{
	Use:   "create [server-id] [owner-discord-id] [name]",
	Short: "Create a kennel",
	Args:  cobra.ExactArgs(3),
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
		limit, _ := cmd.Flags().GetInt("limit")

		kennel, err := wire.KennelService().CreateKennel(ctx, serverID, ownerID, args[2], limit)
		if err != nil {
			return fmt.Errorf("failed to create kennel: %w", err)
		}

		fmt.Printf("Created kennel %q (#%d) with room for %d pooches.\n",
			kennel.Name, kennel.ID, kennel.PoochLimit)
		return nil
	},
}

var kennelListCmd = &cobra.Command{
	Use:   "list [server-id] [owner-discord-id]",
	Short: "List an owner's kennels",
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

		kennels, err := wire.KennelService().ListKennels(ctx, serverID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to list kennels: %w", err)
		}

		if len(kennels) == 0 {
			fmt.Println("No kennels found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tOCCUPANCY\tCREATED")
		fmt.Fprintln(w, "--\t----\t---------\t-------")
		for _, item := range kennels {
			fmt.Fprintf(w, "%d\t%s\t%d/%d\t%s\n",
				item.ID,
				item.Name,
				item.Occupancy,
				item.PoochLimit,
				item.CreatedAt,
			)
		}
		w.Flush()
		return nil
	},
}

var kennelShowCmd = &cobra.Command{
	Use:   "show [server-id] [kennel-id]",
	Short: "Show a kennel and its pooches",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		serverID, err := parseID("server-id", args[0])
		if err != nil {
			return err
		}
		kennelID, err := parseID("kennel-id", args[1])
		if err != nil {
			return err
		}

		kennel, err := wire.KennelService().GetKennel(ctx, serverID, kennelID)
		if err != nil {
			return fmt.Errorf("kennel not found: %w", err)
		}

		fmt.Printf("Kennel: %s (#%d)\n", kennel.Name, kennel.ID)
		fmt.Printf("Owner: %d\n", kennel.OwnerDiscordID)
		fmt.Printf("Occupancy: %d/%d\n", kennel.Occupancy, kennel.PoochLimit)
		fmt.Printf("Created: %s\n", kennel.CreatedAt)

		pooches, err := wire.KennelService().ListKennelPooches(ctx, serverID, kennelID)
		if err != nil {
			return fmt.Errorf("failed to list kennel pooches: %w", err)
		}
		if len(pooches) > 0 {
			fmt.Println()
			printPoochTable(pooches)
		}
		return nil
	},
}

var kennelAddCmd = &cobra.Command{
	Use:   "add [server-id] [kennel-id] [pooch-id]",
	Short: "Place a pooch in a kennel",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		serverID, err := parseID("server-id", args[0])
		if err != nil {
			return err
		}
		kennelID, err := parseID("kennel-id", args[1])
		if err != nil {
			return err
		}
		poochID, err := parseID("pooch-id", args[2])
		if err != nil {
			return err
		}

		if err := wire.KennelService().AddPoochToKennel(ctx, serverID, kennelID, poochID); err != nil {
			return fmt.Errorf("failed to add pooch: %w", err)
		}

		fmt.Printf("Pooch %d moved into kennel %d.\n", poochID, kennelID)
		return nil
	},
}

var kennelRemoveCmd = &cobra.Command{
	Use:   "remove [server-id] [pooch-id]",
	Short: "Remove a pooch from its kennel",
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

		if err := wire.KennelService().RemovePoochFromKennel(ctx, serverID, poochID); err != nil {
			return fmt.Errorf("failed to remove pooch: %w", err)
		}

		fmt.Printf("Pooch %d is no longer kenneled.\n", poochID)
		return nil
	},
}

func init() {
	kennelCreateCmd.Flags().Int("limit", 0, "Pooch capacity (0 uses the default)")

	kennelCmd.AddCommand(kennelCreateCmd)
	kennelCmd.AddCommand(kennelListCmd)
	kennelCmd.AddCommand(kennelShowCmd)
	kennelCmd.AddCommand(kennelAddCmd)
	kennelCmd.AddCommand(kennelRemoveCmd)
}

// KennelCmd returns the kennel command tree.
func KennelCmd() *cobra.Command {
	return kennelCmd
}
