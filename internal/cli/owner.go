package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/poochyard/internal/wire"
)

var ownerCmd = &cobra.Command{
	Use:   "owner",
	Short: "Manage owners",
	Long:  "Inspect owner balances and graveyards. Owners are created on first interaction.",
}

var ownerShowCmd = &cobra.Command{
	Use:   "show [server-id] [discord-id]",
	Short: "Show an owner, creating them if new",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		serverID, err := parseID("server-id", args[0])
		if err != nil {
			return err
		}
		discordID, err := parseID("discord-id", args[1])
		if err != nil {
			return err
		}

		owner, err := wire.OwnerService().GetOrCreateOwner(ctx, serverID, discordID)
		if err != nil {
			return fmt.Errorf("failed to fetch owner: %w", err)
		}

		fmt.Printf("Owner: %d (server %d)\n", owner.DiscordID, owner.ServerID)
		fmt.Printf("Dollars: %d\n", owner.Dollars)
		fmt.Printf("Bloodskulls: %d\n", owner.Bloodskulls)
		fmt.Printf("Created: %s\n", owner.CreatedAt)
		return nil
	},
}

var ownerGraveyardCmd = &cobra.Command{
	Use:   "graveyard [server-id] [discord-id]",
	Short: "List an owner's buried pooches",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		serverID, err := parseID("server-id", args[0])
		if err != nil {
			return err
		}
		discordID, err := parseID("discord-id", args[1])
		if err != nil {
			return err
		}

		entries, err := wire.OwnerService().ListGraveyard(ctx, serverID, discordID)
		if err != nil {
			return fmt.Errorf("failed to list graveyard: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("The graveyard is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "POOCH\tBURIED")
		fmt.Fprintln(w, "-----\t------")
		for _, entry := range entries {
			fmt.Fprintf(w, "%d\t%s\n", entry.PoochID, entry.BuriedAt)
		}
		w.Flush()
		return nil
	},
}

func init() {
	ownerCmd.AddCommand(ownerShowCmd)
	ownerCmd.AddCommand(ownerGraveyardCmd)
}

// OwnerCmd returns the owner command tree.
func OwnerCmd() *cobra.Command {
	return ownerCmd
}
