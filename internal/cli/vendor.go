package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/poochyard/internal/wire"
)

var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Browse vendors and buy pooches",
}

var vendorListCmd = &cobra.Command{
	Use:   "list [server-id]",
	Short: "List a server's vendors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		serverID, err := parseID("server-id", args[0])
		if err != nil {
			return err
		}

		vendors, err := wire.VendorService().ListVendors(ctx, serverID)
		if err != nil {
			return fmt.Errorf("failed to list vendors: %w", err)
		}

		if len(vendors) == 0 {
			fmt.Println("No vendors yet. They arrive with the next day change.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tWANTS")
		fmt.Fprintln(w, "--\t----\t-----")
		for _, vendor := range vendors {
			wants := "-"
			if len(vendor.DesiredMutations) > 0 {
				wants = strings.Join(vendor.DesiredMutations, ", ")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", vendor.ID, vendor.Name, wants)
		}
		w.Flush()
		return nil
	},
}

var vendorStockCmd = &cobra.Command{
	Use:   "stock [server-id] [vendor-id]",
	Short: "Show a vendor's pooches for sale",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		serverID, err := parseID("server-id", args[0])
		if err != nil {
			return err
		}
		vendorID, err := parseID("vendor-id", args[1])
		if err != nil {
			return err
		}

		stock, err := wire.VendorService().ListVendorStock(ctx, serverID, vendorID)
		if err != nil {
			return fmt.Errorf("failed to list stock: %w", err)
		}

		if len(stock) == 0 {
			fmt.Println("Sold out.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSEX\tHEALTH\tPRICE")
		fmt.Fprintln(w, "--\t----\t---\t------\t-----")
		for _, entry := range stock {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t$%d\n",
				entry.Pooch.ID,
				entry.Pooch.Name,
				entry.Pooch.Sex,
				entry.Pooch.Health,
				entry.Price,
			)
		}
		w.Flush()
		return nil
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy [server-id] [owner-discord-id] [vendor-id] [pooch-id]",
	Short: "Buy a pooch from a vendor",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ids := make([]int64, 4)
		for i, label := range []string{"server-id", "owner-discord-id", "vendor-id", "pooch-id"} {
			id, err := parseID(label, args[i])
			if err != nil {
				return err
			}
			ids[i] = id
		}

		bought, err := wire.VendorService().BuyPooch(ctx, ids[0], ids[1], ids[2], ids[3])
		if err != nil {
			return fmt.Errorf("purchase failed: %w", err)
		}

		fmt.Printf("%s (#%d) now belongs to owner %d.\n", bought.Name, bought.ID, ids[1])
		return nil
	},
}

var vendorRestockCmd = &cobra.Command{
	Use:   "restock [server-id]",
	Short: "Force a vendor restock outside the day change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		serverID, err := parseID("server-id", args[0])
		if err != nil {
			return err
		}
		seed, _ := cmd.Flags().GetInt64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}

		if err := wire.VendorService().RestockServer(ctx, serverID, seed); err != nil {
			return fmt.Errorf("restock failed: %w", err)
		}

		fmt.Println("Vendors restocked.")
		return nil
	},
}

func init() {
	vendorRestockCmd.Flags().Int64("seed", 0, "Random seed (defaults to the current time)")

	vendorCmd.AddCommand(vendorListCmd)
	vendorCmd.AddCommand(vendorStockCmd)
	vendorCmd.AddCommand(vendorRestockCmd)
}

// VendorCmd returns the vendor command tree.
func VendorCmd() *cobra.Command {
	return vendorCmd
}

// BuyCmd returns the buy command.
func BuyCmd() *cobra.Command {
	return buyCmd
}
