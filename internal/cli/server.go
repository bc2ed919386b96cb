package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/poochyard/internal/wire"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Manage servers",
	Long:  "List known servers and configure where day-change events are announced.",
}

var serverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		servers, err := wire.ServerService().ListServers(ctx)
		if err != nil {
			return fmt.Errorf("failed to list servers: %w", err)
		}

		if len(servers) == 0 {
			fmt.Println("No servers found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEVENT CHANNEL\tCREATED")
		fmt.Fprintln(w, "--\t-------------\t-------")
		for _, server := range servers {
			channel := "-"
			if server.EventChannelID != nil {
				channel = strconv.FormatInt(*server.EventChannelID, 10)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", server.ID, channel, server.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var serverChannelCmd = &cobra.Command{
	Use:   "set-event-channel [server-id] [channel-id]",
	Short: "Set where day-change events are announced",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		serverID, err := parseID("server-id", args[0])
		if err != nil {
			return err
		}
		channelID, err := parseID("channel-id", args[1])
		if err != nil {
			return err
		}

		if _, err := wire.ServerService().GetOrCreateServer(ctx, serverID); err != nil {
			return fmt.Errorf("failed to ensure server: %w", err)
		}
		if err := wire.ServerService().SetEventChannel(ctx, serverID, channelID); err != nil {
			return fmt.Errorf("failed to set event channel: %w", err)
		}

		fmt.Printf("Server %d will announce day changes in channel %d.\n", serverID, channelID)
		return nil
	},
}

func init() {
	serverCmd.AddCommand(serverListCmd)
	serverCmd.AddCommand(serverChannelCmd)
}

// ServerCmd returns the server command tree.
func ServerCmd() *cobra.Command {
	return serverCmd
}
