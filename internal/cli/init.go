package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/poochyard/internal/config"
	"github.com/example/poochyard/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize poochyard in the current directory",
		Long:  `Write .poochyard/config.json and create the SQLite database with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			if _, err := config.Load(cwd); err == nil {
				fmt.Println("Already initialized.")
				return nil
			}

			cfg := config.Default()
			if stage, _ := cmd.Flags().GetString("stage"); stage != "" {
				cfg.Stage = stage
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(cwd, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Println("✓ Config written to .poochyard/config.json")

			database, err := db.OpenSQLite(cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			database.Close()
			fmt.Printf("✓ Database initialized at %s\n", cfg.DatabasePath)

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  poochyard owner show <server-id> <your-discord-id>")
			fmt.Println("  poochyard day run")

			return nil
		},
	}

	cmd.Flags().String("stage", "", "Stage to configure (dev|prod)")
	return cmd
}
