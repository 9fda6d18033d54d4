package main

import (
	"os"

	"github.com/spf13/cobra"

	"dormdesk/internal/interfaces/cli/migrate"
	"dormdesk/internal/interfaces/cli/server"
	"dormdesk/internal/interfaces/cli/sync"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dormdesk",
		Short: "DormDesk - hostel repair issue tracker",
		Long:  `DormDesk tracks hostel repair requests submitted through a form feed, reconciling new submissions into a reviewable issue queue.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		sync.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
