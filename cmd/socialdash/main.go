package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/socialdash/internal/interfaces/cli/cliutil"
	"github.com/orris-inc/socialdash/internal/interfaces/cli/platforms"
	"github.com/orris-inc/socialdash/internal/interfaces/cli/server"
	"github.com/orris-inc/socialdash/internal/interfaces/cli/store"
)

func main() {
	cliutil.LoadDotEnv()

	rootCmd := &cobra.Command{
		Use:   "socialdash",
		Short: "socialdash - social media dashboard backend",
		Long:  `socialdash serves the post, media and connected-account API of the social media dashboard, with simulated OAuth providers.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		store.NewCommand(),
		platforms.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
