// Package store provides maintenance commands for the key/value store.
package store

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/socialdash/internal/infrastructure/kvstore"
	"github.com/orris-inc/socialdash/internal/interfaces/cli/cliutil"
	"github.com/orris-inc/socialdash/internal/shared/biztime"
)

var (
	env   string
	force bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Key/value store maintenance",
		Long:  `Remove expired entries or wipe every entry of the configured storage backend.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored entry",
		RunE:  runClear,
	}
	clearCmd.Flags().BoolVar(&force, "force", false, "Confirm deleting all data")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "sweep",
			Short: "Remove expired entries",
			RunE:  runSweep,
		},
		clearCmd,
	)

	return cmd
}

func openStore(ctx context.Context) (*kvstore.Handle, error) {
	cfg, log, err := cliutil.Setup(cliutil.ResolveEnv(env))
	if err != nil {
		return nil, err
	}
	return kvstore.Open(ctx, kvstore.Settings{
		Storage:  cfg.Storage,
		Redis:    cfg.Redis,
		Database: cfg.Database,
	}, biztime.SystemClock(), log)
}

func runSweep(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	h, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer h.Close()

	removed, err := h.Store.Sweep(ctx)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired entries\n", removed)
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	if !force {
		return fmt.Errorf("refusing to clear all data without --force")
	}

	ctx := cmd.Context()
	h, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer h.Close()

	if err := h.Store.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "all entries removed")
	return nil
}
