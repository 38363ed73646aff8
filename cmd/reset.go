package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Sign out and delete locally saved progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := context.Background()
		b, err := newBackend(cfg, db, zap.NewNop())
		if err != nil {
			return err
		}
		if err := b.SignOut(ctx); err != nil {
			return fmt.Errorf("sign out: %w", err)
		}

		n, err := db.SnapshotRepo().DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("delete snapshots: %w", err)
		}
		fmt.Printf("Signed out. Deleted %d saved snapshot(s).\n", n)
		return nil
	},
}
