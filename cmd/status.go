package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vibetune/internal/placement"
	"github.com/abhisek/vibetune/internal/state"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the saved learner state and LLM usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := context.Background()
		saved, err := state.NewSnapshotPersister(db.SnapshotRepo(), zap.NewNop()).Load(ctx)
		if err != nil {
			return err
		}
		if saved == nil {
			fmt.Println("No saved state.")
		} else {
			printSaved(saved)
		}

		usage, err := db.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		var calls, tokens int
		for _, u := range usage {
			calls += u.Calls
			tokens += u.InputTokens + u.OutputTokens
		}
		fmt.Printf("LLM calls:     %d (%d tokens)\n", calls, tokens)
		return nil
	},
}

func printSaved(saved *state.Persisted) {
	if u := saved.User; u != nil {
		fmt.Printf("User:          %s <%s>\n", u.Username, u.Email)
		level := "Not assessed"
		if u.PlacementTestCompleted {
			level = u.Level.DisplayName()
		}
		fmt.Printf("Level:         %s\n", level)
	} else {
		fmt.Println("User:          (signed out)")
	}

	if p := saved.Placement; p.Started {
		fmt.Printf("Placement:     question %d of %d, %d answered\n",
			p.CurrentQuestion+1, len(placement.Questions), len(p.Completed))
	} else {
		fmt.Println("Placement:     not started")
	}
	fmt.Printf("Unsent:        %d message(s)\n", len(saved.RetryQueue))
}
