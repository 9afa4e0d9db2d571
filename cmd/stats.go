package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fablingo/fablingo/internal/stage"
	"github.com/fablingo/fablingo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the learner's progress and recent stories",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := learnerID(cmd)
		if err != nil {
			return err
		}

		sess, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer sess.Close()

		ctx := cmd.Context()
		p, err := sess.svc.GetProgress(ctx, userID)
		if err != nil {
			return err
		}

		fmt.Printf("Learner %s — %s\n\n", userID, p.Language)
		fmt.Printf("  Stage:      %d (%s)\n", p.Stage.Stage, p.Stage.Label)
		fmt.Printf("  Mastered:   %d\n", p.Mastered)
		fmt.Printf("  Learning:   %d\n", p.Learning)
		fmt.Printf("  Introduced: %d\n", p.Introduced)
		fmt.Printf("  Total:      %d\n", p.Total)
		printStageLadder(p.Stage.Stage, p.Mastered)

		stories, err := sess.store.EventRepo().ListStories(ctx, userID, store.QueryOpts{Limit: 5})
		if err != nil {
			return err
		}
		if len(stories) == 0 {
			return nil
		}

		fmt.Println("\nRecent stories")
		fmt.Println(strings.Repeat("─", 64))
		for _, ev := range stories {
			status := "ok"
			if !ev.Accepted {
				status = "degraded"
			}
			fmt.Printf("  %s  stage %d  %-12s %-12s %s\n",
				ev.Timestamp.Local().Format("2006-01-02 15:04"),
				ev.Stage, ev.Tone, ev.Theme, status)
		}
		return nil
	},
}

// printStageLadder shows how far the learner is from the next stage.
func printStageLadder(current, mastered int) {
	for _, cfg := range stage.All() {
		if cfg.Stage == current+1 {
			fmt.Printf("\n  Next stage at %d mastered words (%d to go).\n",
				cfg.MinMastery, cfg.MinMastery-mastered)
			return
		}
	}
	fmt.Println("\n  Top stage reached.")
}
