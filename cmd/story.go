package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fablingo/fablingo/internal/engine"
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Generate the learner's next story",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		sess, err := openSession(cmd, true)
		if err != nil {
			return err
		}
		defer sess.Close()

		ctx := cmd.Context()
		if all {
			return generateForAll(cmd, sess)
		}

		userID, err := learnerID(cmd)
		if err != nil {
			return err
		}
		out, err := sess.svc.GenerateStory(ctx, userID)
		if err != nil {
			return err
		}
		printStory(out)
		return nil
	},
}

func init() {
	storyCmd.Flags().Bool("all", false, "Generate one story for every learner")
}

// generateForAll runs story generation for every learner with a
// profile, through the bounded worker pool.
func generateForAll(cmd *cobra.Command, sess *session) error {
	ctx := cmd.Context()
	userIDs, err := sess.store.ProfileRepo().ListUserIDs(ctx)
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		fmt.Println("No learners found.")
		return nil
	}

	err = engine.ForEachUser(ctx, userIDs, sess.cfg.Batch.Concurrency,
		func(ctx context.Context, userID string) error {
			out, err := sess.svc.GenerateStory(ctx, userID)
			if err != nil {
				return fmt.Errorf("user %s: %w", userID, err)
			}
			status := "ok"
			if !out.Accepted {
				status = "degraded"
			}
			fmt.Printf("%-16s %s (%s, %s)\n", userID, status, out.Tone, out.Theme)
			return nil
		})
	return err
}

func printStory(out *engine.StoryOutcome) {
	fmt.Printf("%s\n", out.Story.Title)
	fmt.Printf("stage %d · %s · %s\n\n", out.Stage.Stage, out.Tone, out.Theme)

	for _, sent := range out.Story.Sentences {
		fmt.Printf("  %s\n", sent.Text)
		if sent.Gloss != "" && sent.Gloss != sent.Text {
			fmt.Printf("    %s\n", sent.Gloss)
		}
	}

	if len(out.NewWords) > 0 {
		var pairs []string
		for _, w := range out.NewWords {
			pairs = append(pairs, fmt.Sprintf("%s (%s)", w.Word, w.Translation))
		}
		fmt.Printf("\nNew here: %s\n", strings.Join(pairs, ", "))
	}

	if !out.Accepted {
		fmt.Printf("\n(note: this story bent the rules after %d attempts)\n", out.Attempts)
	}
}
