package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fablingo/fablingo/internal/engine"
	"github.com/fablingo/fablingo/internal/exercise"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Generate a story plus the stage-matched exercise for it",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := learnerID(cmd)
		if err != nil {
			return err
		}

		sess, err := openSession(cmd, true)
		if err != nil {
			return err
		}
		defer sess.Close()

		ctx := cmd.Context()
		out, err := sess.svc.GenerateStory(ctx, userID)
		if err != nil {
			return err
		}
		printStory(out)

		res, err := sess.svc.BuildExercise(ctx, userID, out.Story, storyLemmas(out))
		if err != nil {
			return err
		}
		printExercise(res)
		return nil
	},
}

// storyLemmas collects the target-language lemmas the story actually
// used, so the exercise questions the same vocabulary.
func storyLemmas(out *engine.StoryOutcome) []string {
	seen := make(map[string]bool)
	var lemmas []string
	for _, sent := range out.Story.Sentences {
		for _, w := range sent.TargetWords {
			if !seen[w] {
				seen[w] = true
				lemmas = append(lemmas, w)
			}
		}
	}
	return lemmas
}

func printExercise(res *exercise.Result) {
	ex := res.Exercise
	fmt.Printf("\n── exercise (%s) ──\n\n", ex.Type)
	fmt.Println(ex.Prompt)
	if ex.Text != "" {
		fmt.Printf("\n  %s\n", ex.Text)
	}
	if len(ex.Choices) > 0 {
		fmt.Println()
		for i, c := range ex.Choices {
			fmt.Printf("  %c) %s\n", 'a'+i, c)
		}
	}
	if !res.Accepted {
		fmt.Printf("\n(note: this exercise bent the rules after %d attempts)\n", res.Attempts)
	}
}
