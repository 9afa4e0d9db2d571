package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fablingo/fablingo/internal/corpus"
	"github.com/fablingo/fablingo/internal/store"
	"github.com/fablingo/fablingo/internal/storygen"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start a learner over: wipe their progress and write a fresh profile",
	Long: "Reset deletes the learner's words, reviews, and stories, then saves a\n" +
		"new profile with the given target language and exactly three interests.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := learnerID(cmd)
		if err != nil {
			return err
		}
		language, _ := cmd.Flags().GetString("language")
		rawInterests, _ := cmd.Flags().GetString("interests")

		available := corpus.NewStatic().Languages()
		if !slices.Contains(available, language) {
			return fmt.Errorf("unsupported language %q (available: %s)",
				language, strings.Join(available, ", "))
		}
		interests := splitInterests(rawInterests)
		if len(interests) != storygen.InterestCount {
			return fmt.Errorf("exactly %d comma-separated interests required, got %d",
				storygen.InterestCount, len(interests))
		}

		sess, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer sess.Close()

		ctx := cmd.Context()
		db := sess.store.DB()
		for _, table := range []string{"learner_words", "review_events", "story_events"} {
			if _, err := db.ExecContext(ctx,
				fmt.Sprintf("DELETE FROM %s WHERE user_id = ?", table), userID); err != nil {
				return fmt.Errorf("wipe %s: %w", table, err)
			}
		}

		err = sess.store.ProfileRepo().Save(ctx, &store.Profile{
			UserID:         userID,
			TargetLanguage: language,
			Interests:      interests,
		})
		if err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		fmt.Printf("Profile ready: %s learning %s (interests: %s)\n",
			userID, language, strings.Join(interests, ", "))
		fmt.Println("Run `fablingo teach` to meet your first words.")
		return nil
	},
}

func splitInterests(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	resetCmd.Flags().StringP("language", "l", "es", "Target language code")
	resetCmd.Flags().StringP("interests", "i", "", "Exactly three comma-separated interests (e.g. space,cooking,music)")
	_ = resetCmd.MarkFlagRequired("interests")
}
