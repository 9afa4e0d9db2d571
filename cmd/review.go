package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fablingo/fablingo/internal/words"
)

var reviewCmd = &cobra.Command{
	Use:   "review <word>",
	Short: "Record one review outcome for a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := learnerID(cmd)
		if err != nil {
			return err
		}
		missed, _ := cmd.Flags().GetBool("miss")

		sess, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer sess.Close()

		w, err := sess.svc.SubmitReview(cmd.Context(), userID, args[0], !missed)
		if err != nil {
			return err
		}

		switch {
		case w.Status == words.StatusMastered && w.CorrectStreak == 3:
			fmt.Printf("%s mastered! (%d/%d correct overall)\n", w.Word, w.TotalCorrect, w.TotalReviews)
		case missed:
			fmt.Printf("%s back to learning, streak reset. (%d/%d correct overall)\n",
				w.Word, w.TotalCorrect, w.TotalReviews)
		default:
			fmt.Printf("%s: %s, streak %d. (%d/%d correct overall)\n",
				w.Word, w.Status, w.CorrectStreak, w.TotalCorrect, w.TotalReviews)
		}
		return nil
	},
}

func init() {
	reviewCmd.Flags().Bool("miss", false, "Record the review as incorrect")
}
