package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fablingo/fablingo/internal/intro"
)

var teachCmd = &cobra.Command{
	Use:   "teach",
	Short: "Introduce the learner's next batch of words",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := learnerID(cmd)
		if err != nil {
			return err
		}
		n, _ := cmd.Flags().GetInt("count")

		sess, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer sess.Close()

		batch, err := sess.svc.IntroduceBatch(cmd.Context(), userID, n)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			fmt.Println("No new words left: the corpus is exhausted for this learner.")
			return nil
		}

		fmt.Printf("New words (%d):\n\n", len(batch))
		for _, item := range batch {
			fmt.Printf("  %-14s %-11s %s\n", item.Word, "("+item.PartOfSpeech+")", item.Translation)
		}
		fmt.Println("\nReview them with `fablingo review <word>` as you practice.")
		return nil
	},
}

func init() {
	teachCmd.Flags().IntP("count", "n", intro.DefaultBatchSize, "Words to introduce")
}
