package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanmay/physiq/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past exam results",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open results history: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		results, err := st.ListResults(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No exams taken yet.")
			return nil
		}

		fmt.Printf("%-17s %-20s %7s %7s %9s %6s\n",
			"TAKEN", "CANDIDATE", "SCORE", "PCT", "TIME", "STATUS")
		for _, r := range results {
			name := r.CandidateName
			if name == "" {
				name = "(anonymous)"
			}
			status := "done"
			if r.Expired {
				status = "expired"
			}
			fmt.Printf("%-17s %-20s %3d/%-3d %6.1f%% %9s %6s\n",
				r.TakenAt.Local().Format("2006-01-02 15:04"),
				name,
				r.Score, r.Total,
				r.Percentage,
				r.TimeTaken.Round(time.Second),
				status,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of results to show (0 = all)")
}
