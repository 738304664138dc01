package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkolosov/noteflow-srs/internal/domain"
)

func init() {
	cmd := &cobra.Command{
		Use:   "due",
		Short: "Check whether a next-review date has been reached",
		Run:   runDue,
	}

	cmd.Flags().StringP("next", "n", "", "Next review date YYYY-MM-DD (required)")
	cmd.Flags().StringP("today", "t", "", "Reference date YYYY-MM-DD (required)")

	// Errs only on an unregistered flag name.
	_ = cmd.MarkFlagRequired("next")  //nolint:errcheck
	_ = cmd.MarkFlagRequired("today") //nolint:errcheck

	RootCmd.AddCommand(cmd)
}

func runDue(cmd *cobra.Command, args []string) {
	next, _ := cmd.Flags().GetString("next")
	today, _ := cmd.Flags().GetString("today")

	days, err := domain.DaysUntilDue(next, today)
	if err != nil {
		exitErr("due", err)
	}

	printJSON(struct {
		Due          bool `json:"due"`
		DaysUntilDue int  `json:"daysUntilDue"`
	}{days <= 0, days})
}
