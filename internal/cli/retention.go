package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkolosov/noteflow-srs/internal/fsrs"
)

func init() {
	cmd := &cobra.Command{
		Use:   "retention",
		Short: "Compute retrievability for a stability and elapsed time",
		Run:   runRetention,
	}

	cmd.Flags().Float64P("stability", "s", 0, "Stability in days (required)")
	cmd.Flags().IntP("elapsed", "e", 0, "Elapsed days since the last review")

	// Errs only on an unregistered flag name.
	_ = cmd.MarkFlagRequired("stability") //nolint:errcheck

	RootCmd.AddCommand(cmd)
}

func runRetention(cmd *cobra.Command, args []string) {
	stability, _ := cmd.Flags().GetFloat64("stability")
	elapsed, _ := cmd.Flags().GetInt("elapsed")

	p := engineParams()
	printJSON(struct {
		Retrievability float64 `json:"retrievability"`
		Interval       int     `json:"interval"`
	}{
		Retrievability: fsrs.Retrievability(p, stability, elapsed),
		Interval:       fsrs.NextInterval(p, stability),
	})
}
