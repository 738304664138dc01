package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkolosov/noteflow-srs/internal/fsrs"
)

func init() {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Evaluate all four grades for a memory state",
		Run:   runPreview,
	}

	cmd.Flags().Float64P("stability", "s", 0, "Current stability in days (0 = first review)")
	cmd.Flags().Float64P("difficulty", "d", 0, "Current difficulty (1..10)")
	cmd.Flags().IntP("elapsed", "e", 0, "Days since the last review")

	RootCmd.AddCommand(cmd)
}

type previewRow struct {
	Grade         string  `json:"grade"`
	Difficulty    float64 `json:"difficulty"`
	Stability     float64 `json:"stability"`
	ScheduledDays int     `json:"scheduledDays"`
}

func runPreview(cmd *cobra.Command, args []string) {
	stability, _ := cmd.Flags().GetFloat64("stability")
	difficulty, _ := cmd.Flags().GetFloat64("difficulty")
	elapsed, _ := cmd.Flags().GetInt("elapsed")

	state := fsrs.MemoryState{Difficulty: difficulty, Stability: stability}
	entries := fsrs.PreviewAll(engineParams(), state, elapsed)

	rows := make([]previewRow, 0, len(entries))
	names := []string{"AGAIN", "HARD", "GOOD", "EASY"}
	for i, e := range entries {
		rows = append(rows, previewRow{
			Grade:         names[i],
			Difficulty:    e.State.Difficulty,
			Stability:     e.State.Stability,
			ScheduledDays: e.ScheduledDays,
		})
	}
	printJSON(rows)
}
