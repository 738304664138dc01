// Package cli implements the noteflow CLI commands: offline access to
// the scheduling engine for collaborator debugging and golden-output
// generation.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkolosov/noteflow-srs/internal/config"
	"github.com/mkolosov/noteflow-srs/internal/fsrs"
)

var (
	versionFlag     int
	retentionFlag   float64
	weightsFlag     string
	lapseMinFlag    int
	maxIntervalFlag int
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "noteflow",
	Short: "FSRS scheduling engine for topic reviews",
	Long:  "Offline access to the noteflow spaced-repetition engine: preview schedules, apply grades to topic records, and inspect retrievability. Records in, records out — nothing is persisted.",
}

func init() {
	RootCmd.PersistentFlags().IntVar(&versionFlag, "srs-version", 5, "FSRS version: 5 or 6")
	RootCmd.PersistentFlags().Float64Var(&retentionFlag, "retention", 0.9, "Requested retention (0.01..0.999)")
	RootCmd.PersistentFlags().StringVar(&weightsFlag, "weights", "", "Comma-separated custom weights (default: version defaults)")
	RootCmd.PersistentFlags().IntVar(&lapseMinFlag, "lapse-min", 0, "Minimum interval in days after a lapse (0..7)")
	RootCmd.PersistentFlags().IntVar(&maxIntervalFlag, "max-interval", 36500, "Maximum interval in days")
}

// engineParams builds resolved engine parameters from the global flags.
// Malformed weights degrade to the version defaults, matching the
// engine's never-reject contract.
func engineParams() fsrs.Params {
	weights, err := config.ParseWeights(weightsFlag)
	if err != nil {
		weights = nil
	}
	return fsrs.Params{
		Version:              fsrs.Version(versionFlag),
		RequestedRetention:   retentionFlag,
		Weights:              weights,
		LapseMinIntervalDays: lapseMinFlag,
		MaxIntervalDays:      maxIntervalFlag,
	}.Resolve()
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr("encode output", err)
	}
	fmt.Println(string(out))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
