package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkolosov/noteflow-srs/internal/domain"
	"github.com/mkolosov/noteflow-srs/internal/service/review"
)

func init() {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Apply a grade to a topic record",
		Long:  "Reads a topic record as JSON from --record (or stdin with \"-\"), applies the grade, and prints the replacement record plus the review log entry.",
		Run:   runReview,
	}

	cmd.Flags().StringP("grade", "g", "", "Grade: AGAIN, HARD, GOOD, EASY (required)")
	cmd.Flags().StringP("record", "r", "-", "Path to the record JSON, or - for stdin")
	cmd.Flags().StringP("today", "t", "", "Reference date YYYY-MM-DD (required)")
	cmd.Flags().Int("elapsed", -1, "Override elapsed days (default: derived from lastReviewDate)")
	cmd.Flags().Int64("fuzz-seed", 0, "Enable interval fuzz with this seed (0 = no fuzz)")

	// Errs only on an unregistered flag name.
	_ = cmd.MarkFlagRequired("grade") //nolint:errcheck
	_ = cmd.MarkFlagRequired("today") //nolint:errcheck

	RootCmd.AddCommand(cmd)
}

func runReview(cmd *cobra.Command, args []string) {
	gradeStr, _ := cmd.Flags().GetString("grade")
	recordPath, _ := cmd.Flags().GetString("record")
	today, _ := cmd.Flags().GetString("today")
	elapsed, _ := cmd.Flags().GetInt("elapsed")
	seed, _ := cmd.Flags().GetInt64("fuzz-seed")

	record, err := readRecord(recordPath)
	if err != nil {
		exitErr("read record", err)
	}

	grade, err := domain.ParseGrade(gradeStr)
	if err != nil {
		exitErr("parse grade", err)
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed)) //nolint:gosec // scheduling jitter
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := review.NewService(engineParams(), rng, logger)

	input := review.ApplyGradeInput{Record: record, Grade: grade, Today: today}
	if elapsed >= 0 {
		input.ElapsedDays = &elapsed
	}

	replacement, reviewLog, err := svc.ApplyGrade(context.Background(), input)
	if err != nil {
		exitErr("apply grade", err)
	}

	printJSON(struct {
		Record       domain.TopicRecord  `json:"record"`
		ReviewRecord domain.ReviewRecord `json:"reviewRecord"`
	}{replacement, reviewLog})
}

func readRecord(path string) (domain.TopicRecord, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.TopicRecord{}, err
	}

	var record domain.TopicRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.TopicRecord{}, err
	}
	return record, nil
}
