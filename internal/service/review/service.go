// Package review applies spaced-repetition grades to topic records.
// The service is stateless: every operation is a deterministic function
// of (record, grade, params, today); the only non-determinism is the
// optional fuzz source injected at construction.
package review

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/mkolosov/noteflow-srs/internal/domain"
	"github.com/mkolosov/noteflow-srs/internal/fsrs"
)

// Service exposes the engine operations over collaborator topic records.
type Service struct {
	params fsrs.Params
	rng    *rand.Rand // fuzz source; nil disables fuzz
	log    *slog.Logger
}

// NewService creates a review service. Params are resolved once here;
// malformed configuration degrades to defaults. A nil rng disables
// interval fuzz, which golden-output tests rely on.
func NewService(params fsrs.Params, rng *rand.Rand, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		params: params.Resolve(),
		rng:    rng,
		log:    logger.With("service", "review"),
	}
}

// Params returns the resolved engine configuration.
func (s *Service) Params() fsrs.Params { return s.params }

// ApplyGrade applies one grade to one topic record and returns the
// replacement record plus the history artifact. The input record is not
// mutated; appending the ReviewRecord to history and persisting the
// replacement are the caller's responsibility.
func (s *Service) ApplyGrade(ctx context.Context, input ApplyGradeInput) (domain.TopicRecord, domain.ReviewRecord, error) {
	if err := input.Validate(); err != nil {
		return domain.TopicRecord{}, domain.ReviewRecord{}, err
	}

	today, err := domain.ParseDate(input.Today)
	if err != nil {
		return domain.TopicRecord{}, domain.ReviewRecord{}, err
	}

	elapsed, err := elapsedDays(input.Record, input.Today, input.ElapsedDays)
	if err != nil {
		return domain.TopicRecord{}, domain.ReviewRecord{}, err
	}

	grade := mapGrade(input.Grade)
	state := fsrs.MemoryState{
		Difficulty: input.Record.Difficulty,
		Stability:  input.Record.Stability,
	}

	upd := fsrs.NextState(s.params, state, grade, elapsed)
	sched := fsrs.Schedule(s.params, upd, grade, today, s.rng)

	record := input.Record
	record.Difficulty = sched.State.Difficulty
	record.Stability = sched.State.Stability
	record.LastReviewDate = domain.FormatDate(today)
	record.NextReviewDate = domain.FormatDate(sched.NextReview)

	reviewLog := domain.ReviewRecord{
		Grade:            input.Grade,
		ReviewDate:       record.LastReviewDate,
		ElapsedDays:      elapsed,
		DifficultyBefore: upd.Prev.Difficulty,
		DifficultyAfter:  upd.State.Difficulty,
		StabilityBefore:  upd.Prev.Stability,
		StabilityAfter:   upd.State.Stability,
		Interval:         sched.Interval,
		ScheduledDays:    sched.ScheduledDays,
		Retrievability:   upd.Retrievability,
	}

	s.log.InfoContext(ctx, "topic reviewed",
		slog.String("topic_id", input.Record.ID.String()),
		slog.String("grade", string(input.Grade)),
		slog.Int("elapsed_days", elapsed),
		slog.Int("scheduled_days", sched.ScheduledDays),
		slog.Float64("stability", record.Stability),
		slog.Float64("difficulty", record.Difficulty),
	)

	return record, reviewLog, nil
}

// Preview evaluates all four grades read-only, with no fuzz and no
// mutation. ScheduledDays is strictly increasing Again -> Easy.
func (s *Service) Preview(input PreviewInput) ([4]domain.PreviewOutcome, error) {
	if err := input.Validate(); err != nil {
		return [4]domain.PreviewOutcome{}, err
	}

	elapsed := 0
	if input.ElapsedDays != nil {
		elapsed = *input.ElapsedDays
		if elapsed < 0 {
			elapsed = 0
		}
	} else {
		var err error
		elapsed, err = elapsedDays(input.Record, input.Today, nil)
		if err != nil {
			return [4]domain.PreviewOutcome{}, err
		}
	}

	state := fsrs.MemoryState{
		Difficulty: input.Record.Difficulty,
		Stability:  input.Record.Stability,
	}

	entries := fsrs.PreviewAll(s.params, state, elapsed)

	var out [4]domain.PreviewOutcome
	for i, e := range entries {
		out[i] = domain.PreviewOutcome{
			Grade:         gradeName(e.Grade),
			Difficulty:    e.State.Difficulty,
			Stability:     e.State.Stability,
			ScheduledDays: e.ScheduledDays,
		}
	}
	return out, nil
}

// Retrievability returns the modeled recall probability for a record at
// the given reference date ("due soon" badges).
func (s *Service) Retrievability(record domain.TopicRecord, today string) (float64, error) {
	elapsed, err := elapsedDays(record, today, nil)
	if err != nil {
		return 0, err
	}
	return fsrs.Retrievability(s.params, record.Stability, elapsed), nil
}

// IsDue reports whether the record's next review date has been reached.
func (s *Service) IsDue(record domain.TopicRecord, today string) (bool, error) {
	return domain.IsDue(record.NextReviewDate, today)
}

// DaysUntilDue returns days from today to the record's next review.
func (s *Service) DaysUntilDue(record domain.TopicRecord, today string) (int, error) {
	return domain.DaysUntilDue(record.NextReviewDate, today)
}

// elapsedDays derives the review gap. An explicit override wins; a
// never-reviewed record counts as 0; a last review in the future counts
// as 0 rather than going negative.
func elapsedDays(record domain.TopicRecord, today string, override *int) (int, error) {
	if override != nil {
		if *override < 0 {
			return 0, nil
		}
		return *override, nil
	}
	if record.LastReviewDate == "" {
		return 0, nil
	}
	last, err := domain.ParseDate(record.LastReviewDate)
	if err != nil {
		return 0, err
	}
	now, err := domain.ParseDate(today)
	if err != nil {
		return 0, err
	}
	days := domain.DaysBetween(last, now)
	if days < 0 {
		days = 0
	}
	return days, nil
}

// mapGrade maps the domain grade to the engine grade. Inputs are
// validated before mapping; an unknown value here is a programming
// error and panics inside the engine.
func mapGrade(g domain.ReviewGrade) fsrs.Grade {
	switch g {
	case domain.ReviewGradeAgain:
		return fsrs.Again
	case domain.ReviewGradeHard:
		return fsrs.Hard
	case domain.ReviewGradeGood:
		return fsrs.Good
	default:
		return fsrs.Easy
	}
}

func gradeName(g fsrs.Grade) domain.ReviewGrade {
	switch g {
	case fsrs.Again:
		return domain.ReviewGradeAgain
	case fsrs.Hard:
		return domain.ReviewGradeHard
	case fsrs.Good:
		return domain.ReviewGradeGood
	default:
		return domain.ReviewGradeEasy
	}
}
