package review

import (
	"github.com/mkolosov/noteflow-srs/internal/domain"
)

// ApplyGradeInput is the request to apply one grade to one topic record.
type ApplyGradeInput struct {
	Record domain.TopicRecord
	Grade  domain.ReviewGrade

	// Today is the reference date (ISO date-only). Always supplied by
	// the caller, never read from a clock, so results are deterministic.
	Today string

	// ElapsedDays overrides the derived days between the record's last
	// review and Today. Negative values count as 0.
	ElapsedDays *int
}

// Validate checks externally supplied fields.
func (i ApplyGradeInput) Validate() error {
	var errs []domain.FieldError

	if !i.Grade.IsValid() {
		errs = append(errs, domain.FieldError{Field: "grade", Message: "must be one of AGAIN, HARD, GOOD, EASY"})
	}
	if _, err := domain.ParseDate(i.Today); err != nil {
		errs = append(errs, domain.FieldError{Field: "today", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if i.Record.LastReviewDate != "" {
		if _, err := domain.ParseDate(i.Record.LastReviewDate); err != nil {
			errs = append(errs, domain.FieldError{Field: "record.lastReviewDate", Message: "must be an ISO date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PreviewInput is the request to evaluate all four grades read-only.
type PreviewInput struct {
	Record      domain.TopicRecord
	Today       string
	ElapsedDays *int
}

// Validate checks externally supplied fields. Today may be omitted when
// an explicit ElapsedDays is given.
func (i PreviewInput) Validate() error {
	var errs []domain.FieldError

	if i.ElapsedDays == nil {
		if _, err := domain.ParseDate(i.Today); err != nil {
			errs = append(errs, domain.FieldError{Field: "today", Message: "must be an ISO date (YYYY-MM-DD)"})
		}
	}
	if i.Record.LastReviewDate != "" {
		if _, err := domain.ParseDate(i.Record.LastReviewDate); err != nil {
			errs = append(errs, domain.FieldError{Field: "record.lastReviewDate", Message: "must be an ISO date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
