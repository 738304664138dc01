package domain

import "github.com/google/uuid"

// TopicRecord is the per-topic memory record exchanged with the
// collaborator that owns persistence. Dates are ISO date-only strings
// ("2006-01-02"); an empty LastReviewDate marks a topic that has never
// been reviewed. The engine reads a record and returns a replacement —
// storing it and appending the produced ReviewRecord to ReviewHistory
// is the caller's responsibility.
type TopicRecord struct {
	ID             uuid.UUID      `json:"id"`
	Difficulty     float64        `json:"difficulty"`
	Stability      float64        `json:"stability"`
	LastReviewDate string         `json:"lastReviewDate,omitempty"`
	NextReviewDate string         `json:"nextReviewDate,omitempty"`
	ReviewHistory  []ReviewRecord `json:"reviewHistory,omitempty"`
}

// ReviewRecord is the history artifact produced by one review.
type ReviewRecord struct {
	Grade            ReviewGrade `json:"grade"`
	ReviewDate       string      `json:"reviewDate"`
	ElapsedDays      int         `json:"elapsedDays"`
	DifficultyBefore float64     `json:"difficultyBefore"`
	DifficultyAfter  float64     `json:"difficultyAfter"`
	StabilityBefore  float64     `json:"stabilityBefore"`
	StabilityAfter   float64     `json:"stabilityAfter"`
	Interval         int         `json:"interval"` // unfuzzed
	ScheduledDays    int         `json:"scheduledDays"`

	// Retrievability at review time; null for a first review.
	Retrievability *float64 `json:"retrievability"`
}

// PreviewOutcome is one read-only grade evaluation for the UI.
type PreviewOutcome struct {
	Grade         ReviewGrade `json:"grade"`
	Difficulty    float64     `json:"difficulty"`
	Stability     float64     `json:"stability"`
	ScheduledDays int         `json:"scheduledDays"`
}
