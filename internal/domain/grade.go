package domain

// ReviewGrade represents the learner's self-assessed recall quality.
type ReviewGrade string

const (
	ReviewGradeAgain ReviewGrade = "AGAIN"
	ReviewGradeHard  ReviewGrade = "HARD"
	ReviewGradeGood  ReviewGrade = "GOOD"
	ReviewGradeEasy  ReviewGrade = "EASY"
)

func (g ReviewGrade) String() string { return string(g) }

func (g ReviewGrade) IsValid() bool {
	switch g {
	case ReviewGradeAgain, ReviewGradeHard, ReviewGradeGood, ReviewGradeEasy:
		return true
	}
	return false
}

// ParseGrade validates an externally supplied grade string.
func ParseGrade(s string) (ReviewGrade, error) {
	g := ReviewGrade(s)
	if !g.IsValid() {
		return "", NewValidationError("grade", "must be one of AGAIN, HARD, GOOD, EASY")
	}
	return g, nil
}
