package domain

import (
	"errors"
	"testing"
)

func TestParseGrade(t *testing.T) {
	for _, s := range []string{"AGAIN", "HARD", "GOOD", "EASY"} {
		g, err := ParseGrade(s)
		if err != nil {
			t.Errorf("ParseGrade(%q): unexpected error %v", s, err)
			continue
		}
		if g.String() != s {
			t.Errorf("ParseGrade(%q) = %q", s, g)
		}
	}
}

func TestParseGrade_Invalid(t *testing.T) {
	for _, s := range []string{"", "good", "Good", "OK", "3"} {
		_, err := ParseGrade(s)
		if err == nil {
			t.Errorf("ParseGrade(%q): expected error", s)
			continue
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("ParseGrade(%q): error %v does not wrap ErrValidation", s, err)
		}

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("ParseGrade(%q): error is not a *ValidationError", s)
		} else if len(verr.Errors) != 1 || verr.Errors[0].Field != "grade" {
			t.Errorf("ParseGrade(%q): unexpected field errors %+v", s, verr.Errors)
		}
	}
}

func TestReviewGradeIsValid(t *testing.T) {
	valid := []ReviewGrade{ReviewGradeAgain, ReviewGradeHard, ReviewGradeGood, ReviewGradeEasy}
	for _, g := range valid {
		if !g.IsValid() {
			t.Errorf("%q should be valid", g)
		}
	}
	if ReviewGrade("MAYBE").IsValid() {
		t.Error("MAYBE should be invalid")
	}
}
