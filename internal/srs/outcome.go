package srs

import "fmt"

// Outcome is the graded result of a single review attempt, ordered from
// complete failure to perfect recall.
type Outcome string

const (
	OutcomeForgot Outcome = "forgot" // complete failure
	OutcomeHard   Outcome = "hard"   // recalled with difficulty
	OutcomeGood   Outcome = "good"   // correct with effort
	OutcomeEasy   Outcome = "easy"   // perfect recall
)

// ParseOutcome converts a string to an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomeForgot, OutcomeHard, OutcomeGood, OutcomeEasy:
		return Outcome(s), nil
	}
	return "", fmt.Errorf("unknown review outcome: %q", s)
}

// Success reports whether the outcome counts as a successful recall.
func (o Outcome) Success() bool {
	return o != OutcomeForgot
}
