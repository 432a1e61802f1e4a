package behavior

import "strings"

// Signal is a discrete struggle indicator raised during a help session.
// Each signal type is raised at most once per session.
type Signal string

const (
	SignalMultipleHints  Signal = "multiple_hints"  // hint requests reached threshold
	SignalLongDwell      Signal = "long_dwell"      // long elapsed time with minimal interaction
	SignalRepeatedErrors Signal = "repeated_errors" // same error kind repeated
	SignalCopyPaste      Signal = "copy_paste"      // excessive copy/paste
	SignalLowConfidence  Signal = "low_confidence"  // student says "I don't know"
	SignalRapidQuestions Signal = "rapid_questions" // many questions in a short window
)

// signalExplanations maps each signal to its human-readable explanation
// used when offering an intervention.
var signalExplanations = map[Signal]string{
	SignalMultipleHints:  "You've requested several hints",
	SignalLongDwell:      "You've been working on this for a while",
	SignalRepeatedErrors: "You're encountering the same error repeatedly",
	SignalCopyPaste:      "There's a lot of trial-and-error happening",
	SignalLowConfidence:  "You mentioned feeling confused",
	SignalRapidQuestions: "You have several questions coming up quickly",
}

// lowConfidencePhrases trigger the low_confidence signal when they appear
// in a logged question.
var lowConfidencePhrases = []string{
	"i don't know",
	"confused",
	"no idea",
	"lost",
	"don't understand",
}

// hasLowConfidence reports whether the question text contains a
// low-confidence phrase.
func hasLowConfidence(question string) bool {
	q := strings.ToLower(question)
	for _, phrase := range lowConfidencePhrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}

// ExplainSignals joins the explanations for up to the first three signals
// into a single sentence: "A", "A and B", or "A, B, and C".
func ExplainSignals(signals []Signal) string {
	var parts []string
	for i, s := range signals {
		if i == 3 {
			break
		}
		if exp, ok := signalExplanations[s]; ok {
			parts = append(parts, exp)
		} else {
			parts = append(parts, string(s))
		}
	}

	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}
