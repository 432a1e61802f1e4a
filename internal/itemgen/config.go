package itemgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run on every generated item, in order. The first
	// failure rejects the whole batch.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls output randomness (0.0 - 1.0).
	Temperature float64

	// MaxAvoidQuestions caps how many existing questions are listed in
	// the prompt for deduplication.
	MaxAvoidQuestions int
}

// DefaultConfig returns the standard validator chain and limits.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		MaxTokens:         2048,
		Temperature:       0.7,
		MaxAvoidQuestions: 12,
	}
}
