package storygen

// Config controls the behavior of the LLMGenerator and the repair loop.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated story. They execute in order; the first failure stops
	// the pipeline for that attempt.
	Validators []Validator

	// MaxRetries is the number of re-invocations after the first
	// attempt fails validation.
	MaxRetries int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators:  DefaultValidators(),
		MaxRetries:  2,
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}
