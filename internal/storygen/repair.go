package storygen

import (
	"context"
	"fmt"
)

// Result is the tagged outcome of the generate-validate-repair loop.
type Result struct {
	// Story is the accepted output. Non-nil whenever the loop returns
	// without error, even when Accepted is false.
	Story *Story

	// Accepted is true when the story passed every rule. False means
	// the story is degraded: retries were exhausted and the last
	// parseable output was accepted anyway.
	Accepted bool

	// Attempts is the number of generator invocations made.
	Attempts int

	// Violations holds the rule failures of the final attempt. Empty
	// when Accepted is true.
	Violations []string
}

// GenerateValidated runs the generate-validate-repair loop: invoke gen,
// check the output against rules, and re-invoke with the same request
// on rule violations, up to maxRetries re-invocations. No backoff is
// used between attempts: rule violations are correctness failures, not
// transient infrastructure failures, and the generator's
// non-determinism is the retry's only lever.
//
// The loop fails open. When retries are exhausted and a parseable story
// exists, that story is returned with Accepted=false and its violations
// recorded; serving a slightly-imperfect story beats refusing the
// request. Only when every attempt failed at the generator itself does
// the loop return an error.
func GenerateValidated(ctx context.Context, gen Generator, req StoryRequest, rules RuleSet, cfg Config) (*Result, error) {
	maxAttempts := cfg.MaxRetries + 1

	var lastStory *Story
	var lastViolations []string
	var lastErr error
	attempts := 0

	for range maxAttempts {
		if err := ctx.Err(); err != nil {
			break
		}
		attempts++

		story, err := gen.Generate(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		lastStory = story

		lastViolations = check(story, rules, cfg.Validators)
		if len(lastViolations) == 0 {
			return &Result{Story: story, Accepted: true, Attempts: attempts}, nil
		}
	}

	if lastStory != nil {
		return &Result{
			Story:      lastStory,
			Accepted:   false,
			Attempts:   attempts,
			Violations: lastViolations,
		}, nil
	}

	if lastErr == nil {
		lastErr = ctx.Err()
	}
	return nil, fmt.Errorf("all %d generation attempts failed: %w", attempts, lastErr)
}

// check runs the validator chain and collects every failure.
func check(s *Story, rules RuleSet, validators []Validator) []string {
	var out []string
	for _, v := range validators {
		if verr := v.Validate(s, rules); verr != nil {
			out = append(out, verr.Error())
		}
	}
	return out
}
