package engine

import "errors"

// Precondition errors are caller misuse, surfaced immediately and
// never retried internally.
var (
	// ErrNeedsIntroduction means a story was requested before any word
	// was introduced. The user must complete introduction first.
	ErrNeedsIntroduction = errors.New("no words available for a story: complete introduction first")

	// ErrInterestsRequired means the profile does not carry exactly
	// three interests for theme rotation.
	ErrInterestsRequired = errors.New("profile must configure exactly 3 interests")

	// ErrNoProfile means the user has no profile row yet.
	ErrNoProfile = errors.New("no profile: set a target language first")
)

// ErrGenerationFailed wraps generator/external failures (timeout,
// malformed output, network) after retries are exhausted. It is
// distinct from a rule-violation outcome, which fails open and is
// never surfaced as an error.
var ErrGenerationFailed = errors.New("story generation failed, try again")
