// Package corpus supplies frequency-ranked word lists per target
// language. The corpus is static, read-only data: it is safe to share
// one provider process-wide with no invalidation.
package corpus

import (
	"fmt"
	"strings"
)

// Word is one entry of a language corpus.
type Word struct {
	Word         string
	Lemma        string
	Translation  string
	PartOfSpeech string

	// Rank is the frequency rank within the language. Bootstrap words
	// occupy ranks 1-10; the open corpus continues from 11.
	Rank int
}

// BootstrapSize is the size of the curated first-words set: five verbs
// followed by five nouns, identical for every learner of a language.
const BootstrapSize = 10

// Provider supplies the bootstrap set and the open frequency corpus.
type Provider interface {
	// Bootstrap returns the curated first ten words for the language,
	// verbs before nouns, in rank order.
	Bootstrap(language string) ([]Word, error)

	// NextByFrequency returns up to n corpus words in ascending rank,
	// skipping any lemma present in exclude (normalized lowercase).
	// A short result means the corpus is exhausted; that is not an
	// error.
	NextByFrequency(language string, exclude map[string]bool, n int) ([]Word, error)
}

// Static is a Provider over the in-package curated corpora.
type Static struct{}

// NewStatic returns the process-wide static corpus provider.
func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Bootstrap(language string) ([]Word, error) {
	c, err := tableFor(language)
	if err != nil {
		return nil, err
	}
	out := make([]Word, BootstrapSize)
	copy(out, c[:BootstrapSize])
	return out, nil
}

func (s *Static) NextByFrequency(language string, exclude map[string]bool, n int) ([]Word, error) {
	c, err := tableFor(language)
	if err != nil {
		return nil, err
	}

	var out []Word
	for _, w := range c[BootstrapSize:] {
		if exclude[strings.ToLower(w.Lemma)] {
			continue
		}
		out = append(out, w)
		if len(out) == n {
			break
		}
	}
	return out, nil
}

// Languages returns the supported language codes.
func (s *Static) Languages() []string {
	return []string{"es", "fr"}
}

func tableFor(language string) ([]Word, error) {
	switch strings.ToLower(language) {
	case "es":
		return spanish, nil
	case "fr":
		return french, nil
	default:
		return nil, fmt.Errorf("unsupported language %q", language)
	}
}
