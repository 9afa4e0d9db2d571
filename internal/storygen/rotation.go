package storygen

import "math/rand/v2"

// Tones is the fixed emotional-tone palette for stories.
var Tones = []string{"curious", "playful", "calm", "adventurous", "warm"}

// InterestCount is the exact number of interests a profile must carry
// for theme rotation.
const InterestCount = 3

// RotationState tracks what the previous story used, so consecutive
// stories never repeat a tone and themes cycle through all interests.
type RotationState struct {
	// LastTone is the tone of the previous story, or "" for the first.
	LastTone string

	// ThemeIndex is the interest index the next story will use.
	ThemeIndex int
}

// NextTone picks a tone uniformly from Tones excluding the previous
// one. The rng is injected so tests can seed it.
func NextTone(state RotationState, rng *rand.Rand) string {
	pool := make([]string, 0, len(Tones))
	for _, t := range Tones {
		if t != state.LastTone {
			pool = append(pool, t)
		}
	}
	return pool[rng.IntN(len(pool))]
}

// NextTheme returns the interest for the next story. Themes round-robin
// over exactly three configured interests.
func NextTheme(interests []string, state RotationState) string {
	return interests[state.ThemeIndex%InterestCount]
}

// Advance returns the rotation state after a story with the given tone.
func (s RotationState) Advance(tone string) RotationState {
	return RotationState{
		LastTone:   tone,
		ThemeIndex: (s.ThemeIndex + 1) % InterestCount,
	}
}
