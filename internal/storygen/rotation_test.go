package storygen

import (
	"math/rand/v2"
	"testing"
)

func TestNextTone_NeverRepeatsPrevious(t *testing.T) {
	for seed := range uint64(50) {
		rng := rand.New(rand.NewPCG(seed, 0))
		state := RotationState{LastTone: "calm"}
		if tone := NextTone(state, rng); tone == "calm" {
			t.Fatalf("seed %d: tone repeated the previous one", seed)
		}
	}
}

func TestNextTone_FirstStoryMayUseAnyTone(t *testing.T) {
	seen := map[string]bool{}
	for seed := range uint64(200) {
		rng := rand.New(rand.NewPCG(seed, 0))
		seen[NextTone(RotationState{}, rng)] = true
	}
	if len(seen) != len(Tones) {
		t.Fatalf("expected all %d tones reachable, saw %d", len(Tones), len(seen))
	}
}

func TestNextTone_Deterministic(t *testing.T) {
	a := NextTone(RotationState{LastTone: "warm"}, rand.New(rand.NewPCG(7, 0)))
	b := NextTone(RotationState{LastTone: "warm"}, rand.New(rand.NewPCG(7, 0)))
	if a != b {
		t.Fatalf("same seed produced different tones: %q, %q", a, b)
	}
}

func TestNextTheme_RoundRobin(t *testing.T) {
	interests := []string{"space", "cooking", "music"}
	state := RotationState{}

	var got []string
	for range 6 {
		got = append(got, NextTheme(interests, state))
		state = state.Advance("calm")
	}

	want := []string{"space", "cooking", "music", "space", "cooking", "music"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("theme %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAdvance_WrapsAtThree(t *testing.T) {
	state := RotationState{ThemeIndex: 2}
	next := state.Advance("playful")
	if next.ThemeIndex != 0 {
		t.Fatalf("expected wrap to 0, got %d", next.ThemeIndex)
	}
	if next.LastTone != "playful" {
		t.Fatalf("expected tone recorded, got %q", next.LastTone)
	}
}
