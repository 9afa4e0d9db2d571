package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fablingo/fablingo/internal/config"
	"github.com/fablingo/fablingo/internal/corpus"
	"github.com/fablingo/fablingo/internal/engine"
	"github.com/fablingo/fablingo/internal/exercise"
	"github.com/fablingo/fablingo/internal/llm"
	"github.com/fablingo/fablingo/internal/store"
	"github.com/fablingo/fablingo/internal/storygen"
)

// session bundles everything a command needs. Close it when done.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store
	svc    *engine.Service
}

func (s *session) Close() error {
	return s.store.Close()
}

// openSession loads config, opens the store, and wires the engine.
// Commands that only touch local state pass needLLM=false and skip
// provider construction entirely.
func openSession(cmd *cobra.Command, needLLM bool) (*session, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	deps := engine.Deps{
		Words:          st.WordRepo(),
		Profiles:       st.ProfileRepo(),
		Events:         st.EventRepo(),
		Corpus:         corpus.NewStatic(),
		StoryConfig:    storygen.DefaultConfig(),
		ExerciseConfig: exercise.DefaultConfig(),
		GenTimeout:     cfg.LLM.Timeout,
		Logger:         logger,
	}

	if needLLM {
		llmCfg := cfg.LLM
		if err := llmCfg.Validate(); err != nil {
			// Fall back to probing standard provider key env vars.
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				st.Close()
				return nil, fmt.Errorf("no LLM provider configured: %w", err)
			}
			llmCfg = discovered
		}

		provider, err := llm.NewProvider(cmd.Context(), llmCfg, st.EventRepo())
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("build LLM provider: %w", err)
		}
		deps.StoryGen = storygen.New(provider, deps.StoryConfig)
		deps.ExerciseGen = exercise.New(provider, deps.ExerciseConfig)
	}

	return &session{
		cfg:    cfg,
		logger: logger,
		store:  st,
		svc:    engine.New(deps),
	}, nil
}
