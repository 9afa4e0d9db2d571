package storygen

import "github.com/fablingo/fablingo/internal/llm"

// StorySchema defines the JSON schema for LLM story generation responses.
var StorySchema = &llm.Schema{
	Name:        "micro-story",
	Description: "A five-sentence bilingual micro-story for a language learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short story title in English",
			},
			"tone": map[string]any{
				"type":        "string",
				"description": "The emotional tone the story was written in",
			},
			"theme": map[string]any{
				"type":        "string",
				"description": "The interest theme the story was written around",
			},
			"sentences": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The sentence shown to the learner, mixing English and target-language words per the requested ratio. At most 5 words.",
						},
						"gloss": map[string]any{
							"type":        "string",
							"description": "The full-English rendering of the sentence",
						},
						"target_words": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "The target-language lemmas used in this sentence. Every entry must come from the allowed vocabulary list.",
						},
					},
					"required": []any{"text", "gloss", "target_words"},
				},
				"description": "Exactly 5 sentences",
			},
			"new_lemmas": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Lemmas appearing in content for the first time. At most 2, and only from the designated new words.",
			},
		},
		"required":             []any{"title", "tone", "theme", "sentences", "new_lemmas"},
		"additionalProperties": false,
	},
}
