package jobimport

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hireloop/hireloop/internal/llm"
	"github.com/hireloop/hireloop/internal/prompts"
	"github.com/hireloop/hireloop/internal/schemas"
	"github.com/hireloop/hireloop/internal/types"
)

// maxPostingChars bounds the posting text sent to the extraction model.
const maxPostingChars = 12000

// Importer extracts a structured job context from posting text.
type Importer struct {
	client llm.Client
}

// NewImporter creates an Importer over an LLM client.
func NewImporter(client llm.Client) *Importer {
	return &Importer{client: client}
}

// contextPayload matches jobcontext.schema.json.
type contextPayload struct {
	Title           string   `json:"title"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
	Description     string   `json:"description"`
}

// FromURL fetches a posting page and extracts its job context. Unlike
// interview generation there is no fallback here: a recruiter import that
// cannot be parsed should fail loudly.
func (im *Importer) FromURL(ctx context.Context, postingURL string) (*types.JobContext, error) {
	text, err := FetchPostingText(ctx, postingURL)
	if err != nil {
		return nil, err
	}
	return im.FromText(ctx, text)
}

// FromText extracts a job context from already-fetched posting text.
func (im *Importer) FromText(ctx context.Context, text string) (*types.JobContext, error) {
	if len(text) > maxPostingChars {
		text = text[:maxPostingChars]
	}

	prompt := prompts.Format(prompts.MustGet("jobimport.json", "extract"), map[string]string{
		"Text": text,
	})

	raw, err := im.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("extraction call failed: %w", err)
	}

	payload := llm.ExtractFirstJSON(raw)
	if payload == "" {
		return nil, fmt.Errorf("extraction returned no JSON")
	}
	if err := schemas.Validate(schemas.JobContext, payload); err != nil {
		return nil, fmt.Errorf("extraction payload invalid: %w", err)
	}

	var parsed contextPayload
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse extraction payload: %w", err)
	}

	return &types.JobContext{
		Title:           parsed.Title,
		Skills:          parsed.Skills,
		ExperienceLevel: parsed.ExperienceLevel,
		Description:     parsed.Description,
	}, nil
}
