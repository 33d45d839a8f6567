package generation

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/llm"
	"github.com/hireloop/hireloop/internal/prompts"
	"github.com/hireloop/hireloop/internal/schemas"
	"github.com/hireloop/hireloop/internal/types"
)

// questionPayload is the model's expected JSON shape for a single question.
type questionPayload struct {
	Question   string `json:"question"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// GenerateQuestion produces the next conversational question for a phase.
// Model failures, timeouts, and malformed output all route to the
// deterministic fallback bank.
func (a *Adapter) GenerateQuestion(ctx context.Context, job types.JobContext, phase types.RoundType, history []types.QAPair) types.Question {
	prompt := prompts.Format(prompts.MustGet("interview.json", "question"), map[string]string{
		"Phase":           string(phase),
		"Title":           job.Title,
		"ExperienceLevel": job.ExperienceLevel,
		"Skills":          strings.Join(job.Skills, ", "),
		"Description":     truncate(job.Description, 1500),
		"History":         formatHistory(history),
	})

	raw, err := a.callJSON(ctx, prompt, llm.TierLite, a.questionTimeout)
	if err != nil {
		log.Printf("[generation] question call failed, using fallback: %v", err)
		return FallbackQuestion(phase, len(history))
	}

	payload := llm.ExtractFirstJSON(raw)
	if payload == "" {
		log.Printf("[generation] no JSON in question response, using fallback")
		return FallbackQuestion(phase, len(history))
	}
	if err := schemas.Validate(schemas.Question, payload); err != nil {
		log.Printf("[generation] question payload rejected, using fallback: %v", err)
		return FallbackQuestion(phase, len(history))
	}

	var parsed questionPayload
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		log.Printf("[generation] question payload unmarshal failed, using fallback: %v", err)
		return FallbackQuestion(phase, len(history))
	}

	return types.Question{
		ID:          uuid.New(),
		Category:    phase,
		Difficulty:  parsed.Difficulty,
		Text:        parsed.Question,
		GeneratedBy: types.GeneratedByAI,
	}
}

// truncate shortens text to at most n bytes on a rune boundary.
func truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}
	cut := text[:n]
	for !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
