package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/llm"
	"github.com/hireloop/hireloop/internal/prompts"
	"github.com/hireloop/hireloop/internal/schemas"
	"github.com/hireloop/hireloop/internal/types"
)

// assessmentItemPayload is the model's expected JSON shape for one MCQ item.
type assessmentItemPayload struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectIndex   int      `json:"correct_index"`
	Difficulty     string   `json:"difficulty"`
	Explanation    string   `json:"explanation"`
	AssessmentType string   `json:"assessment_type"`
}

// GenerateAssessment produces a batch of multiple-choice items. The requested
// count is clamped to MaxAssessmentQuestions; any failure yields the
// deterministic fallback batch of the same size.
func (a *Adapter) GenerateAssessment(ctx context.Context, assessmentTypes []string, count int, job types.JobContext) []types.Question {
	if count <= 0 {
		count = MaxAssessmentQuestions
	}
	if count > MaxAssessmentQuestions {
		count = MaxAssessmentQuestions
	}

	prompt := prompts.Format(prompts.MustGet("interview.json", "assessment"), map[string]string{
		"Title":           job.Title,
		"ExperienceLevel": job.ExperienceLevel,
		"Skills":          strings.Join(job.Skills, ", "),
		"Types":           strings.Join(assessmentTypes, ", "),
		"Count":           fmt.Sprintf("%d", count),
	})

	raw, err := a.callJSON(ctx, prompt, llm.TierStandard, a.assessmentTimeout)
	if err != nil {
		log.Printf("[generation] assessment call failed, using fallback: %v", err)
		return FallbackAssessment(assessmentTypes, count)
	}

	payload := llm.ExtractFirstJSON(raw)
	if payload == "" {
		log.Printf("[generation] no JSON in assessment response, using fallback")
		return FallbackAssessment(assessmentTypes, count)
	}
	if err := schemas.Validate(schemas.Assessment, payload); err != nil {
		log.Printf("[generation] assessment payload rejected, using fallback: %v", err)
		return FallbackAssessment(assessmentTypes, count)
	}

	var parsed []assessmentItemPayload
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		log.Printf("[generation] assessment payload unmarshal failed, using fallback: %v", err)
		return FallbackAssessment(assessmentTypes, count)
	}
	if len(parsed) > count {
		parsed = parsed[:count]
	}

	questions := make([]types.Question, 0, len(parsed))
	for _, item := range parsed {
		correct := item.CorrectIndex
		questions = append(questions, types.Question{
			ID:             uuid.New(),
			Category:       types.RoundAssessment,
			Difficulty:     item.Difficulty,
			Text:           item.Question,
			Options:        item.Options,
			CorrectIndex:   &correct,
			Explanation:    item.Explanation,
			AssessmentType: item.AssessmentType,
			GeneratedBy:    types.GeneratedByAI,
		})
	}
	if len(questions) == 0 {
		return FallbackAssessment(assessmentTypes, count)
	}
	return questions
}
