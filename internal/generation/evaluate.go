package generation

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/hireloop/hireloop/internal/llm"
	"github.com/hireloop/hireloop/internal/prompts"
	"github.com/hireloop/hireloop/internal/schemas"
	"github.com/hireloop/hireloop/internal/types"
)

// evaluationPayload is the model's expected JSON shape for a transcript
// evaluation. Field names match evaluation.schema.json.
type evaluationPayload struct {
	TechnicalScore  int      `json:"technical_score"`
	HRScore         int      `json:"hr_score"`
	Communication   int      `json:"communication"`
	Confidence      int      `json:"confidence"`
	Relevance       int      `json:"relevance"`
	OverallScore    int      `json:"overall_score"`
	Feedback        string   `json:"feedback"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// EvaluateTranscript scores a full interview transcript. Failures yield the
// canned neutral evaluation so submission is never blocked by an outage.
func (a *Adapter) EvaluateTranscript(ctx context.Context, pairs []types.QAPair, job types.JobContext) types.EvaluationSummary {
	prompt := prompts.Format(prompts.MustGet("evaluation.json", "transcript"), map[string]string{
		"Title":           job.Title,
		"ExperienceLevel": job.ExperienceLevel,
		"Skills":          strings.Join(job.Skills, ", "),
		"Transcript":      formatHistory(pairs),
	})

	raw, err := a.callJSON(ctx, prompt, llm.TierAdvanced, a.evaluationTimeout)
	if err != nil {
		log.Printf("[generation] evaluation call failed, using fallback: %v", err)
		return FallbackEvaluation()
	}

	payload := llm.ExtractFirstJSON(raw)
	if payload == "" {
		log.Printf("[generation] no JSON in evaluation response, using fallback")
		return FallbackEvaluation()
	}
	if err := schemas.Validate(schemas.Evaluation, payload); err != nil {
		log.Printf("[generation] evaluation payload rejected, using fallback: %v", err)
		return FallbackEvaluation()
	}

	var parsed evaluationPayload
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		log.Printf("[generation] evaluation payload unmarshal failed, using fallback: %v", err)
		return FallbackEvaluation()
	}

	return types.EvaluationSummary{
		TechnicalScore:  clampScore(parsed.TechnicalScore),
		HRScore:         clampScore(parsed.HRScore),
		Communication:   clampScore(parsed.Communication),
		Confidence:      clampScore(parsed.Confidence),
		Relevance:       clampScore(parsed.Relevance),
		OverallScore:    clampScore(parsed.OverallScore),
		Feedback:        parsed.Feedback,
		Strengths:       parsed.Strengths,
		Weaknesses:      parsed.Weaknesses,
		Recommendations: parsed.Recommendations,
		GeneratedBy:     types.GeneratedByAI,
	}
}
