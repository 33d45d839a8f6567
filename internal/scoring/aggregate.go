// Package scoring composes the final interview score and pass/fail decision
// from a transcript evaluation and an optional coding-round result.
package scoring

import (
	"math"

	"github.com/hireloop/hireloop/internal/types"
)

// Pass thresholds. All three must hold; a high overall score cannot
// compensate for a weak technical or HR component.
const (
	PassOverallThreshold   = 60
	PassTechnicalThreshold = 50
	PassHRThreshold        = 50
)

// CodingWeight is the coding component's share of the blended overall score.
const CodingWeight = 0.4

// NeutralScore substitutes for a missing (zero-valued) sub-score. A missing
// score means "ungraded", not "failing"; callers must not conflate the two.
const NeutralScore = 10

// Aggregate combines a transcript evaluation with optional coding results.
// When coding results are present the overall score is a 60/40 blend of the
// evaluation's overall score and the coding score, rounded half away from
// zero. All outputs are clamped to [0, 100].
func Aggregate(summary types.EvaluationSummary, coding *types.CodingResults) types.ScoreReport {
	technical := normalize(summary.TechnicalScore)
	hr := normalize(summary.HRScore)
	overall := normalize(summary.OverallScore)

	report := types.ScoreReport{
		TechnicalAccuracy: technical,
		Communication:     normalize(summary.Communication),
		Confidence:        normalize(summary.Confidence),
		Relevance:         normalize(summary.Relevance),
		TechnicalScore:    technical,
		HRScore:           hr,
		Strengths:         summary.Strengths,
		Weaknesses:        summary.Weaknesses,
		Recommendations:   summary.Recommendations,
		DetailedFeedback:  summary.Feedback,
	}

	if coding != nil {
		codingScore := clamp(coding.Score)
		report.CodingScore = &codingScore
		blended := float64(overall)*(1-CodingWeight) + float64(codingScore)*CodingWeight
		overall = clamp(int(math.Round(blended)))
	}
	report.OverallScore = overall

	report.Passed = overall >= PassOverallThreshold &&
		technical >= PassTechnicalThreshold &&
		hr >= PassHRThreshold
	return report
}

// normalize maps an absent sub-score to the neutral value and clamps the rest.
func normalize(score int) int {
	if score == 0 {
		return NeutralScore
	}
	return clamp(score)
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
