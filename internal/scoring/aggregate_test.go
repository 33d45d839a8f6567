package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/types"
)

func summary(overall, technical, hr int) types.EvaluationSummary {
	return types.EvaluationSummary{
		OverallScore:   overall,
		TechnicalScore: technical,
		HRScore:        hr,
		Communication:  70,
		Confidence:     70,
		Relevance:      70,
	}
}

func TestAggregate_CodingBlend(t *testing.T) {
	report := Aggregate(summary(80, 75, 70), &types.CodingResults{Score: 50})

	// round(80*0.6 + 50*0.4) = 68
	assert.Equal(t, 68, report.OverallScore)
	require.NotNil(t, report.CodingScore)
	assert.Equal(t, 50, *report.CodingScore)
	assert.True(t, report.Passed)
}

func TestAggregate_NoCodingResults(t *testing.T) {
	report := Aggregate(summary(80, 75, 70), nil)

	assert.Equal(t, 80, report.OverallScore)
	assert.Nil(t, report.CodingScore)
	assert.True(t, report.Passed)
}

func TestAggregate_TechnicalSubThresholdFails(t *testing.T) {
	// overall clears the bar but technical does not
	report := Aggregate(summary(70, 40, 80), nil)

	assert.Equal(t, 70, report.OverallScore)
	assert.False(t, report.Passed)
}

func TestAggregate_HRSubThresholdFails(t *testing.T) {
	report := Aggregate(summary(75, 80, 30), nil)
	assert.False(t, report.Passed)
}

func TestAggregate_OverallThresholdFails(t *testing.T) {
	report := Aggregate(summary(55, 60, 60), nil)
	assert.False(t, report.Passed)
}

func TestAggregate_BoundaryPasses(t *testing.T) {
	report := Aggregate(summary(60, 50, 50), nil)
	assert.True(t, report.Passed)
}

func TestAggregate_MissingSubScoresGetNeutral(t *testing.T) {
	report := Aggregate(types.EvaluationSummary{OverallScore: 80}, nil)

	assert.Equal(t, NeutralScore, report.TechnicalScore)
	assert.Equal(t, NeutralScore, report.HRScore)
	assert.Equal(t, NeutralScore, report.Communication)
	// neutral sub-scores sit below the pass thresholds
	assert.False(t, report.Passed)
}

func TestAggregate_ClampsOutOfRangeInputs(t *testing.T) {
	report := Aggregate(summary(150, 120, 90), &types.CodingResults{Score: -20})

	require.NotNil(t, report.CodingScore)
	assert.Equal(t, 0, *report.CodingScore)
	// round(100*0.6 + 0*0.4) = 60
	assert.Equal(t, 60, report.OverallScore)
	assert.Equal(t, 100, report.TechnicalScore)
}

func TestAggregate_ScoringFieldsUnified(t *testing.T) {
	report := Aggregate(summary(80, 75, 70), nil)

	// the persisted accuracy and the pass-gate input are the same number
	assert.Equal(t, report.TechnicalScore, report.TechnicalAccuracy)
}
