package types

// EvaluationSummary is the whole-transcript evaluation returned by the
// generation surface. All numeric fields are integers in [0, 100].
//
// TechnicalScore and HRScore feed the pass/fail sub-thresholds directly;
// the scoring aggregator derives TechnicalAccuracy from TechnicalScore so
// the persisted scoring block and the pass gates read the same numbers.
type EvaluationSummary struct {
	TechnicalScore  int         `json:"technical_score"`
	HRScore         int         `json:"hr_score"`
	Communication   int         `json:"communication"`
	Confidence      int         `json:"confidence"`
	Relevance       int         `json:"relevance"`
	OverallScore    int         `json:"overall_score"`
	Feedback        string      `json:"feedback,omitempty"`
	Strengths       []string    `json:"strengths,omitempty"`
	Weaknesses      []string    `json:"weaknesses,omitempty"`
	Recommendations []string    `json:"recommendations,omitempty"`
	GeneratedBy     GeneratedBy `json:"generated_by"`
}

// CodingResults carries the score reported by the external code-execution
// surface for coding/dsa rounds.
type CodingResults struct {
	Score int `json:"score"`
}

// ScoreReport is the scoring aggregator's output.
type ScoreReport struct {
	TechnicalAccuracy int      `json:"technical_accuracy"`
	Communication     int      `json:"communication"`
	Confidence        int      `json:"confidence"`
	Relevance         int      `json:"relevance"`
	OverallScore      int      `json:"overall_score"`
	TechnicalScore    int      `json:"technical_score"`
	HRScore           int      `json:"hr_score"`
	CodingScore       *int     `json:"coding_score,omitempty"`
	Passed            bool     `json:"passed"`
	Strengths         []string `json:"strengths,omitempty"`
	Weaknesses        []string `json:"weaknesses,omitempty"`
	Recommendations   []string `json:"recommendations,omitempty"`
	DetailedFeedback  string   `json:"detailed_feedback,omitempty"`
}
