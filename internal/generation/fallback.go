package generation

import (
	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/types"
)

// Fixed question banks served when generation fails. Selection is
// deterministic: the bank index is the number of questions already asked,
// modulo the bank size, so a retried call yields the same question.

var technicalBank = []string{
	"Walk me through a technically challenging problem you solved recently. What made it hard, and how did you approach it?",
	"How do you decide between optimizing an existing system and rewriting it? Give a concrete example from your experience.",
	"Describe how you would design a service that must stay responsive while a slow third-party dependency is failing.",
	"Tell me about a production bug you diagnosed. How did you narrow down the root cause?",
	"How do you approach testing a feature that depends on external systems you do not control?",
	"Explain a design decision you made that you later reversed. What changed your mind?",
}

var hrBank = []string{
	"Why are you interested in this role, and what do you hope to get out of it?",
	"Tell me about a time you disagreed with a teammate. How was it resolved?",
	"Describe a situation where you had to deliver under a tight deadline. What trade-offs did you make?",
	"What kind of team environment helps you do your best work?",
	"Tell me about a piece of critical feedback you received. How did you act on it?",
	"Where do you want your career to be in three years, and how does this position fit?",
}

var behavioralBank = []string{
	"Tell me about a time you took ownership of a problem outside your responsibilities.",
	"Describe a situation where you had to influence a decision without having authority.",
	"Tell me about a failure you are willing to share. What did you learn from it?",
	"Describe a time you had to bring a struggling project back on track.",
}

var screeningBank = []string{
	"Give me a brief overview of your background and the work you are most proud of.",
	"Which of the skills listed for this role are you strongest in, and which would you need to grow into?",
	"What is your availability, and what are you looking for in your next position?",
}

// fallbackAssessmentBank holds deterministic MCQ items, ordered.
var fallbackAssessmentBank = []struct {
	question    string
	options     [4]string
	correct     int
	difficulty  string
	explanation string
}{
	{
		question:    "A function must not modify its input slice, but callers observe changes after it runs. What is the most likely cause?",
		options:     [4]string{"The slice was passed by deep copy", "The function mutated the shared backing array", "Slices are immutable", "The compiler reordered the writes"},
		correct:     1,
		difficulty:  "medium",
		explanation: "Slice headers are copied on call, but they share the same backing array.",
	},
	{
		question:    "Which HTTP status code is appropriate when a request conflicts with the current state of the resource?",
		options:     [4]string{"400", "404", "409", "422"},
		correct:     2,
		difficulty:  "easy",
		explanation: "409 Conflict signals a state conflict the client may resolve by retrying.",
	},
	{
		question:    "What is the primary benefit of an optimistic concurrency check over a long-held database lock?",
		options:     [4]string{"It guarantees no retries are needed", "Writers never block readers or other writers while thinking", "It removes the need for transactions", "It works without a version column"},
		correct:     1,
		difficulty:  "medium",
		explanation: "Optimistic control validates at write time instead of holding locks across user think time.",
	},
	{
		question:    "A cache sits in front of a slow service. Which eviction policy keeps the most recently used entries?",
		options:     [4]string{"FIFO", "LRU", "Random", "LIFO"},
		correct:     1,
		difficulty:  "easy",
		explanation: "LRU evicts the least recently used entry first.",
	},
	{
		question:    "Which data structure gives O(1) average lookup by key?",
		options:     [4]string{"Sorted array", "Hash table", "Binary search tree", "Linked list"},
		correct:     1,
		difficulty:  "easy",
		explanation: "Hash tables provide constant-time average lookups.",
	},
	{
		question:    "Two goroutines increment a shared counter without synchronization. What is the outcome?",
		options:     [4]string{"The final value is always correct", "A data race; the final value is undefined", "A deadlock", "A compile error"},
		correct:     1,
		difficulty:  "medium",
		explanation: "Unsynchronized concurrent writes are a data race.",
	},
	{
		question:    "What does idempotency of an API operation mean?",
		options:     [4]string{"It always succeeds", "Repeating it has the same effect as performing it once", "It requires authentication", "It cannot be cached"},
		correct:     1,
		difficulty:  "easy",
		explanation: "An idempotent operation can be retried safely.",
	},
	{
		question:    "Which index type best supports a query filtering on a column's exact value?",
		options:     [4]string{"Full-text index", "B-tree index", "No index helps equality", "Spatial index"},
		correct:     1,
		difficulty:  "easy",
		explanation: "B-tree indexes serve both equality and range predicates.",
	},
	{
		question:    "A service times out calling a dependency. Which pattern prevents cascading failure under sustained outage?",
		options:     [4]string{"Infinite retries", "Circuit breaker with fallback", "Raising the timeout", "Synchronous fan-out"},
		correct:     1,
		difficulty:  "medium",
		explanation: "A circuit breaker sheds load and serves fallback content during outages.",
	},
	{
		question:    "What is the time complexity of binary search on a sorted array of n elements?",
		options:     [4]string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
		correct:     1,
		difficulty:  "easy",
		explanation: "Each comparison halves the search space.",
	},
}

// bankFor maps a phase to its fallback question bank.
func bankFor(phase types.RoundType) []string {
	switch phase {
	case types.RoundHR:
		return hrBank
	case types.RoundBehavioral:
		return behavioralBank
	case types.RoundScreening:
		return screeningBank
	default:
		return technicalBank
	}
}

// FallbackQuestion returns the deterministic fallback question for a phase.
// asked is the number of questions already asked in the session.
func FallbackQuestion(phase types.RoundType, asked int) types.Question {
	bank := bankFor(phase)
	return types.Question{
		ID:          uuid.New(),
		Category:    phase,
		Difficulty:  "medium",
		Text:        bank[asked%len(bank)],
		GeneratedBy: types.GeneratedByFallback,
	}
}

// FallbackAssessment returns the first count items of the fixed MCQ bank.
func FallbackAssessment(assessmentTypes []string, count int) []types.Question {
	if count <= 0 || count > MaxAssessmentQuestions {
		count = MaxAssessmentQuestions
	}
	assessmentType := "aptitude"
	if len(assessmentTypes) > 0 {
		assessmentType = assessmentTypes[0]
	}

	questions := make([]types.Question, 0, count)
	for i := 0; i < count; i++ {
		item := fallbackAssessmentBank[i%len(fallbackAssessmentBank)]
		correct := item.correct
		questions = append(questions, types.Question{
			ID:             uuid.New(),
			Category:       types.RoundAssessment,
			Difficulty:     item.difficulty,
			Text:           item.question,
			Options:        item.options[:],
			CorrectIndex:   &correct,
			Explanation:    item.explanation,
			AssessmentType: assessmentType,
			GeneratedBy:    types.GeneratedByFallback,
		})
	}
	return questions
}

// FallbackEvaluation returns the canned evaluation used when the scoring call
// fails. Scores sit at the pass threshold so an outage neither fails nor
// rewards the candidate; the feedback flags the result for manual review.
func FallbackEvaluation() types.EvaluationSummary {
	return types.EvaluationSummary{
		TechnicalScore: 60,
		HRScore:        60,
		Communication:  60,
		Confidence:     60,
		Relevance:      60,
		OverallScore:   60,
		Feedback:       "Automated evaluation was unavailable for this interview. Scores are provisional.",
		Recommendations: []string{
			"Manual review recommended: the AI evaluation service did not produce a result.",
		},
		GeneratedBy: types.GeneratedByFallback,
	}
}
