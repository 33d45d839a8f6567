package jobimport

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/llm"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateJSON(ctx, prompt, tier)
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake" }
func (f *fakeClient) Close() error                  { return nil }

func TestFromText_ExtractsContext(t *testing.T) {
	client := &fakeClient{response: `{"title": "Backend Engineer", "skills": ["Go", "PostgreSQL"], "experience_level": "mid", "description": "Build services."}`}
	im := NewImporter(client)

	jobCtx, err := im.FromText(context.Background(), "We are hiring a Backend Engineer...")
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", jobCtx.Title)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, jobCtx.Skills)
	assert.Equal(t, "mid", jobCtx.ExperienceLevel)
	assert.Contains(t, client.prompt, "We are hiring a Backend Engineer")
}

func TestFromText_ToleratesFencedOutput(t *testing.T) {
	client := &fakeClient{response: "```json\n{\"title\": \"Data Engineer\"}\n```"}
	im := NewImporter(client)

	jobCtx, err := im.FromText(context.Background(), "posting text")
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", jobCtx.Title)
}

func TestFromText_ErrorPropagates(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	im := NewImporter(client)

	_, err := im.FromText(context.Background(), "posting text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestFromText_RejectsNonJSONOutput(t *testing.T) {
	client := &fakeClient{response: "Sorry, I could not parse this posting."}
	im := NewImporter(client)

	_, err := im.FromText(context.Background(), "posting text")
	assert.Error(t, err)
}

func TestFromText_RejectsSchemaViolations(t *testing.T) {
	// missing title
	client := &fakeClient{response: `{"skills": ["Go"]}`}
	im := NewImporter(client)

	_, err := im.FromText(context.Background(), "posting text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestFromText_TruncatesLongPostings(t *testing.T) {
	client := &fakeClient{response: `{"title": "Backend Engineer"}`}
	im := NewImporter(client)

	long := make([]byte, maxPostingChars*2)
	for i := range long {
		long[i] = 'x'
	}
	_, err := im.FromText(context.Background(), string(long))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(client.prompt), maxPostingChars+2000,
		"prompt should contain at most the truncated posting plus the template")
}
