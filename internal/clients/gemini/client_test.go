package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/genai"
)

func TestExtractTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "First part. "},
						{Text: "Second part."},
					},
				},
			},
		},
	}

	text, err := extractTextFromResponse(resp)

	require.NoError(t, err)
	assert.Equal(t, "First part. Second part.", text)
}

func TestExtractTextFromResponse_Empty(t *testing.T) {
	_, err := extractTextFromResponse(&genai.GenerateContentResponse{})
	require.Error(t, err)

	_, err = extractTextFromResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	})
	require.Error(t, err)
}

func TestNewLazyClientDefersConstruction(t *testing.T) {
	l := NewLazyClient("key", WithModel("gemini-2.5-pro"))
	assert.NotNil(t, l)
	assert.Nil(t, sharedClient, "the shared handle is only built on first summary request")
}
