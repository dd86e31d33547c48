package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

func groundedResponse(chunks ...genai.GroundingChunk) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []genai.Candidate{
			{GroundingMetadata: &genai.GroundingMetadata{GroundingChunks: chunks}},
		},
	}
}

func TestExtractCitationsPrecedence(t *testing.T) {
	longText := strings.Repeat("C", 100)
	res := groundedResponse(
		genai.GroundingChunk{RetrievedContext: &genai.RetrievedContext{URI: "gs://docs/a.pdf", Title: "ignored"}},
		genai.GroundingChunk{RetrievedContext: &genai.RetrievedContext{Title: "Quarterly Report"}},
		genai.GroundingChunk{RetrievedContext: &genai.RetrievedContext{Text: longText}},
	)

	citations := ExtractCitations(res)

	assert.Equal(t, []string{
		"gs://docs/a.pdf",
		"Quarterly Report",
		strings.Repeat("C", 80),
	}, citations)
}

func TestExtractCitationsKeepsDuplicates(t *testing.T) {
	res := groundedResponse(
		genai.GroundingChunk{RetrievedContext: &genai.RetrievedContext{URI: "gs://docs/a.pdf"}},
		genai.GroundingChunk{RetrievedContext: &genai.RetrievedContext{URI: "gs://docs/a.pdf"}},
	)

	citations := ExtractCitations(res)

	// One label per grounding chunk, even when the source repeats.
	assert.Equal(t, []string{"gs://docs/a.pdf", "gs://docs/a.pdf"}, citations)
}

func TestExtractCitationsWebChunks(t *testing.T) {
	res := groundedResponse(
		genai.GroundingChunk{Web: &genai.WebSource{URI: "https://example.com/post"}},
		genai.GroundingChunk{Web: &genai.WebSource{Title: "Example Post"}},
	)

	citations := ExtractCitations(res)

	assert.Equal(t, []string{"https://example.com/post", "Example Post"}, citations)
}

func TestExtractCitationsTruncatesRunes(t *testing.T) {
	text := strings.Repeat("日", 100)
	res := groundedResponse(
		genai.GroundingChunk{RetrievedContext: &genai.RetrievedContext{Text: text}},
	)

	citations := ExtractCitations(res)

	assert.Len(t, citations, 1)
	assert.Equal(t, strings.Repeat("日", 80), citations[0])
}

func TestExtractCitationsMalformed(t *testing.T) {
	assert.Empty(t, ExtractCitations(nil))
	assert.Empty(t, ExtractCitations(&genai.GenerateContentResponse{}))
	assert.Empty(t, ExtractCitations(groundedResponse()))
	assert.Empty(t, ExtractCitations(groundedResponse(
		genai.GroundingChunk{},
		genai.GroundingChunk{RetrievedContext: &genai.RetrievedContext{}},
	)))
}
