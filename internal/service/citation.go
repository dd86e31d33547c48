package service

import (
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

// citationTextLimit caps the snippet fallback label, counted in runes so
// multi-byte text is not cut mid-character.
const citationTextLimit = 80

// ExtractCitations flattens grounding metadata from the first candidate into
// source labels, one per grounding chunk in response order. Each label is the
// first non-empty of URI, title, or a truncated text snippet. Repeated
// sources are kept as-is: the count of labels mirrors the count of grounding
// chunks the model actually used.
func ExtractCitations(res *genai.GenerateContentResponse) []string {
	if res == nil || len(res.Candidates) == 0 {
		return nil
	}
	meta := res.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}

	citations := make([]string, 0, len(meta.GroundingChunks))
	for _, chunk := range meta.GroundingChunks {
		if label, ok := citationLabel(chunk); ok {
			citations = append(citations, label)
		}
	}
	return citations
}

func citationLabel(chunk genai.GroundingChunk) (string, bool) {
	if rc := chunk.RetrievedContext; rc != nil {
		switch {
		case rc.URI != "":
			return rc.URI, true
		case rc.Title != "":
			return rc.Title, true
		case rc.Text != "":
			return truncateRunes(rc.Text, citationTextLimit), true
		}
		return "", false
	}
	if web := chunk.Web; web != nil {
		switch {
		case web.URI != "":
			return web.URI, true
		case web.Title != "":
			return web.Title, true
		}
	}
	return "", false
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
