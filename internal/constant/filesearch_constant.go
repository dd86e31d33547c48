package constant

import "time"

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "assistant"

	// Returned in place of an empty generation so the client never renders a blank turn.
	EmptyAnswerFallback = "I couldn't generate a response. Please try rephrasing your question."
)

// File Search service limits. Violations are rejected before any remote call.
const (
	MaxChunkTokens        = 2043
	MaxCustomMetadata     = 20
	DefaultChunkTokens    = 400
	DefaultOverlapTokens  = 40
	DefaultStoreName      = "rag-with-gemini-store"
	DefaultGenerativeModel = "gemini-2.5-flash"
)

const (
	// Fixed backoff between operation status fetches. The service finishes most
	// ingestions in seconds to minutes, so a short fixed interval keeps the
	// progress feedback smooth.
	OperationPollInterval = 3 * time.Second

	DefaultOperationTimeout = 300 * time.Second
)
