package genai

// Document ingestion states as reported by the File Search service.
const (
	StateUnspecified = "STATE_UNSPECIFIED"
	StatePending     = "STATE_PENDING"
	StateActive      = "STATE_ACTIVE"
	StateFailed      = "STATE_FAILED"
)

// Store is a File Search store resource. Counter fields the service omits
// decode to zero, which is the documented neutral value.
type Store struct {
	Name                  string `json:"name,omitempty"`
	DisplayName           string `json:"displayName,omitempty"`
	ActiveDocumentsCount  int64  `json:"activeDocumentsCount,omitempty"`
	PendingDocumentsCount int64  `json:"pendingDocumentsCount,omitempty"`
	FailedDocumentsCount  int64  `json:"failedDocumentsCount,omitempty"`
	SizeBytes             int64  `json:"sizeBytes,omitempty"`
	CreateTime            string `json:"createTime,omitempty"`
	UpdateTime            string `json:"updateTime,omitempty"`
}

type listStoresResponse struct {
	FileSearchStores []Store `json:"fileSearchStores"`
	NextPageToken    string  `json:"nextPageToken"`
}

// Document is a single indexed file within a store.
type Document struct {
	Name           string           `json:"name,omitempty"`
	DisplayName    string           `json:"displayName,omitempty"`
	State          string           `json:"state,omitempty"`
	SizeBytes      int64            `json:"sizeBytes,omitempty"`
	MimeType       string           `json:"mimeType,omitempty"`
	CreateTime     string           `json:"createTime,omitempty"`
	UpdateTime     string           `json:"updateTime,omitempty"`
	CustomMetadata []CustomMetadata `json:"customMetadata,omitempty"`
}

type listDocumentsResponse struct {
	Documents     []Document `json:"documents"`
	NextPageToken string     `json:"nextPageToken"`
}

// CustomMetadata carries exactly one of StringValue, NumericValue or
// StringListValue for a key.
type CustomMetadata struct {
	Key             string      `json:"key"`
	StringValue     string      `json:"stringValue,omitempty"`
	NumericValue    *float64    `json:"numericValue,omitempty"`
	StringListValue *StringList `json:"stringListValue,omitempty"`
}

type StringList struct {
	Values []string `json:"values"`
}

// ChunkingConfig controls how the service splits an uploaded document.
type ChunkingConfig struct {
	WhiteSpaceConfig *WhiteSpaceConfig `json:"whiteSpaceConfig,omitempty"`
}

type WhiteSpaceConfig struct {
	MaxTokensPerChunk int `json:"maxTokensPerChunk"`
	MaxOverlapTokens  int `json:"maxOverlapTokens"`
}

// Operation is a long-running remote task. Once Done is true the state is
// terminal: either Error is set or the operation succeeded.
type Operation struct {
	Name     string             `json:"name"`
	Done     bool               `json:"done"`
	Error    *Status            `json:"error,omitempty"`
	Response *OperationResponse `json:"response,omitempty"`
}

// OperationResponse is the success payload of an upload operation.
type OperationResponse struct {
	Document *Document `json:"document,omitempty"`
}

type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// --- Grounded generation ---

type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
	Tools    []Tool    `json:"tools,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text,omitempty"`
}

// Tool attaches exactly one retrieval mode to a generation call.
type Tool struct {
	FileSearch   *FileSearch   `json:"fileSearch,omitempty"`
	GoogleSearch *GoogleSearch `json:"googleSearch,omitempty"`
}

type FileSearch struct {
	FileSearchStoreNames []string `json:"fileSearchStoreNames"`
}

type GoogleSearch struct{}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content           *Content           `json:"content,omitempty"`
	GroundingMetadata *GroundingMetadata `json:"groundingMetadata,omitempty"`
}

type GroundingMetadata struct {
	GroundingChunks []GroundingChunk `json:"groundingChunks,omitempty"`
}

// GroundingChunk references one retrieved source. RetrievedContext is set for
// file search results, Web for web search results.
type GroundingChunk struct {
	RetrievedContext *RetrievedContext `json:"retrievedContext,omitempty"`
	Web              *WebSource        `json:"web,omitempty"`
}

type RetrievedContext struct {
	URI   string `json:"uri,omitempty"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
}

type WebSource struct {
	URI   string `json:"uri,omitempty"`
	Title string `json:"title,omitempty"`
}

// Text concatenates the text parts of the first candidate. Returns "" when
// the response carries no candidate or no text.
func (r *GenerateContentResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}
