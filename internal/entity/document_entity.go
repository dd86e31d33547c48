package entity

// DocumentState is the ingestion lifecycle state of a document.
type DocumentState string

const (
	DocumentStatePending DocumentState = "STATE_PENDING"
	DocumentStateActive  DocumentState = "STATE_ACTIVE"
	DocumentStateFailed  DocumentState = "STATE_FAILED"
	DocumentStateUnknown DocumentState = "UNKNOWN"
)

// MetadataKind discriminates the value held by a MetadataValue.
type MetadataKind string

const (
	MetadataKindString     MetadataKind = "string"
	MetadataKindNumber     MetadataKind = "number"
	MetadataKindStringList MetadataKind = "string_list"
)

// MetadataValue is the uniform custom-metadata value type: exactly one of the
// three underlying remote representations, made explicit.
type MetadataValue struct {
	Kind    MetadataKind `json:"kind"`
	String  string       `json:"string,omitempty"`
	Number  float64      `json:"number,omitempty"`
	Strings []string     `json:"strings,omitempty"`
}

// MetadataEntry preserves the remote service's key order, which a plain map
// would lose.
type MetadataEntry struct {
	Key   string        `json:"key"`
	Value MetadataValue `json:"value"`
}

// Document is the normalized view of a remote document. Absent remote fields
// carry neutral defaults: Unknown state, zero size, empty timestamps.
type Document struct {
	Name           string
	StoreName      string
	DisplayName    string
	State          DocumentState
	SizeBytes      int64
	MimeType       string
	CreateTime     string
	UpdateTime     string
	CustomMetadata []MetadataEntry
}
