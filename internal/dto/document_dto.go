package dto

type MetadataFieldRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// UploadDocumentRequest carries the multipart form fields that accompany the
// file part. Chunking values of zero fall back to the configured defaults.
type UploadDocumentRequest struct {
	StoreName      string                 `json:"store_name"`
	DisplayName    string                 `json:"display_name"`
	ChunkTokens    int                    `json:"chunk_tokens"`
	OverlapTokens  int                    `json:"overlap_tokens"`
	TimeoutSeconds int                    `json:"timeout_seconds"`
	Metadata       []MetadataFieldRequest `json:"metadata" validate:"dive"`
}

type MetadataEntryView struct {
	Key     string   `json:"key"`
	Kind    string   `json:"kind"`
	String  string   `json:"string,omitempty"`
	Number  float64  `json:"number,omitempty"`
	Strings []string `json:"strings,omitempty"`
}

type DocumentView struct {
	Name           string              `json:"name"`
	StoreName      string              `json:"store_name"`
	DisplayName    string              `json:"display_name"`
	State          string              `json:"state"`
	SizeBytes      int64               `json:"size_bytes"`
	MimeType       string              `json:"mime_type,omitempty"`
	CreateTime     string              `json:"create_time,omitempty"`
	UpdateTime     string              `json:"update_time,omitempty"`
	CustomMetadata []MetadataEntryView `json:"custom_metadata,omitempty"`
}

type ListDocumentsResponse struct {
	Documents []DocumentView `json:"documents"`
}
