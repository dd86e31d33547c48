package mapper

import (
	"path"

	"github.com/mrsameer/rag-with-gemini/internal/entity"
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

// ToEntity normalizes a remote document. Absent fields get neutral defaults
// instead of propagating as nulls: Unknown state, zero size, empty
// timestamps. A missing display name falls back to the resource basename.
func (m *DocumentMapper) ToEntity(storeName string, d *genai.Document) *entity.Document {
	if d == nil {
		return nil
	}

	displayName := d.DisplayName
	if displayName == "" {
		displayName = path.Base(d.Name)
	}

	return &entity.Document{
		Name:           d.Name,
		StoreName:      storeName,
		DisplayName:    displayName,
		State:          mapState(d.State),
		SizeBytes:      d.SizeBytes,
		MimeType:       d.MimeType,
		CreateTime:     d.CreateTime,
		UpdateTime:     d.UpdateTime,
		CustomMetadata: mapCustomMetadata(d.CustomMetadata),
	}
}

func (m *DocumentMapper) ToEntities(storeName string, docs []genai.Document) []*entity.Document {
	result := make([]*entity.Document, 0, len(docs))
	for i := range docs {
		result = append(result, m.ToEntity(storeName, &docs[i]))
	}
	return result
}

func mapState(state string) entity.DocumentState {
	switch state {
	case genai.StatePending:
		return entity.DocumentStatePending
	case genai.StateActive:
		return entity.DocumentStateActive
	case genai.StateFailed:
		return entity.DocumentStateFailed
	default:
		return entity.DocumentStateUnknown
	}
}

// mapCustomMetadata folds the remote oneof value shapes into the uniform
// entry type, preserving the order the service reported.
func mapCustomMetadata(meta []genai.CustomMetadata) []entity.MetadataEntry {
	if len(meta) == 0 {
		return nil
	}

	entries := make([]entity.MetadataEntry, 0, len(meta))
	for _, cm := range meta {
		entry := entity.MetadataEntry{Key: cm.Key}
		switch {
		case cm.NumericValue != nil:
			entry.Value = entity.MetadataValue{Kind: entity.MetadataKindNumber, Number: *cm.NumericValue}
		case cm.StringListValue != nil:
			entry.Value = entity.MetadataValue{Kind: entity.MetadataKindStringList, Strings: cm.StringListValue.Values}
		default:
			entry.Value = entity.MetadataValue{Kind: entity.MetadataKindString, String: cm.StringValue}
		}
		entries = append(entries, entry)
	}
	return entries
}
