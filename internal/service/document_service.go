package service

import (
	"context"
	"sort"
	"strings"

	"github.com/mrsameer/rag-with-gemini/internal/entity"
	"github.com/mrsameer/rag-with-gemini/internal/mapper"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/logger"
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

// SortKey selects the ordering of a catalog view.
type SortKey string

const (
	SortCreatedDesc SortKey = "created_desc"
	SortCreatedAsc  SortKey = "created_asc"
	SortNameAsc     SortKey = "name_asc"
	SortSizeDesc    SortKey = "size_desc"
)

// DocumentFilter narrows and orders a catalog listing. Zero values mean "no
// constraint"; the zero SortKey falls back to newest-first.
type DocumentFilter struct {
	State entity.DocumentState
	Query string
	Sort  SortKey
}

type IDocumentService interface {
	ListDocuments(ctx context.Context, storeName string, filter DocumentFilter) ([]*entity.Document, error)
	GetDocument(ctx context.Context, documentName string) (*entity.Document, error)
	DeleteDocument(ctx context.Context, documentName string) error
}

type documentService struct {
	client         genai.FileSearchAPI
	documentMapper *mapper.DocumentMapper
	logger         logger.ILogger
}

func NewDocumentService(client genai.FileSearchAPI, sysLogger logger.ILogger) IDocumentService {
	return &documentService{
		client:         client,
		documentMapper: mapper.NewDocumentMapper(),
		logger:         sysLogger,
	}
}

func (s *documentService) ListDocuments(ctx context.Context, storeName string, filter DocumentFilter) ([]*entity.Document, error) {
	remote, err := s.client.ListDocuments(ctx, storeName)
	if err != nil {
		return nil, toAppError("failed to list documents", err)
	}

	docs := s.documentMapper.ToEntities(storeName, remote)
	return FilterAndSort(docs, filter), nil
}

func (s *documentService) GetDocument(ctx context.Context, documentName string) (*entity.Document, error) {
	remote, err := s.client.GetDocument(ctx, documentName)
	if err != nil {
		return nil, toAppError("failed to get document", err)
	}
	return s.documentMapper.ToEntity(storeNameOf(documentName), remote), nil
}

func (s *documentService) DeleteDocument(ctx context.Context, documentName string) error {
	if err := s.client.DeleteDocument(ctx, documentName); err != nil {
		return toAppError("failed to delete document", err)
	}
	s.logger.Info("DocumentService", "Document deleted", map[string]interface{}{
		"document": documentName,
	})
	return nil
}

// FilterAndSort applies a catalog view to a listing without mutating the
// input slice. Filtering is by exact state and case-insensitive display-name
// substring; ordering is stable so equal keys keep their listing order.
func FilterAndSort(docs []*entity.Document, filter DocumentFilter) []*entity.Document {
	out := make([]*entity.Document, 0, len(docs))
	query := strings.ToLower(filter.Query)
	for _, d := range docs {
		if filter.State != "" && d.State != filter.State {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(d.DisplayName), query) {
			continue
		}
		out = append(out, d)
	}

	// RFC 3339 timestamps order lexicographically, so created sorts compare
	// the raw strings.
	switch filter.Sort {
	case SortCreatedAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreateTime < out[j].CreateTime
		})
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].DisplayName) < strings.ToLower(out[j].DisplayName)
		})
	case SortSizeDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SizeBytes > out[j].SizeBytes
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreateTime > out[j].CreateTime
		})
	}

	return out
}

// storeNameOf derives the parent store resource from a full document name
// ("fileSearchStores/{store}/documents/{id}").
func storeNameOf(documentName string) string {
	if idx := strings.Index(documentName, "/documents/"); idx > 0 {
		return documentName[:idx]
	}
	return ""
}
