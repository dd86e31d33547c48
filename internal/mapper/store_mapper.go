package mapper

import (
	"github.com/mrsameer/rag-with-gemini/internal/entity"
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

type StoreMapper struct{}

func NewStoreMapper() *StoreMapper {
	return &StoreMapper{}
}

// ToEntity normalizes a remote store. Omitted remote counters already decode
// to zero; TotalCount is recomputed here so the invariant
// active+pending+failed == total holds by construction.
func (m *StoreMapper) ToEntity(s *genai.Store) *entity.Store {
	if s == nil {
		return nil
	}

	return &entity.Store{
		Name:         s.Name,
		DisplayName:  s.DisplayName,
		ActiveCount:  s.ActiveDocumentsCount,
		PendingCount: s.PendingDocumentsCount,
		FailedCount:  s.FailedDocumentsCount,
		TotalCount:   s.ActiveDocumentsCount + s.PendingDocumentsCount + s.FailedDocumentsCount,
		SizeBytes:    s.SizeBytes,
		CreateTime:   s.CreateTime,
		UpdateTime:   s.UpdateTime,
	}
}

func (m *StoreMapper) ToEntities(stores []genai.Store) []*entity.Store {
	result := make([]*entity.Store, 0, len(stores))
	for i := range stores {
		result = append(result, m.ToEntity(&stores[i]))
	}
	return result
}
