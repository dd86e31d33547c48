package mapper

import (
	"github.com/mrsameer/rag-with-gemini/internal/dto"
	"github.com/mrsameer/rag-with-gemini/internal/entity"
)

// ViewMapper projects entities into their response DTOs.
type ViewMapper struct{}

func NewViewMapper() *ViewMapper {
	return &ViewMapper{}
}

func (m *ViewMapper) ToStoreView(s *entity.Store) dto.StoreView {
	return dto.StoreView{
		Name:         s.Name,
		DisplayName:  s.DisplayName,
		ActiveCount:  s.ActiveCount,
		PendingCount: s.PendingCount,
		FailedCount:  s.FailedCount,
		TotalCount:   s.TotalCount,
		SizeBytes:    s.SizeBytes,
		CreateTime:   s.CreateTime,
	}
}

func (m *ViewMapper) ToStoreViews(stores []*entity.Store) []dto.StoreView {
	views := make([]dto.StoreView, 0, len(stores))
	for _, s := range stores {
		views = append(views, m.ToStoreView(s))
	}
	return views
}

func (m *ViewMapper) ToDocumentView(d *entity.Document) dto.DocumentView {
	view := dto.DocumentView{
		Name:        d.Name,
		StoreName:   d.StoreName,
		DisplayName: d.DisplayName,
		State:       string(d.State),
		SizeBytes:   d.SizeBytes,
		MimeType:    d.MimeType,
		CreateTime:  d.CreateTime,
		UpdateTime:  d.UpdateTime,
	}
	for _, entry := range d.CustomMetadata {
		view.CustomMetadata = append(view.CustomMetadata, dto.MetadataEntryView{
			Key:     entry.Key,
			Kind:    string(entry.Value.Kind),
			String:  entry.Value.String,
			Number:  entry.Value.Number,
			Strings: entry.Value.Strings,
		})
	}
	return view
}

func (m *ViewMapper) ToDocumentViews(docs []*entity.Document) []dto.DocumentView {
	views := make([]dto.DocumentView, 0, len(docs))
	for _, d := range docs {
		views = append(views, m.ToDocumentView(d))
	}
	return views
}

func (m *ViewMapper) ToChatTurnViews(turns []entity.ChatTurn) []dto.ChatTurnView {
	views := make([]dto.ChatTurnView, 0, len(turns))
	for _, t := range turns {
		views = append(views, dto.ChatTurnView{
			Role:      t.Role,
			Content:   t.Content,
			Citations: t.Citations,
			CreatedAt: t.CreatedAt,
		})
	}
	return views
}
