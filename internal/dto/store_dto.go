package dto

type CreateStoreRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=128"`
}

type ResolveStoreRequest struct {
	DisplayName string `json:"display_name"`
}

type StoreView struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	ActiveCount  int64  `json:"active_count"`
	PendingCount int64  `json:"pending_count"`
	FailedCount  int64  `json:"failed_count"`
	TotalCount   int64  `json:"total_count"`
	SizeBytes    int64  `json:"size_bytes"`
	CreateTime   string `json:"create_time,omitempty"`
}

type ListStoresResponse struct {
	Stores []StoreView `json:"stores"`
}

// StoreOverview pairs a store with its document listing for the dashboard
// view.
type StoreOverview struct {
	Store     StoreView      `json:"store"`
	Documents []DocumentView `json:"documents"`
}
