package entity

// Store is the normalized view of a remote File Search store. The remote
// service recomputes all counters; this code never mutates them locally.
type Store struct {
	Name         string
	DisplayName  string
	ActiveCount  int64
	PendingCount int64
	FailedCount  int64
	TotalCount   int64 // always ActiveCount + PendingCount + FailedCount
	SizeBytes    int64
	CreateTime   string
	UpdateTime   string
}
