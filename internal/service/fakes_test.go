package service

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mrsameer/rag-with-gemini/pkg/events"
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

// nopLogger satisfies logger.ILogger without output.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeFileSearchAPI counts every remote call so tests can assert that
// validation failures never reach the wire.
type fakeFileSearchAPI struct {
	mu    sync.Mutex
	calls map[string]int

	stores     []genai.Store
	documents  []genai.Document
	operations map[string]*genai.Operation

	createStoreErr error
	getStoreErr    error
	listStoresErr  error
	uploadErr      error
}

func newFakeFileSearchAPI() *fakeFileSearchAPI {
	return &fakeFileSearchAPI{
		calls:      make(map[string]int),
		operations: make(map[string]*genai.Operation),
	}
}

func (f *fakeFileSearchAPI) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
}

func (f *fakeFileSearchAPI) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeFileSearchAPI) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeFileSearchAPI) CreateStore(ctx context.Context, displayName string) (*genai.Store, error) {
	f.record("CreateStore")
	if f.createStoreErr != nil {
		return nil, f.createStoreErr
	}
	store := genai.Store{
		Name:        "fileSearchStores/store-" + displayName,
		DisplayName: displayName,
	}
	f.stores = append(f.stores, store)
	return &store, nil
}

func (f *fakeFileSearchAPI) GetStore(ctx context.Context, name string) (*genai.Store, error) {
	f.record("GetStore")
	if f.getStoreErr != nil {
		return nil, f.getStoreErr
	}
	for i := range f.stores {
		if f.stores[i].Name == name {
			return &f.stores[i], nil
		}
	}
	return nil, &genai.APIError{StatusCode: 404, Message: "store not found"}
}

func (f *fakeFileSearchAPI) ListStores(ctx context.Context) ([]genai.Store, error) {
	f.record("ListStores")
	if f.listStoresErr != nil {
		return nil, f.listStoresErr
	}
	return f.stores, nil
}

func (f *fakeFileSearchAPI) DeleteStore(ctx context.Context, name string, force bool) error {
	f.record("DeleteStore")
	for i := range f.stores {
		if f.stores[i].Name == name {
			f.stores = append(f.stores[:i], f.stores[i+1:]...)
			return nil
		}
	}
	return &genai.APIError{StatusCode: 404, Message: "store not found"}
}

func (f *fakeFileSearchAPI) UploadToStore(ctx context.Context, input genai.UploadInput) (*genai.Operation, error) {
	f.record("UploadToStore")
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &genai.Operation{Name: "operations/upload-1"}, nil
}

func (f *fakeFileSearchAPI) ListDocuments(ctx context.Context, storeName string) ([]genai.Document, error) {
	f.record("ListDocuments")
	return f.documents, nil
}

func (f *fakeFileSearchAPI) GetDocument(ctx context.Context, name string) (*genai.Document, error) {
	f.record("GetDocument")
	for i := range f.documents {
		if f.documents[i].Name == name {
			return &f.documents[i], nil
		}
	}
	return nil, &genai.APIError{StatusCode: 404, Message: "document not found"}
}

func (f *fakeFileSearchAPI) DeleteDocument(ctx context.Context, name string) error {
	f.record("DeleteDocument")
	return nil
}

func (f *fakeFileSearchAPI) GetOperation(ctx context.Context, name string) (*genai.Operation, error) {
	f.record("GetOperation")
	if op, ok := f.operations[name]; ok {
		return op, nil
	}
	return &genai.Operation{Name: name, Done: true}, nil
}

var _ genai.FileSearchAPI = (*fakeFileSearchAPI)(nil)

// fakeProgressPublisher records published events in order.
type fakeProgressPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *fakeProgressPublisher) Publish(event events.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeProgressPublisher) Subscribe() (<-chan *message.Message, error) { return nil, nil }
func (f *fakeProgressPublisher) Close() error                                { return nil }

func (f *fakeProgressPublisher) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.EventType())
	}
	return out
}
