package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsameer/rag-with-gemini/internal/entity"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/apperror"
	"github.com/mrsameer/rag-with-gemini/pkg/events"
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

func newTestIngestService(fake *fakeFileSearchAPI, progress *fakeProgressPublisher) IIngestService {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	poller := &OperationPoller{
		Interval: 3 * time.Second,
		Now:      clock.Now,
		Sleep:    clock.Sleep,
	}
	return NewIngestService(fake, poller, progress, nopLogger{}, 300*time.Second)
}

func validIngestInput() IngestInput {
	return IngestInput{
		StoreName: "fileSearchStores/s",
		Data:      []byte("hello world"),
		Filename:  "notes.txt",
		Chunking:  ChunkingOptions{ChunkTokens: 400, OverlapTokens: 40},
	}
}

func TestIngestRejectsOverlapNotBelowChunk(t *testing.T) {
	fake := newFakeFileSearchAPI()
	svc := newTestIngestService(fake, &fakeProgressPublisher{})

	input := validIngestInput()
	input.Chunking = ChunkingOptions{ChunkTokens: 100, OverlapTokens: 100}

	_, err := svc.Ingest(context.Background(), &entity.Session{Id: "s-1"}, input)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
	assert.Zero(t, fake.totalCalls(), "validation failures must not reach the remote service")
}

func TestIngestRejectsOversizedChunk(t *testing.T) {
	fake := newFakeFileSearchAPI()
	svc := newTestIngestService(fake, &fakeProgressPublisher{})

	input := validIngestInput()
	input.Chunking = ChunkingOptions{ChunkTokens: 2044, OverlapTokens: 40}

	_, err := svc.Ingest(context.Background(), &entity.Session{Id: "s-1"}, input)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
	assert.Zero(t, fake.totalCalls())
}

func TestIngestRejectsEmptyPayload(t *testing.T) {
	fake := newFakeFileSearchAPI()
	svc := newTestIngestService(fake, &fakeProgressPublisher{})

	input := validIngestInput()
	input.Data = nil

	_, err := svc.Ingest(context.Background(), &entity.Session{Id: "s-1"}, input)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
	assert.Zero(t, fake.totalCalls())
}

func TestIngestRejectsTooManyMetadataEntries(t *testing.T) {
	fake := newFakeFileSearchAPI()
	svc := newTestIngestService(fake, &fakeProgressPublisher{})

	input := validIngestInput()
	for i := 0; i < 21; i++ {
		input.Metadata = append(input.Metadata, MetadataField{Key: "k", Value: "v"})
	}

	_, err := svc.Ingest(context.Background(), &entity.Session{Id: "s-1"}, input)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
	assert.Zero(t, fake.totalCalls())
}

func TestIngestCompletesAndPublishesEvents(t *testing.T) {
	fake := newFakeFileSearchAPI()
	fake.operations["operations/upload-1"] = &genai.Operation{
		Name: "operations/upload-1",
		Done: true,
		Response: &genai.OperationResponse{
			Document: &genai.Document{
				Name:        "fileSearchStores/s/documents/d-1",
				DisplayName: "notes",
				State:       genai.StateActive,
			},
		},
	}
	progress := &fakeProgressPublisher{}
	svc := newTestIngestService(fake, progress)

	doc, err := svc.Ingest(context.Background(), &entity.Session{Id: "s-1"}, validIngestInput())
	require.NoError(t, err)
	assert.Equal(t, "fileSearchStores/s/documents/d-1", doc.Name)
	assert.Equal(t, entity.DocumentStateActive, doc.State)

	types := progress.types()
	require.NotEmpty(t, types)
	assert.Equal(t, events.TypeIngestCompleted, types[len(types)-1])
	for _, typ := range types[:len(types)-1] {
		assert.Equal(t, events.TypeIngestProgress, typ)
	}
}

func TestIngestOperationErrorPublishesFailure(t *testing.T) {
	fake := newFakeFileSearchAPI()
	fake.operations["operations/upload-1"] = &genai.Operation{
		Name:  "operations/upload-1",
		Done:  true,
		Error: &genai.Status{Code: 13, Message: "unsupported format"},
	}
	progress := &fakeProgressPublisher{}
	svc := newTestIngestService(fake, progress)

	_, err := svc.Ingest(context.Background(), &entity.Session{Id: "s-1"}, validIngestInput())
	require.Error(t, err)
	assert.Equal(t, apperror.KindIngestFailed, apperror.KindOf(err))

	types := progress.types()
	require.NotEmpty(t, types)
	assert.Equal(t, events.TypeIngestFailed, types[len(types)-1])
}

func TestIngestFallsBackToPendingDocument(t *testing.T) {
	fake := newFakeFileSearchAPI()
	// GetOperation default: done with no response payload.
	svc := newTestIngestService(fake, &fakeProgressPublisher{})

	doc, err := svc.Ingest(context.Background(), &entity.Session{Id: "s-1"}, validIngestInput())
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatePending, doc.State)
	assert.Equal(t, "notes", doc.DisplayName)
}
