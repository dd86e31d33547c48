package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrsameer/rag-with-gemini/internal/constant"
	"github.com/mrsameer/rag-with-gemini/internal/entity"
	"github.com/mrsameer/rag-with-gemini/internal/mapper"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/apperror"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/logger"
	"github.com/mrsameer/rag-with-gemini/pkg/events"
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

// ChunkingOptions is the typed chunking configuration for one upload,
// validated before any remote call is made. Violations fail fast; nothing is
// silently clamped.
type ChunkingOptions struct {
	ChunkTokens   int
	OverlapTokens int
}

func (o ChunkingOptions) Validate() error {
	if o.ChunkTokens <= 0 {
		return apperror.InvalidArgument("chunk tokens must be positive, got %d", o.ChunkTokens)
	}
	if o.ChunkTokens > constant.MaxChunkTokens {
		return apperror.InvalidArgument("chunk tokens must not exceed %d, got %d", constant.MaxChunkTokens, o.ChunkTokens)
	}
	if o.OverlapTokens < 0 {
		return apperror.InvalidArgument("overlap tokens must not be negative, got %d", o.OverlapTokens)
	}
	if o.OverlapTokens >= o.ChunkTokens {
		return apperror.InvalidArgument("overlap tokens (%d) must be smaller than chunk tokens (%d)", o.OverlapTokens, o.ChunkTokens)
	}
	return nil
}

// MetadataField is one caller-supplied custom metadata entry.
type MetadataField struct {
	Key   string
	Value string
}

// IngestInput describes one document ingestion request.
type IngestInput struct {
	StoreName   string
	Data        []byte
	Filename    string
	DisplayName string
	Metadata    []MetadataField
	Chunking    ChunkingOptions

	// Timeout bounds the whole operation poll; zero means the configured
	// default.
	Timeout time.Duration
}

// IIngestService uploads documents and drives the remote indexing operation
// to completion.
type IIngestService interface {
	Ingest(ctx context.Context, session *entity.Session, input IngestInput) (*entity.Document, error)
}

type ingestService struct {
	client         genai.FileSearchAPI
	poller         *OperationPoller
	progress       IProgressPublisher
	documentMapper *mapper.DocumentMapper
	logger         logger.ILogger
	defaultTimeout time.Duration
}

func NewIngestService(
	client genai.FileSearchAPI,
	poller *OperationPoller,
	progress IProgressPublisher,
	sysLogger logger.ILogger,
	defaultTimeout time.Duration,
) IIngestService {
	if defaultTimeout <= 0 {
		defaultTimeout = constant.DefaultOperationTimeout
	}
	return &ingestService{
		client:         client,
		poller:         poller,
		progress:       progress,
		documentMapper: mapper.NewDocumentMapper(),
		logger:         sysLogger,
		defaultTimeout: defaultTimeout,
	}
}

// Ingest validates the request, stages the payload to a temp file that is
// released on every exit path, submits the upload and polls the returned
// operation until it finishes or the deadline passes.
//
// A successful return means the operation completed; the document starts in
// Pending state and the remote service finalizes Active or Failed
// asynchronously. A document that later fails indexing is only discoverable
// through a catalog listing, not through this call's result.
func (s *ingestService) Ingest(ctx context.Context, session *entity.Session, input IngestInput) (*entity.Document, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	displayName := input.DisplayName
	if displayName == "" {
		displayName = strings.TrimSuffix(input.Filename, filepath.Ext(input.Filename))
	}

	tempPath, err := s.stageTempFile(input)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tempPath)

	op, err := s.client.UploadToStore(ctx, genai.UploadInput{
		StoreName:      input.StoreName,
		FilePath:       tempPath,
		DisplayName:    displayName,
		CustomMetadata: buildCustomMetadata(input.Metadata),
		ChunkingConfig: genai.ChunkingConfig{
			WhiteSpaceConfig: &genai.WhiteSpaceConfig{
				MaxTokensPerChunk: input.Chunking.ChunkTokens,
				MaxOverlapTokens:  input.Chunking.OverlapTokens,
			},
		},
	})
	if err != nil {
		return nil, toAppError("upload failed", err)
	}

	timeout := input.Timeout
	if timeout <= 0 {
		timeout = s.defaultTimeout
	}

	s.logger.Info("IngestService", "Upload submitted, polling operation", map[string]interface{}{
		"store":     input.StoreName,
		"operation": op.Name,
		"timeout":   timeout.String(),
	})

	onProgress := func(progress float64) {
		s.progress.Publish(events.NewIngestProgress(session.Id, input.StoreName, displayName, progress))
	}

	final, err := s.poller.Wait(ctx, op, timeout, s.client.GetOperation, onProgress)
	if err != nil {
		s.progress.Publish(events.NewIngestFailed(session.Id, input.StoreName, displayName, err.Error()))
		return nil, err
	}

	doc := s.resultDocument(input.StoreName, displayName, final)
	s.progress.Publish(events.NewIngestCompleted(session.Id, input.StoreName, displayName, doc.Name))

	s.logger.Info("IngestService", "Ingestion complete", map[string]interface{}{
		"store":    input.StoreName,
		"document": doc.Name,
		"state":    string(doc.State),
	})

	return doc, nil
}

func (s *ingestService) validate(input IngestInput) error {
	if strings.TrimSpace(input.StoreName) == "" {
		return apperror.InvalidArgument("store name must not be empty")
	}
	if len(input.Data) == 0 {
		return apperror.InvalidArgument("upload payload must not be empty")
	}
	if len(input.Metadata) > constant.MaxCustomMetadata {
		return apperror.InvalidArgument("at most %d custom metadata entries are allowed, got %d", constant.MaxCustomMetadata, len(input.Metadata))
	}
	return input.Chunking.Validate()
}

// stageTempFile writes the payload to a scoped temp file the upload call can
// reference. The caller removes it on every exit path.
func (s *ingestService) stageTempFile(input IngestInput) (string, error) {
	tmp, err := os.CreateTemp("", "ingest-*"+filepath.Ext(input.Filename))
	if err != nil {
		return "", apperror.Wrap(apperror.KindRemoteUnavailable, "failed to stage upload payload", err)
	}

	if _, err := tmp.Write(input.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", apperror.Wrap(apperror.KindRemoteUnavailable, "failed to write upload payload", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", apperror.Wrap(apperror.KindRemoteUnavailable, "failed to flush upload payload", err)
	}

	return tmp.Name(), nil
}

// resultDocument extracts the created document from the operation response
// when present; otherwise it reports the submitted document as Pending, which
// is its guaranteed initial state.
func (s *ingestService) resultDocument(storeName, displayName string, op *genai.Operation) *entity.Document {
	if op.Response != nil && op.Response.Document != nil {
		return s.documentMapper.ToEntity(storeName, op.Response.Document)
	}
	return &entity.Document{
		StoreName:   storeName,
		DisplayName: displayName,
		State:       entity.DocumentStatePending,
	}
}

func buildCustomMetadata(fields []MetadataField) []genai.CustomMetadata {
	if len(fields) == 0 {
		return nil
	}
	meta := make([]genai.CustomMetadata, 0, len(fields))
	for _, f := range fields {
		meta = append(meta, genai.CustomMetadata{Key: f.Key, StringValue: f.Value})
	}
	return meta
}
