package service

import (
	"context"
	"strings"

	"github.com/mrsameer/rag-with-gemini/internal/entity"
	"github.com/mrsameer/rag-with-gemini/internal/mapper"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/apperror"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/logger"
	"github.com/mrsameer/rag-with-gemini/internal/repository/memory"
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

// IStoreService is the registry of document stores: resolution of the
// session's active store, listing, creation and deletion.
type IStoreService interface {
	ResolveActiveStore(ctx context.Context, session *entity.Session, preferredName string) (*entity.Store, error)
	ListStores(ctx context.Context) ([]*entity.Store, error)
	CreateStore(ctx context.Context, displayName string) (*entity.Store, error)
	DeleteStore(ctx context.Context, session *entity.Session, name string, force bool) error
	GetStoreStats(ctx context.Context, name string) (*entity.Store, error)
}

type storeService struct {
	client      genai.FileSearchAPI
	sessionRepo *memory.SessionRepository
	storeMapper *mapper.StoreMapper
	logger      logger.ILogger

	// Optional pre-selected store resource name from configuration.
	// Takes precedence over everything else during resolution.
	configuredStore string

	// Display name used when resolution has to find or create a store and
	// the caller did not name one.
	defaultDisplayName string
}

func NewStoreService(
	client genai.FileSearchAPI,
	sessionRepo *memory.SessionRepository,
	sysLogger logger.ILogger,
	configuredStore string,
	defaultDisplayName string,
) IStoreService {
	return &storeService{
		client:             client,
		sessionRepo:        sessionRepo,
		storeMapper:        mapper.NewStoreMapper(),
		logger:             sysLogger,
		configuredStore:    configuredStore,
		defaultDisplayName: defaultDisplayName,
	}
}

// ResolveActiveStore resolves the session's active store with the precedence:
// configured store identifier, session-cached identifier, first remote store
// matching the display name, create a new store. The result is cached on the
// session, so repeated calls never create duplicate stores.
//
// Display names are not unique on the remote service; when duplicates exist
// the first match wins.
func (s *storeService) ResolveActiveStore(ctx context.Context, session *entity.Session, preferredName string) (*entity.Store, error) {
	displayName := strings.TrimSpace(preferredName)
	if displayName == "" {
		displayName = s.defaultDisplayName
	}

	if s.configuredStore != "" {
		store, err := s.client.GetStore(ctx, s.configuredStore)
		if err != nil {
			return nil, toAppError("failed to fetch configured store", err)
		}
		s.cacheActiveStore(session, store.Name)
		return s.storeMapper.ToEntity(store), nil
	}

	if session.ActiveStore != "" {
		store, err := s.client.GetStore(ctx, session.ActiveStore)
		if err == nil {
			return s.storeMapper.ToEntity(store), nil
		}
		if !genai.IsNotFound(err) {
			return nil, toAppError("failed to fetch cached store", err)
		}
		// Cached store was deleted remotely. Drop it and re-resolve.
		s.cacheActiveStore(session, "")
	}

	stores, err := s.client.ListStores(ctx)
	if err != nil {
		s.logger.Warn("StoreService", "Could not list existing stores", map[string]interface{}{"error": err.Error()})
	} else {
		for i := range stores {
			if stores[i].DisplayName == displayName {
				s.cacheActiveStore(session, stores[i].Name)
				return s.storeMapper.ToEntity(&stores[i]), nil
			}
		}
	}

	created, err := s.client.CreateStore(ctx, displayName)
	if err != nil {
		return nil, toAppError("failed to create store", err)
	}

	s.logger.Info("StoreService", "Created new store", map[string]interface{}{
		"store":        created.Name,
		"display_name": displayName,
	})

	s.cacheActiveStore(session, created.Name)
	return s.storeMapper.ToEntity(created), nil
}

func (s *storeService) cacheActiveStore(session *entity.Session, name string) {
	session.ActiveStore = name
	s.sessionRepo.Save(session)
}

func (s *storeService) ListStores(ctx context.Context) ([]*entity.Store, error) {
	stores, err := s.client.ListStores(ctx)
	if err != nil {
		return nil, apperror.RemoteUnavailable("failed to list stores", err)
	}
	return s.storeMapper.ToEntities(stores), nil
}

func (s *storeService) CreateStore(ctx context.Context, displayName string) (*entity.Store, error) {
	if strings.TrimSpace(displayName) == "" {
		return nil, apperror.InvalidArgument("store display name must not be empty")
	}

	store, err := s.client.CreateStore(ctx, displayName)
	if err != nil {
		return nil, toAppError("failed to create store", err)
	}
	return s.storeMapper.ToEntity(store), nil
}

// DeleteStore removes a store. With force, the remote service cascades
// deletion of its documents. A store that is already gone surfaces as
// NotFound; treating that as success is the caller's policy, not ours.
func (s *storeService) DeleteStore(ctx context.Context, session *entity.Session, name string, force bool) error {
	if strings.TrimSpace(name) == "" {
		return apperror.InvalidArgument("store name must not be empty")
	}

	if err := s.client.DeleteStore(ctx, name, force); err != nil {
		return toAppError("failed to delete store", err)
	}

	if session != nil && session.ActiveStore == name {
		s.cacheActiveStore(session, "")
	}

	s.logger.Info("StoreService", "Deleted store", map[string]interface{}{"store": name, "force": force})
	return nil
}

func (s *storeService) GetStoreStats(ctx context.Context, name string) (*entity.Store, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.InvalidArgument("store name must not be empty")
	}

	store, err := s.client.GetStore(ctx, name)
	if err != nil {
		return nil, toAppError("failed to get store", err)
	}
	return s.storeMapper.ToEntity(store), nil
}

// toAppError converts a remote client error into the taxonomy, preserving
// the underlying message. 404s become NotFound, everything else is a
// transient remote failure.
func toAppError(message string, err error) error {
	if genai.IsNotFound(err) {
		return apperror.Wrap(apperror.KindNotFound, message, err)
	}
	return apperror.RemoteUnavailable(message, err)
}
