package service

import (
	"context"
	"strings"
	"time"

	"github.com/mrsameer/rag-with-gemini/internal/constant"
	"github.com/mrsameer/rag-with-gemini/internal/entity"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/apperror"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/logger"
	"github.com/mrsameer/rag-with-gemini/internal/repository/memory"
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

// ChatAnswer is the outcome of one grounded question.
type ChatAnswer struct {
	Text      string
	Citations []string
}

type IChatService interface {
	Ask(ctx context.Context, session *entity.Session, query string, useWebSearch bool) (*ChatAnswer, error)
	History(ctx context.Context, session *entity.Session) []entity.ChatTurn
	ClearHistory(ctx context.Context, session *entity.Session) error
}

type chatService struct {
	generator    genai.GenerativeAPI
	storeService IStoreService
	sessionRepo  *memory.SessionRepository
	logger       logger.ILogger
	model        string
	now          func() time.Time
}

func NewChatService(
	generator genai.GenerativeAPI,
	storeService IStoreService,
	sessionRepo *memory.SessionRepository,
	sysLogger logger.ILogger,
	model string,
) IChatService {
	if model == "" {
		model = constant.DefaultGenerativeModel
	}
	return &chatService{
		generator:    generator,
		storeService: storeService,
		sessionRepo:  sessionRepo,
		logger:       sysLogger,
		model:        model,
		now:          time.Now,
	}
}

// Ask runs one grounded generation turn. Exactly one retrieval tool is
// attached: file search against the session's active store by default, or web
// search when requested. Both turns of the exchange are appended to the
// transcript; a failed generation appends nothing.
func (s *chatService) Ask(ctx context.Context, session *entity.Session, query string, useWebSearch bool) (*ChatAnswer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.InvalidArgument("query must not be empty")
	}

	var tool genai.Tool
	if useWebSearch {
		tool = genai.Tool{GoogleSearch: &genai.GoogleSearch{}}
	} else {
		store, err := s.storeService.ResolveActiveStore(ctx, session, "")
		if err != nil {
			return nil, err
		}
		tool = genai.Tool{FileSearch: &genai.FileSearch{
			FileSearchStoreNames: []string{store.Name},
		}}
	}

	res, err := s.generator.GenerateContent(ctx, s.model, &genai.GenerateContentRequest{
		Contents: []genai.Content{
			{Role: constant.ChatMessageRoleUser, Parts: []genai.Part{{Text: query}}},
		},
		Tools: []genai.Tool{tool},
	})
	if err != nil {
		return nil, apperror.GenerationFailed("generation request failed", err)
	}

	answer := &ChatAnswer{
		Text:      res.Text(),
		Citations: ExtractCitations(res),
	}
	if answer.Text == "" {
		answer.Text = constant.EmptyAnswerFallback
	}

	now := s.now()
	session.Messages = append(session.Messages,
		entity.ChatTurn{Role: constant.ChatMessageRoleUser, Content: query, CreatedAt: now},
		entity.ChatTurn{Role: constant.ChatMessageRoleModel, Content: answer.Text, Citations: answer.Citations, CreatedAt: now},
	)
	s.sessionRepo.Save(session)

	s.logger.Debug("ChatService", "Turn completed", map[string]interface{}{
		"session":   session.Id,
		"web":       useWebSearch,
		"citations": len(answer.Citations),
	})

	return answer, nil
}

func (s *chatService) History(ctx context.Context, session *entity.Session) []entity.ChatTurn {
	return session.Messages
}

func (s *chatService) ClearHistory(ctx context.Context, session *entity.Session) error {
	session.Messages = nil
	s.sessionRepo.Save(session)
	return nil
}
