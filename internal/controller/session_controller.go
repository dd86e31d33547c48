package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mrsameer/rag-with-gemini/internal/dto"
	"github.com/mrsameer/rag-with-gemini/internal/entity"
	"github.com/mrsameer/rag-with-gemini/internal/mapper"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/apperror"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/serverutils"
	"github.com/mrsameer/rag-with-gemini/internal/repository/memory"
	"github.com/mrsameer/rag-with-gemini/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionRepo *memory.SessionRepository
	chatService service.IChatService
	viewMapper  *mapper.ViewMapper
}

func NewSessionController(sessionRepo *memory.SessionRepository, chatService service.IChatService) ISessionController {
	return &sessionController{
		sessionRepo: sessionRepo,
		chatService: chatService,
		viewMapper:  mapper.NewViewMapper(),
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Post("", c.Create)
	h.Get("chat", serverutils.SessionMiddleware, c.History)
	h.Delete("chat", serverutils.SessionMiddleware, c.ClearHistory)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	session := &entity.Session{Id: uuid.NewString()}
	c.sessionRepo.Save(session)

	token, err := serverutils.IssueSessionToken(session.Id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session created", dto.CreateSessionResponse{
		SessionId: session.Id,
		Token:     token,
	}))
}

func (c *sessionController) History(ctx *fiber.Ctx) error {
	session, err := sessionFromCtx(ctx, c.sessionRepo)
	if err != nil {
		return err
	}

	turns := c.chatService.History(ctx.Context(), session)
	return ctx.JSON(serverutils.SuccessResponse("Chat history", dto.ChatHistoryResponse{
		SessionId: session.Id,
		Messages:  c.viewMapper.ToChatTurnViews(turns),
	}))
}

func (c *sessionController) ClearHistory(ctx *fiber.Ctx) error {
	session, err := sessionFromCtx(ctx, c.sessionRepo)
	if err != nil {
		return err
	}

	if err := c.chatService.ClearHistory(ctx.Context(), session); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat history cleared", struct{}{}))
}

// sessionFromCtx loads the session the middleware authenticated. An expired
// in-memory session with a still-valid token reads as not found.
func sessionFromCtx(ctx *fiber.Ctx, repo *memory.SessionRepository) (*entity.Session, error) {
	sessionID, _ := ctx.Locals(serverutils.SessionIDKey).(string)
	if sessionID == "" {
		return nil, fiber.ErrUnauthorized
	}
	session, ok := repo.Get(sessionID)
	if !ok {
		return nil, apperror.NotFound("session %s has expired", sessionID)
	}
	return session, nil
}
