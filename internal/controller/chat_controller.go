package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mrsameer/rag-with-gemini/internal/dto"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/serverutils"
	"github.com/mrsameer/rag-with-gemini/internal/repository/memory"
	"github.com/mrsameer/rag-with-gemini/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	sessionRepo *memory.SessionRepository
}

func NewChatController(chatService service.IChatService, sessionRepo *memory.SessionRepository) IChatController {
	return &chatController{
		chatService: chatService,
		sessionRepo: sessionRepo,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.SessionMiddleware)
	h.Post("", c.Ask)
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	session, err := sessionFromCtx(ctx, c.sessionRepo)
	if err != nil {
		return err
	}

	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	answer, err := c.chatService.Ask(ctx.Context(), session, req.Query, req.UseWebSearch)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Answer generated", dto.AskResponse{
		Answer:    answer.Text,
		Citations: answer.Citations,
	}))
}
