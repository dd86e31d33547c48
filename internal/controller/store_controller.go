package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mrsameer/rag-with-gemini/internal/dto"
	"github.com/mrsameer/rag-with-gemini/internal/mapper"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/serverutils"
	"github.com/mrsameer/rag-with-gemini/internal/repository/memory"
	"github.com/mrsameer/rag-with-gemini/internal/service"
)

type IStoreController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Resolve(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Overview(ctx *fiber.Ctx) error
}

type storeController struct {
	storeService    service.IStoreService
	documentService service.IDocumentService
	sessionRepo     *memory.SessionRepository
	viewMapper      *mapper.ViewMapper
}

func NewStoreController(
	storeService service.IStoreService,
	documentService service.IDocumentService,
	sessionRepo *memory.SessionRepository,
) IStoreController {
	return &storeController{
		storeService:    storeService,
		documentService: documentService,
		sessionRepo:     sessionRepo,
		viewMapper:      mapper.NewViewMapper(),
	}
}

func (c *storeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/store/v1")
	h.Use(serverutils.SessionMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Post("resolve", c.Resolve)
	h.Get("overview", c.Overview)
	h.Get(":id/stats", c.Stats)
	h.Delete(":id", c.Delete)
}

func (c *storeController) List(ctx *fiber.Ctx) error {
	stores, err := c.storeService.ListStores(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Store list", dto.ListStoresResponse{
		Stores: c.viewMapper.ToStoreViews(stores),
	}))
}

func (c *storeController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateStoreRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	store, err := c.storeService.CreateStore(ctx.Context(), req.DisplayName)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Store created", c.viewMapper.ToStoreView(store)))
}

func (c *storeController) Delete(ctx *fiber.Ctx) error {
	session, err := sessionFromCtx(ctx, c.sessionRepo)
	if err != nil {
		return err
	}

	force := ctx.QueryBool("force")
	if err := c.storeService.DeleteStore(ctx.Context(), session, storeResourceName(ctx.Params("id")), force); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Store deleted", struct{}{}))
}

// Resolve returns the session's active store, creating one when nothing
// matches. A display name in the body overrides the configured default.
func (c *storeController) Resolve(ctx *fiber.Ctx) error {
	session, err := sessionFromCtx(ctx, c.sessionRepo)
	if err != nil {
		return err
	}

	var req dto.ResolveStoreRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.ErrBadRequest
		}
	}

	store, err := c.storeService.ResolveActiveStore(ctx.Context(), session, req.DisplayName)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Active store resolved", c.viewMapper.ToStoreView(store)))
}

func (c *storeController) Stats(ctx *fiber.Ctx) error {
	store, err := c.storeService.GetStoreStats(ctx.Context(), storeResourceName(ctx.Params("id")))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Store stats", c.viewMapper.ToStoreView(store)))
}

// Overview pairs the session's active store with its full document listing.
func (c *storeController) Overview(ctx *fiber.Ctx) error {
	session, err := sessionFromCtx(ctx, c.sessionRepo)
	if err != nil {
		return err
	}

	store, err := c.storeService.ResolveActiveStore(ctx.Context(), session, "")
	if err != nil {
		return err
	}

	docs, err := c.documentService.ListDocuments(ctx.Context(), store.Name, service.DocumentFilter{})
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Store overview", dto.StoreOverview{
		Store:     c.viewMapper.ToStoreView(store),
		Documents: c.viewMapper.ToDocumentViews(docs),
	}))
}

// storeResourceName expands a bare store ID from a URL segment into the full
// resource name. Already-expanded names pass through.
func storeResourceName(id string) string {
	if strings.HasPrefix(id, "fileSearchStores/") {
		return id
	}
	return "fileSearchStores/" + id
}
