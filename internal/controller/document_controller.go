package controller

import (
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mrsameer/rag-with-gemini/internal/dto"
	"github.com/mrsameer/rag-with-gemini/internal/entity"
	"github.com/mrsameer/rag-with-gemini/internal/mapper"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/apperror"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/serverutils"
	"github.com/mrsameer/rag-with-gemini/internal/repository/memory"
	"github.com/mrsameer/rag-with-gemini/internal/service"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type documentController struct {
	ingestService   service.IIngestService
	documentService service.IDocumentService
	storeService    service.IStoreService
	sessionRepo     *memory.SessionRepository
	viewMapper      *mapper.ViewMapper

	defaultChunkTokens   int
	defaultOverlapTokens int
}

func NewDocumentController(
	ingestService service.IIngestService,
	documentService service.IDocumentService,
	storeService service.IStoreService,
	sessionRepo *memory.SessionRepository,
	defaultChunkTokens int,
	defaultOverlapTokens int,
) IDocumentController {
	return &documentController{
		ingestService:        ingestService,
		documentService:      documentService,
		storeService:         storeService,
		sessionRepo:          sessionRepo,
		viewMapper:           mapper.NewViewMapper(),
		defaultChunkTokens:   defaultChunkTokens,
		defaultOverlapTokens: defaultOverlapTokens,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.SessionMiddleware)
	h.Post("upload", c.Upload)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	session, err := sessionFromCtx(ctx, c.sessionRepo)
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.InvalidArgument("multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperror.InvalidArgument("failed to open uploaded file: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apperror.InvalidArgument("failed to read uploaded file: %v", err)
	}

	req, err := c.parseUploadForm(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	storeName := req.StoreName
	if storeName == "" {
		store, err := c.storeService.ResolveActiveStore(ctx.Context(), session, "")
		if err != nil {
			return err
		}
		storeName = store.Name
	}

	input := service.IngestInput{
		StoreName:   storeName,
		Data:        data,
		Filename:    fileHeader.Filename,
		DisplayName: req.DisplayName,
		Chunking: service.ChunkingOptions{
			ChunkTokens:   orDefault(req.ChunkTokens, c.defaultChunkTokens),
			OverlapTokens: orDefault(req.OverlapTokens, c.defaultOverlapTokens),
		},
		Timeout: time.Duration(req.TimeoutSeconds) * time.Second,
	}
	for _, m := range req.Metadata {
		input.Metadata = append(input.Metadata, service.MetadataField{Key: m.Key, Value: m.Value})
	}

	doc, err := c.ingestService.Ingest(ctx.Context(), session, input)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Document ingested", c.viewMapper.ToDocumentView(doc)))
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	session, err := sessionFromCtx(ctx, c.sessionRepo)
	if err != nil {
		return err
	}

	storeName := ctx.Query("store")
	if storeName == "" {
		store, err := c.storeService.ResolveActiveStore(ctx.Context(), session, "")
		if err != nil {
			return err
		}
		storeName = store.Name
	} else {
		storeName = storeResourceName(storeName)
	}

	filter := service.DocumentFilter{
		State: entity.DocumentState(ctx.Query("state")),
		Query: ctx.Query("q"),
		Sort:  service.SortKey(ctx.Query("sort")),
	}

	docs, err := c.documentService.ListDocuments(ctx.Context(), storeName, filter)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document list", dto.ListDocumentsResponse{
		Documents: c.viewMapper.ToDocumentViews(docs),
	}))
}

func (c *documentController) Show(ctx *fiber.Ctx) error {
	name, err := c.documentName(ctx)
	if err != nil {
		return err
	}

	doc, err := c.documentService.GetDocument(ctx.Context(), name)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document detail", c.viewMapper.ToDocumentView(doc)))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	name, err := c.documentName(ctx)
	if err != nil {
		return err
	}

	if err := c.documentService.DeleteDocument(ctx.Context(), name); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document deleted", struct{}{}))
}

// documentName builds the full document resource name from the :id segment
// and the required store query parameter.
func (c *documentController) documentName(ctx *fiber.Ctx) (string, error) {
	store := ctx.Query("store")
	if store == "" {
		return "", apperror.InvalidArgument("query parameter 'store' is required")
	}
	return storeResourceName(store) + "/documents/" + ctx.Params("id"), nil
}

func (c *documentController) parseUploadForm(ctx *fiber.Ctx) (*dto.UploadDocumentRequest, error) {
	req := &dto.UploadDocumentRequest{
		StoreName:   ctx.FormValue("store_name"),
		DisplayName: ctx.FormValue("display_name"),
	}
	if req.StoreName != "" {
		req.StoreName = storeResourceName(req.StoreName)
	}

	var err error
	if req.ChunkTokens, err = formInt(ctx, "chunk_tokens"); err != nil {
		return nil, err
	}
	if req.OverlapTokens, err = formInt(ctx, "overlap_tokens"); err != nil {
		return nil, err
	}
	if req.TimeoutSeconds, err = formInt(ctx, "timeout_seconds"); err != nil {
		return nil, err
	}

	if raw := ctx.FormValue("metadata"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Metadata); err != nil {
			return nil, apperror.InvalidArgument("metadata must be a JSON array of {key, value}: %v", err)
		}
	}
	return req, nil
}

func formInt(ctx *fiber.Ctx, field string) (int, error) {
	raw := ctx.FormValue(field)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.InvalidArgument("form field '%s' must be an integer", field)
	}
	return v, nil
}

func orDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
