package controller

import (
	"github.com/gofiber/fiber/v2"

	"prism-brain-be/internal/dto"
	"prism-brain-be/internal/pkg/serverutils"
	"prism-brain-be/internal/service"
)

type IIngestController interface {
	RegisterRoutes(r fiber.Router)
	IngestBoard(ctx *fiber.Ctx) error
	IngestAudio(ctx *fiber.Ctx) error
	IngestDocument(ctx *fiber.Ctx) error
}

type ingestController struct {
	ingestService service.IIngestService
	auth          fiber.Handler // nil when auth is not configured
}

func NewIngestController(ingestService service.IIngestService, auth fiber.Handler) IIngestController {
	return &ingestController{
		ingestService: ingestService,
		auth:          auth,
	}
}

func (c *ingestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ingest/v1")
	if c.auth != nil {
		h.Use(c.auth)
	}
	h.Post("board", c.IngestBoard)
	h.Post("audio", c.IngestAudio)
	h.Post("document", c.IngestDocument)
}

func (c *ingestController) IngestBoard(ctx *fiber.Ctx) error {
	var req dto.IngestBoardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestService.IngestBoard(ctx.Context(), &req)
	if err != nil {
		return mapProjectError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Board ingestion finished", res))
}

func (c *ingestController) IngestAudio(ctx *fiber.Ctx) error {
	var req dto.IngestFileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestService.IngestAudio(ctx.Context(), &req)
	if err != nil {
		return mapProjectError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Audio ingestion finished", res))
}

func (c *ingestController) IngestDocument(ctx *fiber.Ctx) error {
	var req dto.IngestFileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestService.IngestDocument(ctx.Context(), &req)
	if err != nil {
		return mapProjectError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Document ingestion finished", res))
}
