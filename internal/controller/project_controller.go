package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"prism-brain-be/internal/dto"
	"prism-brain-be/internal/pkg/serverutils"
	"prism-brain-be/internal/service"
)

type IProjectController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Synthesize(ctx *fiber.Ctx) error
	Share(ctx *fiber.Ctx) error
}

type projectController struct {
	projectService service.IProjectService
	auth           fiber.Handler // nil when auth is not configured
}

func NewProjectController(projectService service.IProjectService, auth fiber.Handler) IProjectController {
	return &projectController{
		projectService: projectService,
		auth:           auth,
	}
}

func (c *projectController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/project/v1")
	if c.auth != nil {
		h.Use(c.auth)
	}
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Post(":id/synthesize", c.Synthesize)
	h.Post(":id/share", c.Share)
}

func (c *projectController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.projectService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create project", res))
}

func (c *projectController) List(ctx *fiber.Ctx) error {
	res, err := c.projectService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list projects", res))
}

func (c *projectController) Show(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.projectService.Show(ctx.Context(), id)
	if err != nil {
		return mapProjectError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show project", res))
}

func (c *projectController) Synthesize(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.projectService.Synthesize(ctx.Context(), id)
	if err != nil {
		return mapProjectError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success synthesize project", res))
}

func (c *projectController) Share(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.ShareReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.projectService.Share(ctx.Context(), id, &req); err != nil {
		return mapProjectError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success share report", fiber.Map{"sent_to": req.Email}))
}

func mapProjectError(err error) error {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Project not found")
	case errors.Is(err, service.ErrSharingDisabled):
		return fiber.NewError(fiber.StatusServiceUnavailable, "Report sharing is not configured")
	default:
		return err
	}
}
