package controller

import (
	"notebook-be/internal/dto"
	"notebook-be/internal/entity"
	"notebook-be/internal/pkg/serverutils"
	"notebook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router)
	GetSections(ctx *fiber.Ctx) error
	SearchSections(ctx *fiber.Ctx) error
	CreateSection(ctx *fiber.Ctx) error
	UpdateSection(ctx *fiber.Ctx) error
	DeleteSection(ctx *fiber.Ctx) error
	AddPage(ctx *fiber.Ctx) error
	UpdatePage(ctx *fiber.Ctx) error
	DeletePage(ctx *fiber.Ctx) error
	GetPageContent(ctx *fiber.Ctx) error
}

type notebookController struct {
	service service.INotebookService
}

func NewNotebookController(service service.INotebookService) INotebookController {
	return &notebookController{service: service}
}

func (c *notebookController) RegisterRoutes(r fiber.Router) {
	r.Get("/sections", c.GetSections)
	r.Get("/sections/search/:text", c.SearchSections)
	r.Post("/sections", c.CreateSection)
	r.Put("/sections", c.UpdateSection)
	r.Delete("/sections/:id", c.DeleteSection)

	r.Post("/pages", c.AddPage)
	r.Put("/pages", c.UpdatePage)
	r.Delete("/pages/:id", c.DeletePage)
	r.Get("/pages/:id/content", c.GetPageContent)
}

func (c *notebookController) GetSections(ctx *fiber.Ctx) error {
	sections, err := c.service.GetSections(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get sections", toSectionDtos(sections)))
}

func (c *notebookController) SearchSections(ctx *fiber.Ctx) error {
	text := ctx.Params("text")

	sections, err := c.service.SearchSections(ctx.Context(), serverutils.CurrentUser(ctx), text)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search sections", toSectionDtos(sections)))
}

func (c *notebookController) CreateSection(ctx *fiber.Ctx) error {
	var req dto.SectionDto
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Id != 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Id must be 0 when creating a section")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	section := &entity.Section{Name: req.Name}
	if err := c.service.CreateSection(ctx.Context(), serverutils.CurrentUser(ctx), section); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create section", toSectionDto(section)))
}

func (c *notebookController) UpdateSection(ctx *fiber.Ctx) error {
	var req dto.SectionDto
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Id must be greater than 0")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	section := &entity.Section{Id: req.Id, Name: req.Name}
	if err := c.service.UpdateSection(ctx.Context(), serverutils.CurrentUser(ctx), section); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update section", toSectionDto(section)))
}

func (c *notebookController) DeleteSection(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Id must be greater than 0")
	}

	if err := c.service.DeleteSection(ctx.Context(), serverutils.CurrentUser(ctx), id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *notebookController) AddPage(ctx *fiber.Ctx) error {
	var req dto.PageDto
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Id != 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Id must be 0 when creating a page")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	page := &entity.Page{
		Title:     req.Title,
		Content:   req.Content,
		SectionId: req.SectionId,
	}
	if err := c.service.AddPage(ctx.Context(), serverutils.CurrentUser(ctx), page); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create page", toPageDto(page)))
}

func (c *notebookController) UpdatePage(ctx *fiber.Ctx) error {
	var req dto.PageDto
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Id must be greater than 0")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	page := &entity.Page{
		Id:        req.Id,
		Title:     req.Title,
		Content:   req.Content,
		SectionId: req.SectionId,
	}
	if err := c.service.UpdatePage(ctx.Context(), serverutils.CurrentUser(ctx), page); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update page", toPageDto(page)))
}

func (c *notebookController) DeletePage(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Id must be greater than 0")
	}

	if err := c.service.DeletePage(ctx.Context(), serverutils.CurrentUser(ctx), id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *notebookController) GetPageContent(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Id must be greater than 0")
	}

	content, err := c.service.GetPageContentById(ctx.Context(), serverutils.CurrentUser(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get page content", dto.PageContentResponse{
		Id:      id,
		Content: content,
	}))
}

func toSectionDto(section *entity.Section) dto.SectionDto {
	pages := make([]dto.PageDto, 0, len(section.Pages))
	for _, page := range section.Pages {
		pages = append(pages, toPageDto(page))
	}
	return dto.SectionDto{
		Id:    section.Id,
		Name:  section.Name,
		Pages: pages,
	}
}

func toPageDto(page *entity.Page) dto.PageDto {
	return dto.PageDto{
		Id:          page.Id,
		Title:       page.Title,
		Content:     page.Content,
		SizeInBytes: page.SizeInBytes,
		SectionId:   page.SectionId,
		CreatedAt:   page.CreatedAt,
		UpdatedAt:   page.UpdatedAt,
	}
}

func toSectionDtos(sections []*entity.Section) []dto.SectionDto {
	result := make([]dto.SectionDto, 0, len(sections))
	for _, section := range sections {
		result = append(result, toSectionDto(section))
	}
	return result
}
