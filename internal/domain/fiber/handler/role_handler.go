package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hyrind/role-recommender/internal/dto"
	"github.com/hyrind/role-recommender/internal/usecase"
	"github.com/hyrind/role-recommender/internal/util"
	"gorm.io/gorm"
)

type RoleHandler struct {
	catalog *usecase.RoleCatalogUsecase
}

func NewRoleHandler(catalog *usecase.RoleCatalogUsecase) *RoleHandler {
	return &RoleHandler{catalog: catalog}
}

func (h *RoleHandler) RegisterRoutes(app *fiber.App) {
	roles := app.Group("/job-roles")
	roles.Get("/", h.List)
	roles.Get("/categories", h.Categories)
	roles.Get("/by-category", h.ByCategory)
	roles.Get("/:id", h.Get)
}

func (h *RoleHandler) List(c *fiber.Ctx) error {
	roles, err := h.catalog.ListActive()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list job roles",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list job roles",
		Data:    dto.NewJobRoleSummaryDTOs(roles),
	})
}

func (h *RoleHandler) Get(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	role, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "job role not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get job role",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job role",
		Data:    dto.NewJobRoleDTO(role),
	})
}

func (h *RoleHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list categories",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list categories",
		Data:    fiber.Map{"categories": categories},
	})
}

func (h *RoleHandler) ByCategory(c *fiber.Ctx) error {
	grouped, err := h.catalog.GroupedByCategory()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to group job roles",
		}, err)
	}
	data := make(map[string][]dto.JobRoleSummaryDTO, len(grouped))
	for category, roles := range grouped {
		data[category] = dto.NewJobRoleSummaryDTOs(roles)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success group job roles by category",
		Data:    data,
	})
}
