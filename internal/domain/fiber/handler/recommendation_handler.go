package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/dto"
	"github.com/hyrind/role-recommender/internal/repository"
	"github.com/hyrind/role-recommender/internal/usecase"
	"github.com/hyrind/role-recommender/internal/util"
	"gorm.io/gorm"
)

const maxGenerateLimit = 50

type RecommendationHandler struct {
	recommendations *usecase.RecommendationUsecase
	profiles        *usecase.ProfileUsecase
}

func NewRecommendationHandler(recommendations *usecase.RecommendationUsecase, profiles *usecase.ProfileUsecase) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations, profiles: profiles}
}

func (h *RecommendationHandler) RegisterRoutes(app *fiber.App) {
	users := app.Group("/users/:userID")
	users.Get("/skill-profile", h.GetSkillProfile)
	users.Post("/skill-profile/sync", h.SyncSkillProfile)
	users.Get("/recommendations", h.List)
	users.Post("/recommendations/generate", h.Generate)
	users.Get("/recommendations/by-category", h.ByCategory)

	app.Post("/recommendations/:id/action", h.ApplyAction)
	app.Post("/recommendations/:id/feedback", h.SubmitFeedback)
}

func (h *RecommendationHandler) GetSkillProfile(c *fiber.Ctx) error {
	userID, ok := parseUUIDParam(c, "userID")
	if !ok {
		return nil
	}
	profile, err := h.profiles.Get(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Skill profile not found. Sync from the intake form first",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load skill profile",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get skill profile",
		Data:    dto.NewSkillProfileDTO(profile),
	})
}

func (h *RecommendationHandler) SyncSkillProfile(c *fiber.Ctx) error {
	userID, ok := parseUUIDParam(c, "userID")
	if !ok {
		return nil
	}
	profile, err := h.profiles.Sync(userID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to sync skill profile",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Skill profile synced successfully",
		Data:    dto.NewSkillProfileDTO(profile),
	})
}

func (h *RecommendationHandler) List(c *fiber.Ctx) error {
	userID, ok := parseUUIDParam(c, "userID")
	if !ok {
		return nil
	}

	filter := repository.ListFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Ordering: c.Query("ordering"),
	}
	if minScore := c.QueryFloat("min_score", -1); minScore >= 0 {
		filter.MinScore = &minScore
	}

	recs, stats, err := h.recommendations.List(userID, filter)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list recommendations",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list recommendations",
		Data:    dto.NewRecommendationSummaryDTOs(recs),
		Meta: fiber.Map{
			"count":            stats.Total,
			"interested_count": stats.Interested,
			"dismissed_count":  stats.Dismissed,
		},
	})
}

func (h *RecommendationHandler) Generate(c *fiber.Ctx) error {
	userID, ok := parseUUIDParam(c, "userID")
	if !ok {
		return nil
	}

	var req struct {
		Limit        int  `json:"limit"`
		ForceRefresh bool `json:"force_refresh"`
	}
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.Limit > maxGenerateLimit {
		req.Limit = maxGenerateLimit
	}

	recs, err := h.recommendations.Generate(userID, req.Limit, req.ForceRefresh)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to generate recommendations",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Recommendations generated successfully",
		Data:    dto.NewRecommendationSummaryDTOs(recs),
		Meta:    fiber.Map{"count": len(recs)},
	})
}

func (h *RecommendationHandler) ByCategory(c *fiber.Ctx) error {
	userID, ok := parseUUIDParam(c, "userID")
	if !ok {
		return nil
	}

	grouped, err := h.recommendations.ByCategory(userID, c.QueryInt("limit", 5))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to group recommendations",
		}, err)
	}

	data := make(map[string][]dto.RecommendationSummaryDTO, len(grouped))
	for category, recs := range grouped {
		data[category] = dto.NewRecommendationSummaryDTOs(recs)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success group recommendations by category",
		Data:    data,
	})
}

func (h *RecommendationHandler) ApplyAction(c *fiber.Ctx) error {
	recID, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}

	var req struct {
		Action string `json:"action"`
	}
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	rec, err := h.recommendations.ApplyAction(recID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAction):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "recommendation not found",
			})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "failed to apply action",
			}, err)
		}
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Action applied",
		Data:    dto.NewRecommendationDTO(rec),
	})
}

func (h *RecommendationHandler) SubmitFeedback(c *fiber.Ctx) error {
	recID, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}

	var req struct {
		FeedbackType string `json:"feedback_type"`
		Comment      string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	feedback, err := h.recommendations.SubmitFeedback(recID, req.FeedbackType, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidFeedbackType):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "recommendation not found",
			})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "failed to submit feedback",
			}, err)
		}
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Feedback submitted successfully",
		Data:    dto.NewFeedbackDTO(feedback),
	})
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		_ = util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: name + " must be a valid UUID",
		}, err)
		return uuid.Nil, false
	}
	return id, true
}
