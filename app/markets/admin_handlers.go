package markets

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/validator"
	"github.com/joefazee/agora/models"
)

// AdminHandler handles HTTP requests for admin market lifecycle actions
type AdminHandler struct {
	service AdminService
}

// NewAdminHandler creates a new admin market handler
func NewAdminHandler(service AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// adminActions maps the URL action segment to a lifecycle action. Resolve
// and dispute decisions live in the settlement module and are not reachable
// from here.
var adminActions = map[string]models.MarketAction{
	"approve":  models.ActionApprove,
	"activate": models.ActionActivate,
	"close":    models.ActionClose,
	"dissolve": models.ActionDissolve,
}

// ApplyAction godoc
// @Summary      Apply a lifecycle action
// @Description  Approve, activate, close or dissolve a market
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Market ID"
// @Param        action path string true "Action" Enums(approve, activate, close, dissolve)
// @Success      200 {object} api.Response{data=MarketResponse}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      409 {object} api.Response
// @Router       /api/v1/admin/markets/{id}/actions/{action} [post]
func (h *AdminHandler) ApplyAction(c *gin.Context) {
	marketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid market ID")
		return
	}

	action, ok := adminActions[c.Param("action")]
	if !ok {
		api.BadRequestResponse(c, "Unknown market action")
		return
	}

	admin, ok := api.UserFromContext(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	market, err := h.service.ApplyAction(c.Request.Context(), admin.ID, marketID, action)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Market")
		case errors.Is(err, models.ErrInvalidStateTransition):
			api.ConflictResponse(c, "Market is not in a status that allows this action")
		default:
			api.InternalErrorResponse(c, "Failed to apply market action")
		}
		return
	}

	api.UpdatedResponse(c, "Market updated successfully", market)
}

// GrantBonus godoc
// @Summary      Grant a pool bonus
// @Description  Add admin points to a market's pools, split evenly across outcomes
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Market ID"
// @Param        request body BonusRequest true "Bonus payload"
// @Success      200 {object} api.Response{data=MarketResponse}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      409 {object} api.Response
// @Failure      422 {object} api.Response
// @Router       /api/v1/admin/markets/{id}/bonus [post]
func (h *AdminHandler) GrantBonus(c *gin.Context) {
	marketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid market ID")
		return
	}

	var req BonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	admin, ok := api.UserFromContext(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	market, err := h.service.GrantBonus(c.Request.Context(), admin.ID, marketID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Market")
		case errors.Is(err, models.ErrInvalidBonusAmount):
			api.BadRequestResponse(c, "Bonus amount must be greater than zero")
		case errors.Is(err, models.ErrInvalidStateTransition):
			api.ConflictResponse(c, "Bonuses may only be granted to approved or live markets")
		default:
			api.InternalErrorResponse(c, "Failed to grant bonus")
		}
		return
	}

	api.UpdatedResponse(c, "Bonus granted successfully", market)
}

// Stats godoc
// @Summary      Platform statistics
// @Description  Market counts per status plus prediction and user totals
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} api.Response{data=StatsResponse}
// @Router       /api/v1/admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to compute statistics")
		return
	}

	api.SuccessResponse(c, 200, "Statistics retrieved successfully", stats)
}
