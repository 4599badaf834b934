package prediction

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/validator"
	"github.com/joefazee/agora/models"
)

// Handler handles HTTP requests for prediction operations
type Handler struct {
	service Service
	config  *Config
}

// NewHandler creates a new prediction handler
func NewHandler(service Service, config *Config) *Handler {
	return &Handler{service: service, config: config}
}

// PlaceStake godoc
// @Summary      Place a stake
// @Description  Stake points on an outcome of a live market; the platform fee is deducted up front
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PlaceStakeRequest true "Stake payload"
// @Success      201 {object} api.Response{data=Response}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      409 {object} api.Response
// @Failure      422 {object} api.Response
// @Router       /api/v1/predictions [post]
func (h *Handler) PlaceStake(c *gin.Context) {
	var req PlaceStakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.Validate(v, h.config) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	user, ok := api.UserFromContext(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	resp, err := h.service.PlaceStake(c.Request.Context(), user.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Market")
		case errors.Is(err, models.ErrMarketNotLive):
			api.ConflictResponse(c, "Market is not accepting predictions")
		case errors.Is(err, models.ErrMarketClosed):
			api.ConflictResponse(c, "Market has closed")
		case errors.Is(err, models.ErrInvalidOutcome):
			api.BadRequestResponse(c, "Outcome does not belong to this market")
		case errors.Is(err, models.ErrInvalidStakeAmount):
			api.BadRequestResponse(c, "Stake amount must be at least 1 point")
		case errors.Is(err, models.ErrInsufficientBalance):
			api.ConflictResponse(c, "Insufficient points balance")
		default:
			api.InternalErrorResponse(c, "Failed to place stake")
		}
		return
	}

	api.CreatedResponse(c, "Stake placed successfully", resp)
}

// GetMyPredictions godoc
// @Summary      List my predictions
// @Description  List the authenticated user's predictions, newest first
// @Tags         predictions
// @Produce      json
// @Security     BearerAuth
// @Param        market_id query string false "Market filter"
// @Param        page query int false "Page number"
// @Param        per_page query int false "Page size (max 200)"
// @Success      200 {object} api.Response{data=ListResponse}
// @Failure      422 {object} api.Response
// @Router       /api/v1/predictions/mine [get]
func (h *Handler) GetMyPredictions(c *gin.Context) {
	var filters ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !filters.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	user, ok := api.UserFromContext(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	resp, err := h.service.GetMyPredictions(c.Request.Context(), user.ID, filters)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to list predictions")
		return
	}

	api.SuccessResponse(c, 200, "Predictions retrieved successfully", resp)
}

// GetMarketPredictions godoc
// @Summary      List market predictions
// @Description  List every prediction on a market
// @Tags         predictions
// @Produce      json
// @Param        id path string true "Market ID"
// @Success      200 {object} api.Response{data=[]Response}
// @Failure      400 {object} api.Response
// @Router       /api/v1/markets/{id}/predictions [get]
func (h *Handler) GetMarketPredictions(c *gin.Context) {
	marketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid market ID")
		return
	}

	resp, err := h.service.GetMarketPredictions(c.Request.Context(), marketID)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to list predictions")
		return
	}

	api.ListResponse(c, "Predictions retrieved successfully", resp, len(resp))
}
