package markets

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/sanitizer"
	"github.com/joefazee/agora/internal/validator"
	"github.com/joefazee/agora/models"
)

// Handler handles HTTP requests for market operations
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
	config    *Config
}

// NewHandler creates a new market handler
func NewHandler(service Service, s sanitizer.HTMLStripperer, config *Config) *Handler {
	return &Handler{
		service:   service,
		sanitizer: s,
		config:    config,
	}
}

// ProposeMarket godoc
// @Summary      Propose a market
// @Description  Create a market proposal with 2-5 outcomes, awaiting community approval
// @Tags         markets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateMarketRequest true "Market proposal"
// @Success      201 {object} api.Response{data=MarketResponse}
// @Failure      400 {object} api.Response
// @Failure      422 {object} api.Response
// @Router       /api/v1/markets [post]
func (h *Handler) ProposeMarket(c *gin.Context) {
	var req CreateMarketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.SanitizeAndValidate(v, h.sanitizer, h.config) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	user, ok := api.UserFromContext(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	market, err := h.service.ProposeMarket(c.Request.Context(), user.ID, &req)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to create market")
		return
	}

	api.CreatedResponse(c, "Market proposed successfully", market)
}

// GetMarkets godoc
// @Summary      List markets
// @Description  List markets with optional status, creator and search filters
// @Tags         markets
// @Produce      json
// @Param        status query string false "Status filter"
// @Param        creator_id query string false "Creator filter"
// @Param        search query string false "Question search"
// @Param        page query int false "Page number"
// @Param        per_page query int false "Page size (max 100)"
// @Success      200 {object} api.Response{data=MarketListResponse}
// @Failure      422 {object} api.Response
// @Router       /api/v1/markets [get]
func (h *Handler) GetMarkets(c *gin.Context) {
	var filters MarketFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !filters.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	resp, err := h.service.GetMarkets(c.Request.Context(), &filters)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to list markets")
		return
	}

	api.SuccessResponse(c, 200, "Markets retrieved successfully", resp)
}

// GetMarket godoc
// @Summary      Get a market
// @Description  Return one market with its outcomes and pools
// @Tags         markets
// @Produce      json
// @Param        id path string true "Market ID"
// @Success      200 {object} api.Response{data=MarketResponse}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Router       /api/v1/markets/{id} [get]
func (h *Handler) GetMarket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid market ID")
		return
	}

	market, err := h.service.GetMarketByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Market")
			return
		}
		api.InternalErrorResponse(c, "Failed to retrieve market")
		return
	}

	api.SuccessResponse(c, 200, "Market retrieved successfully", market)
}

// CastVote godoc
// @Summary      Vote on a proposed market
// @Description  Record one approval or rejection vote; crossing the threshold approves the market
// @Tags         markets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Market ID"
// @Param        request body VoteRequest true "Vote payload"
// @Success      200 {object} api.Response{data=VoteResponse}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      409 {object} api.Response
// @Router       /api/v1/markets/{id}/votes [post]
func (h *Handler) CastVote(c *gin.Context) {
	marketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid market ID")
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	user, ok := api.UserFromContext(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	resp, err := h.service.CastVote(c.Request.Context(), marketID, user.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Market")
		case errors.Is(err, models.ErrCreatorVote):
			api.ForbiddenResponse(c, "You cannot vote on your own market")
		case errors.Is(err, models.ErrDuplicateVote):
			api.ConflictResponse(c, "You have already voted on this market")
		case errors.Is(err, models.ErrApprovalDeadlinePast):
			api.ConflictResponse(c, "The approval deadline has passed")
		case errors.Is(err, models.ErrInvalidStateTransition):
			api.ConflictResponse(c, "Market is no longer accepting votes")
		default:
			api.InternalErrorResponse(c, "Failed to record vote")
		}
		return
	}

	api.SuccessResponse(c, 200, "Vote recorded successfully", resp)
}
