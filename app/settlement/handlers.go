package settlement

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/sanitizer"
	"github.com/joefazee/agora/internal/validator"
	"github.com/joefazee/agora/models"
)

// Handler handles HTTP requests for market settlement and disputes
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
}

// NewHandler creates a new settlement handler
func NewHandler(service Service, s sanitizer.HTMLStripperer) *Handler {
	return &Handler{service: service, sanitizer: s}
}

// ResolveMarket godoc
// @Summary      Resolve a market
// @Description  Declare the winning outcome of a closed market and pay out predictions
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Market ID"
// @Param        request body ResolveRequest true "Resolution payload"
// @Success      200 {object} api.Response{data=ResolutionResponse}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      409 {object} api.Response
// @Failure      422 {object} api.Response
// @Router       /api/v1/admin/markets/{id}/resolve [post]
func (h *Handler) ResolveMarket(c *gin.Context) {
	marketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid market ID")
		return
	}

	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.SanitizeAndValidate(v, h.sanitizer) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	admin, ok := api.UserFromContext(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	resolution, err := h.service.ResolveMarket(c.Request.Context(), admin.ID, marketID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Market")
		case errors.Is(err, models.ErrInvalidOutcome):
			api.BadRequestResponse(c, "Winning outcome does not belong to this market")
		case errors.Is(err, models.ErrMarketAlreadyResolved):
			api.ConflictResponse(c, "Market has already been resolved")
		case errors.Is(err, models.ErrInvalidStateTransition):
			api.ConflictResponse(c, "Only closed markets can be resolved")
		default:
			api.InternalErrorResponse(c, "Failed to resolve market")
		}
		return
	}

	api.SuccessResponse(c, 200, "Market resolved successfully", resolution)
}

// FileDispute godoc
// @Summary      Dispute a resolution
// @Description  Challenge a resolved market within the dispute window
// @Tags         settlement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Market ID"
// @Param        request body FileDisputeRequest true "Dispute payload"
// @Success      201 {object} api.Response{data=DisputeResponse}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      409 {object} api.Response
// @Failure      422 {object} api.Response
// @Router       /api/v1/markets/{id}/disputes [post]
func (h *Handler) FileDispute(c *gin.Context) {
	marketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid market ID")
		return
	}

	var req FileDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.SanitizeAndValidate(v, h.sanitizer) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	user, ok := api.UserFromContext(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	dispute, err := h.service.FileDispute(c.Request.Context(), user.ID, marketID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Market")
		case errors.Is(err, models.ErrDisputeWindowClosed):
			api.ConflictResponse(c, "The dispute window for this market has closed")
		case errors.Is(err, models.ErrDuplicateDispute):
			api.ConflictResponse(c, "You have already disputed this market")
		case errors.Is(err, models.ErrInvalidStateTransition):
			api.ConflictResponse(c, "Only resolved markets can be disputed")
		default:
			api.InternalErrorResponse(c, "Failed to file dispute")
		}
		return
	}

	api.CreatedResponse(c, "Dispute filed successfully", dispute)
}

// DecideDispute godoc
// @Summary      Decide a dispute
// @Description  Uphold, overturn or invalidate a pending dispute
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Dispute ID"
// @Param        request body DecideDisputeRequest true "Decision payload"
// @Success      200 {object} api.Response{data=DisputeResponse}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      409 {object} api.Response
// @Failure      422 {object} api.Response
// @Router       /api/v1/admin/disputes/{id}/decision [post]
func (h *Handler) DecideDispute(c *gin.Context) {
	disputeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid dispute ID")
		return
	}

	var req DecideDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.SanitizeAndValidate(v, h.sanitizer) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	admin, ok := api.UserFromContext(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	dispute, err := h.service.DecideDispute(c.Request.Context(), admin.ID, disputeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Dispute")
		case errors.Is(err, models.ErrDisputeAlreadyDecided):
			api.ConflictResponse(c, "Dispute has already been decided")
		case errors.Is(err, models.ErrInvalidDisputeDecision):
			api.BadRequestResponse(c, "Unknown dispute decision")
		case errors.Is(err, models.ErrMissingNewWinner):
			api.BadRequestResponse(c, "Overturning a resolution requires a new winning outcome")
		case errors.Is(err, models.ErrInvalidOutcome):
			api.BadRequestResponse(c, "New winning outcome does not belong to this market")
		case errors.Is(err, models.ErrInvalidStateTransition):
			api.ConflictResponse(c, "Market is not under dispute")
		default:
			api.InternalErrorResponse(c, "Failed to decide dispute")
		}
		return
	}

	api.UpdatedResponse(c, "Dispute decided successfully", dispute)
}

// ListDisputes godoc
// @Summary      List disputes
// @Description  Paginated dispute listing, optionally filtered by status or market
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Dispute status"
// @Param        market_id query string false "Market ID"
// @Param        page query int false "Page number"
// @Param        per_page query int false "Items per page"
// @Success      200 {object} api.Response{data=DisputeListResponse}
// @Failure      400 {object} api.Response
// @Failure      422 {object} api.Response
// @Router       /api/v1/admin/disputes [get]
func (h *Handler) ListDisputes(c *gin.Context) {
	var filters DisputeFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !filters.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	resp, err := h.service.ListDisputes(c.Request.Context(), filters)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch disputes")
		return
	}

	api.SuccessResponse(c, 200, "Disputes fetched successfully", resp)
}
