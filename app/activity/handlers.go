package activity

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/validator"
)

// Handler handles HTTP requests for the activity feed
type Handler struct {
	service Service
}

// NewHandler creates a new activity handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary      List activity records
// @Description  Paginated audit trail, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        user_id      query     string  false  "Filter by actor"
// @Param        action_type  query     string  false  "Filter by action type"
// @Param        page         query     int     false  "Page number"
// @Param        per_page     query     int     false  "Page size"
// @Success      200  {object}  api.Response{data=ListResponse}
// @Failure      400  {object}  api.Response{error=api.ErrorInfo}
// @Failure      500  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/admin/activity [get]
func (h *Handler) List(c *gin.Context) {
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

	resp, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to load activity records")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Activity records retrieved", resp)
}
