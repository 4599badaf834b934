package platform

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/validator"
)

// Handler handles HTTP requests for platform settings
type Handler struct {
	service Service
}

// NewHandler creates a new platform settings handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetSettings godoc
// @Summary      Get platform settings
// @Description  Return the current platform configuration
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.Response{data=SettingsResponse}
// @Failure      500  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/admin/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to load platform settings")
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Platform settings retrieved", settings)
}

// UpdateSettings godoc
// @Summary      Update platform settings
// @Description  Apply a partial update to the platform configuration
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      UpdateSettingsRequest  true  "Fields to update"
// @Success      200      {object}  api.Response{data=SettingsResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Failure      500      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/admin/settings [patch]
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	settings, err := h.service.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to update platform settings")
		return
	}

	api.UpdatedResponse(c, "Platform settings updated", settings)
}
