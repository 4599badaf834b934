package user

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/validator"
	"github.com/joefazee/agora/models"
)

// AdminHandler handles HTTP requests for admin user management
type AdminHandler struct {
	service AdminService
}

// NewAdminHandler creates a new admin user handler
func NewAdminHandler(service AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers godoc
// @Summary      List users
// @Description  List user accounts with optional username and role filters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        username query string false "Username substring filter"
// @Param        role query string false "Role filter"
// @Param        page query int false "Page number"
// @Param        per_page query int false "Page size (max 200)"
// @Success      200 {object} api.Response{data=ListUsersResponse}
// @Failure      422 {object} api.Response
// @Router       /api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var filters ListUsersFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !filters.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	resp, err := h.service.ListUsers(c.Request.Context(), filters)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to list users")
		return
	}

	api.SuccessResponse(c, 200, "Users retrieved successfully", resp)
}

// ChangeRole godoc
// @Summary      Change a user's role
// @Description  Assign a new role to the given user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body ChangeRoleRequest true "Role payload"
// @Success      200 {object} api.Response{data=Response}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Router       /api/v1/admin/users/{id}/role [patch]
func (h *AdminHandler) ChangeRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid user ID")
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	admin, ok := api.UserFromContext(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	user, err := h.service.ChangeRole(c.Request.Context(), admin.ID, userID, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidRole):
			api.BadRequestResponse(c, "Unknown role")
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "User")
		default:
			api.InternalErrorResponse(c, "Failed to change role")
		}
		return
	}

	api.UpdatedResponse(c, "Role updated successfully", user)
}

// AdjustBalance godoc
// @Summary      Adjust a user's balance
// @Description  Apply a signed point adjustment to the given user's balance
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body AdjustBalanceRequest true "Adjustment payload"
// @Success      200 {object} api.Response{data=Response}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      422 {object} api.Response
// @Router       /api/v1/admin/users/{id}/balance [post]
func (h *AdminHandler) AdjustBalance(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid user ID")
		return
	}

	var req AdjustBalanceRequest
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

	user, err := h.service.AdjustBalance(c.Request.Context(), admin.ID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "User")
		case errors.Is(err, models.ErrInsufficientBalance):
			api.ConflictResponse(c, "Adjustment would make the balance negative")
		default:
			api.InternalErrorResponse(c, "Failed to adjust balance")
		}
		return
	}

	api.UpdatedResponse(c, "Balance adjusted successfully", user)
}
