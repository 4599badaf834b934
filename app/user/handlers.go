package user

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/sanitizer"
	"github.com/joefazee/agora/internal/validator"
	"github.com/joefazee/agora/models"
)

// Handler handles HTTP requests for user operations
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
}

// NewHandler creates a new user handler
func NewHandler(service Service, s sanitizer.HTMLStripperer) *Handler {
	return &Handler{
		service:   service,
		sanitizer: s,
	}
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a user account and credit the configured starting balance
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration payload"
// @Success      201 {object} api.Response{data=Response}
// @Failure      400 {object} api.Response
// @Failure      422 {object} api.Response
// @Router       /api/v1/users/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.SanitizeAndValidate(v, h.sanitizer) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidUsername) {
			api.ConflictResponse(c, "Username is already taken")
			return
		}
		api.InternalErrorResponse(c, "Failed to register user")
		return
	}

	api.CreatedResponse(c, "Account created successfully", user)
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with username and password and receive an access token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login payload"
// @Success      200 {object} api.Response{data=LoginResponse}
// @Failure      400 {object} api.Response
// @Failure      401 {object} api.Response
// @Router       /api/v1/users/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	res, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			api.UnauthorizedResponse(c)
			return
		}
		api.InternalErrorResponse(c, "Failed to log in")
		return
	}

	api.SuccessResponse(c, 200, "Logged in successfully", res)
}

// GetProfile godoc
// @Summary      Get my profile
// @Description  Return the authenticated user's profile and balance
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} api.Response{data=Response}
// @Failure      401 {object} api.Response
// @Router       /api/v1/users/me [get]
func (h *Handler) GetProfile(c *gin.Context) {
	user, ok := api.UserFromContext(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	res, err := h.service.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "User")
			return
		}
		api.InternalErrorResponse(c, "Failed to load profile")
		return
	}

	api.SuccessResponse(c, 200, "Profile retrieved successfully", res)
}
