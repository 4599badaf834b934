package categories

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/models"
)

// Handler handles HTTP requests for categories
type Handler struct {
	service Service
}

// NewHandler creates a new category handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetCategories godoc
// @Summary      List categories
// @Description  All active market categories. Pass all=true to include inactive ones.
// @Tags         categories
// @Produce      json
// @Param        all query bool false "Include inactive categories"
// @Success      200 {object} api.Response{data=[]CategoryResponse}
// @Router       /api/v1/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	var (
		list []CategoryResponse
		err  error
	)
	if c.Query("all") == "true" {
		list, err = h.service.GetCategories(c.Request.Context())
	} else {
		list, err = h.service.GetActiveCategories(c.Request.Context())
	}
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch categories")
		return
	}

	api.SuccessResponse(c, 200, "Categories fetched successfully", list)
}

// GetCategoryByID godoc
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200 {object} api.Response{data=CategoryResponse}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Router       /api/v1/categories/{id} [get]
func (h *Handler) GetCategoryByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid category ID")
		return
	}

	category, err := h.service.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Category")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch category")
		return
	}

	api.SuccessResponse(c, 200, "Category fetched successfully", category)
}

// GetCategoryBySlug godoc
// @Summary      Get a category by slug
// @Tags         categories
// @Produce      json
// @Param        slug path string true "Category slug"
// @Success      200 {object} api.Response{data=CategoryResponse}
// @Failure      404 {object} api.Response
// @Router       /api/v1/categories/slug/{slug} [get]
func (h *Handler) GetCategoryBySlug(c *gin.Context) {
	category, err := h.service.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Category")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch category")
		return
	}

	api.SuccessResponse(c, 200, "Category fetched successfully", category)
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCategoryRequest true "Category payload"
// @Success      201 {object} api.Response{data=CategoryResponse}
// @Failure      400 {object} api.Response
// @Failure      409 {object} api.Response
// @Router       /api/v1/admin/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCategorySlug), errors.Is(err, models.ErrInvalidCategoryName):
			api.BadRequestResponse(c, err.Error())
		case errors.Is(err, models.ErrDuplicateCategorySlug):
			api.ConflictResponse(c, "A category with this slug already exists")
		default:
			api.InternalErrorResponse(c, "Failed to create category")
		}
		return
	}

	api.CreatedResponse(c, "Category created successfully", category)
}

// UpdateCategory godoc
// @Summary      Update a category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Param        request body UpdateCategoryRequest true "Category payload"
// @Success      200 {object} api.Response{data=CategoryResponse}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Router       /api/v1/admin/categories/{id} [put]
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid category ID")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Category")
		case errors.Is(err, models.ErrInvalidCategoryName):
			api.BadRequestResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to update category")
		}
		return
	}

	api.UpdatedResponse(c, "Category updated successfully", category)
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Success      200 {object} api.Response
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      409 {object} api.Response
// @Router       /api/v1/admin/categories/{id} [delete]
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Category")
		case errors.Is(err, models.ErrCategoryInUse):
			api.ConflictResponse(c, "Category still has markets attached")
		default:
			api.InternalErrorResponse(c, "Failed to delete category")
		}
		return
	}

	api.SuccessResponse(c, 200, "Category deleted successfully", nil)
}
