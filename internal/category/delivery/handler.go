package delivery

import (
	"errors"
	"net/http"

	"howtouseai-backend/internal/category/dto"
	"howtouseai-backend/internal/category/usecase"
	"howtouseai-backend/pkg/response"
	"howtouseai-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryUsecase usecase.CategoryUsecase
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryUsecase usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{
		categoryUsecase: categoryUsecase,
	}
}

// GetCategories returns all categories sorted by name
// GET /api/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryUsecase.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, categories, "Categories retrieved successfully.")
}

// GetCategoryByID returns a single category
// GET /api/categories/:id
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryUsecase.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, category, "Category retrieved successfully.")
}

// CreateCategory creates a category from a multipart form (name, iconFile)
// POST /api/admin/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	icon, closeIcon, err := formIcon(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeIcon()
	req.Icon = icon

	zap.L().Info("create category requested", zap.String("name", req.Name), zap.Bool("has_icon", icon != nil))

	category, err := h.categoryUsecase.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, category, "Category created successfully.")
}

// UpdateCategory updates name and/or icon from a multipart form
// PUT /api/admin/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	icon, closeIcon, err := formIcon(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeIcon()
	req.Icon = icon

	category, err := h.categoryUsecase.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, category, "Category updated successfully.")
}

// formIcon opens the optional iconFile part. A missing part yields a nil file.
func formIcon(c *gin.Context) (*storage.File, func(), error) {
	noop := func() {}

	header, err := c.FormFile("iconFile")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, noop, err
	}
	return &storage.File{Name: header.Filename, Size: header.Size, Reader: src}, func() { src.Close() }, nil
}
