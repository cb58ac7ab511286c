package http

import (
	"net/http"

	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/logger"

	"github.com/gin-gonic/gin"
)

// TaxonomyHandler serves categories and tags.
type TaxonomyHandler struct {
	categoryUseCase usecase.CategoryUseCase
	tagUseCase      usecase.TagUseCase
	logger          *logger.Logger
}

func NewTaxonomyHandler(categoryUseCase usecase.CategoryUseCase, tagUseCase usecase.TagUseCase, logger *logger.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{
		categoryUseCase: categoryUseCase,
		tagUseCase:      tagUseCase,
		logger:          logger,
	}
}

// ListCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   entity.Category
// @Router       /categories [get]
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary      Get category by slug
// @Tags         categories
// @Produce      json
// @Param        slug path string true "Category slug"
// @Success      200  {object}  entity.Category
// @Failure      404  {object}  map[string]string
// @Router       /categories/{slug} [get]
func (h *TaxonomyHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryUseCase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch category")
		return
	}

	c.JSON(http.StatusOK, category)
}

// CreateCategory godoc
// @Summary      Create category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category body usecase.CreateCategoryInput true "Category"
// @Success      201  {object}  entity.Category
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/categories [post]
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req usecase.CreateCategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	category, err := h.categoryUseCase.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary      Update category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Param        category body usecase.UpdateCategoryInput true "Changes"
// @Success      200  {object}  entity.Category
// @Failure      404  {object}  map[string]string
// @Router       /admin/categories/{id} [put]
func (h *TaxonomyHandler) UpdateCategory(c *gin.Context) {
	var req usecase.UpdateCategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	category, err := h.categoryUseCase.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary      Delete category
// @Tags         admin-categories
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Success      204
// @Router       /admin/categories/{id} [delete]
func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete category")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTags godoc
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Success      200  {array}   entity.Tag
// @Router       /tags [get]
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	tags, err := h.tagUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch tags")
		return
	}

	c.JSON(http.StatusOK, tags)
}

// GetTag godoc
// @Summary      Get tag by slug
// @Tags         tags
// @Produce      json
// @Param        slug path string true "Tag slug"
// @Success      200  {object}  entity.Tag
// @Failure      404  {object}  map[string]string
// @Router       /tags/{slug} [get]
func (h *TaxonomyHandler) GetTag(c *gin.Context) {
	tag, err := h.tagUseCase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch tag")
		return
	}

	c.JSON(http.StatusOK, tag)
}

// CreateTag godoc
// @Summary      Create tag
// @Tags         admin-tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tag body usecase.CreateTagInput true "Tag"
// @Success      201  {object}  entity.Tag
// @Failure      400  {object}  map[string]string
// @Router       /admin/tags [post]
func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var req usecase.CreateTagInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tag, err := h.tagUseCase.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create tag")
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// UpdateTag godoc
// @Summary      Update tag
// @Tags         admin-tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tag ID"
// @Param        tag body usecase.UpdateTagInput true "Changes"
// @Success      200  {object}  entity.Tag
// @Router       /admin/tags/{id} [put]
func (h *TaxonomyHandler) UpdateTag(c *gin.Context) {
	var req usecase.UpdateTagInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tag, err := h.tagUseCase.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update tag")
		return
	}

	c.JSON(http.StatusOK, tag)
}

// DeleteTag godoc
// @Summary      Delete tag
// @Tags         admin-tags
// @Security     BearerAuth
// @Param        id path string true "Tag ID"
// @Success      204
// @Router       /admin/tags/{id} [delete]
func (h *TaxonomyHandler) DeleteTag(c *gin.Context) {
	if err := h.tagUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete tag")
		return
	}

	c.Status(http.StatusNoContent)
}
