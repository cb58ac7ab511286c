package http

import (
	"net/http"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the reader-facing post listings.
type PublicHandler struct {
	publicUseCase usecase.PublicPostUseCase
	logger        *logger.Logger
}

func NewPublicHandler(publicUseCase usecase.PublicPostUseCase, logger *logger.Logger) *PublicHandler {
	return &PublicHandler{
		publicUseCase: publicUseCase,
		logger:        logger,
	}
}

// Featured godoc
// @Summary      Featured posts
// @Description  The 3 most recently published posts
// @Tags         public
// @Produce      json
// @Success      200  {array}   entity.Post
// @Router       /posts/featured [get]
func (h *PublicHandler) Featured(c *gin.Context) {
	posts, err := h.publicUseCase.Featured(c.Request.Context())
	h.list(c, posts, err)
}

// Recent godoc
// @Summary      Recent posts
// @Description  The 12 most recently published posts
// @Tags         public
// @Produce      json
// @Success      200  {array}   entity.Post
// @Router       /posts/recent [get]
func (h *PublicHandler) Recent(c *gin.Context) {
	posts, err := h.publicUseCase.Recent(c.Request.Context())
	h.list(c, posts, err)
}

// Popular godoc
// @Summary      Popular posts
// @Description  The 5 most viewed published posts
// @Tags         public
// @Produce      json
// @Success      200  {array}   entity.Post
// @Router       /posts/popular [get]
func (h *PublicHandler) Popular(c *gin.Context) {
	posts, err := h.publicUseCase.Popular(c.Request.Context())
	h.list(c, posts, err)
}

// Search godoc
// @Summary      Search posts
// @Description  Published posts whose title or excerpt match the query
// @Tags         public
// @Produce      json
// @Param        search query string false "Search text"
// @Success      200  {array}   entity.Post
// @Router       /posts [get]
func (h *PublicHandler) Search(c *gin.Context) {
	posts, err := h.publicUseCase.Search(c.Request.Context(), c.Query("search"))
	h.list(c, posts, err)
}

// ByCategory godoc
// @Summary      Posts in category
// @Tags         public
// @Produce      json
// @Param        slug path string true "Category slug"
// @Success      200  {array}   entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /categories/{slug}/posts [get]
func (h *PublicHandler) ByCategory(c *gin.Context) {
	posts, err := h.publicUseCase.ByCategory(c.Request.Context(), c.Param("slug"))
	h.list(c, posts, err)
}

// BySlug godoc
// @Summary      Read article
// @Description  A published post with author and tags. Counts a view.
// @Tags         public
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/slug/{slug} [get]
func (h *PublicHandler) BySlug(c *gin.Context) {
	post, err := h.publicUseCase.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// Related godoc
// @Summary      Related posts
// @Description  Up to 4 other published posts, same category when given
// @Tags         public
// @Produce      json
// @Param        id path string true "Current post ID"
// @Param        category_id query string false "Category to prefer"
// @Success      200  {array}   entity.Post
// @Router       /posts/{id}/related [get]
func (h *PublicHandler) Related(c *gin.Context) {
	posts, err := h.publicUseCase.Related(c.Request.Context(), c.Param("id"), c.Query("category_id"))
	h.list(c, posts, err)
}

func (h *PublicHandler) list(c *gin.Context, posts []*entity.Post, err error) {
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch posts")
		return
	}
	if posts == nil {
		posts = []*entity.Post{}
	}

	c.JSON(http.StatusOK, posts)
}
