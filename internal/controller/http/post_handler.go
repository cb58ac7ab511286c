package http

import (
	"context"
	"net/http"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// ListPosts godoc
// @Summary      List posts
// @Description  List every post, newest first, with category and author
// @Tags         admin-posts
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Filter by status" Enums(draft, published, scheduled)
// @Param        category_id query string false "Filter by category id"
// @Param        search query string false "Match title or excerpt"
// @Success      200  {array}   entity.Post
// @Failure      500  {object}  map[string]string
// @Router       /admin/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	var filters usecase.PostFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		badRequest(c, err)
		return
	}

	posts, err := h.postUseCase.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get post
// @Description  Get a post by id or slug, including tags
// @Tags         admin-posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID or slug"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch post")
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary      Create post
// @Description  Create a post authored by the caller. Slug defaults to the title.
// @Tags         admin-posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post body usecase.CreatePostInput true "Post"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req usecase.CreatePostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	post, err := h.postUseCase.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      Update post
// @Description  Partially update a post. tag_ids replaces the tag set when present.
// @Tags         admin-posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        post body usecase.UpdatePostInput true "Changes"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req usecase.UpdatePostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	post, err := h.postUseCase.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete post
// @Tags         admin-posts
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete post")
		return
	}

	c.Status(http.StatusNoContent)
}

// PublishPost godoc
// @Summary      Publish post
// @Description  Set status to published and stamp published_at with now
// @Tags         admin-posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id}/publish [post]
func (h *PostHandler) PublishPost(c *gin.Context) {
	h.transition(c, h.postUseCase.Publish, "Failed to publish post")
}

// UnpublishPost godoc
// @Summary      Unpublish post
// @Description  Return the post to draft and clear published_at
// @Tags         admin-posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id}/unpublish [post]
func (h *PostHandler) UnpublishPost(c *gin.Context) {
	h.transition(c, h.postUseCase.Unpublish, "Failed to unpublish post")
}

func (h *PostHandler) transition(c *gin.Context, fn func(ctx context.Context, id string) (*entity.Post, error), failure string) {
	post, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, failure)
		return
	}

	c.JSON(http.StatusOK, post)
}
