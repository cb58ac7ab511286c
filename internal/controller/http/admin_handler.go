package http

import (
	"net/http"

	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/content"
	"imersao-completa/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	statsUseCase usecase.StatsUseCase
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewAdminHandler(statsUseCase usecase.StatsUseCase, mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		statsUseCase: statsUseCase,
		mediaUseCase: mediaUseCase,
		logger:       logger,
	}
}

type ValidateContentRequest struct {
	Content string `json:"content"`
}

type ValidateContentResponse struct {
	content.Validation
	Stats content.Stats `json:"stats"`
}

// Stats godoc
// @Summary      Dashboard counters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.DashboardStats
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.statsUseCase.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UploadMedia godoc
// @Summary      Upload image
// @Description  Store an image under posts, banners or avatars and return its URL
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image"
// @Param        folder formData string false "Target folder" Enums(posts, banners, avatars)
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /admin/media [post]
func (h *AdminHandler) UploadMedia(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	defer file.Close()

	if header.Size > usecase.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	folder := c.DefaultPostForm("folder", usecase.FolderPosts)

	url, err := h.mediaUseCase.Upload(
		c.Request.Context(),
		c.GetString("user_id"),
		folder,
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		respondError(c, h.logger, err, "Failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// ValidateContent godoc
// @Summary      Check post content
// @Description  SEO checklist and structural statistics for a post body
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body ValidateContentRequest true "Post content"
// @Success      200  {object}  ValidateContentResponse
// @Router       /admin/content/validate [post]
func (h *AdminHandler) ValidateContent(c *gin.Context) {
	var req ValidateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, ValidateContentResponse{
		Validation: content.Validate(req.Content),
		Stats:      content.ContentStats(req.Content),
	})
}
