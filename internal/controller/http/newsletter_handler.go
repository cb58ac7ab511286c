package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/logger"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterUseCase usecase.NewsletterUseCase
	logger            *logger.Logger
	now               func() time.Time
}

func NewNewsletterHandler(newsletterUseCase usecase.NewsletterUseCase, logger *logger.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterUseCase: newsletterUseCase,
		logger:            logger,
		now:               time.Now,
	}
}

// Subscribe godoc
// @Summary      Subscribe to the newsletter
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        subscription body usecase.SubscribeInput true "Subscriber"
// @Success      201  {object}  entity.NewsletterSubscriber
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req usecase.SubscribeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	subscriber, err := h.newsletterUseCase.Subscribe(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to subscribe")
		return
	}

	c.JSON(http.StatusCreated, subscriber)
}

// ListSubscribers godoc
// @Summary      List subscribers
// @Description  All subscribers, newest first. active=true keeps only active ones.
// @Tags         admin-newsletter
// @Produce      json
// @Security     BearerAuth
// @Param        active query bool false "Only active subscribers"
// @Success      200  {array}   entity.NewsletterSubscriber
// @Router       /admin/newsletter [get]
func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	list := h.newsletterUseCase.List
	if c.Query("active") == "true" {
		list = h.newsletterUseCase.ListActive
	}

	subscribers, err := list(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch subscribers")
		return
	}

	c.JSON(http.StatusOK, subscribers)
}

// Unsubscribe godoc
// @Summary      Unsubscribe
// @Description  Mark a subscriber inactive and stamp unsubscribed_at
// @Tags         admin-newsletter
// @Security     BearerAuth
// @Param        id path string true "Subscriber ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/newsletter/{id}/unsubscribe [post]
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	if err := h.newsletterUseCase.Unsubscribe(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to unsubscribe")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteSubscriber godoc
// @Summary      Delete subscriber
// @Tags         admin-newsletter
// @Security     BearerAuth
// @Param        id path string true "Subscriber ID"
// @Success      204
// @Router       /admin/newsletter/{id} [delete]
func (h *NewsletterHandler) DeleteSubscriber(c *gin.Context) {
	if err := h.newsletterUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete subscriber")
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportSubscribers godoc
// @Summary      Export subscribers
// @Description  CSV download of every subscriber
// @Tags         admin-newsletter
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string
// @Router       /admin/newsletter/export [get]
func (h *NewsletterHandler) ExportSubscribers(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.newsletterUseCase.ExportCSV(c.Request.Context(), &buf); err != nil {
		respondError(c, h.logger, err, "Failed to export subscribers")
		return
	}

	filename := usecase.ExportFilename(h.now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
