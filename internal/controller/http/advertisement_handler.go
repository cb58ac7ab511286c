package http

import (
	"context"
	"net/http"
	"time"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/logger"

	"github.com/gin-gonic/gin"
)

const trackingTimeout = 5 * time.Second

type AdvertisementHandler struct {
	adUseCase usecase.AdvertisementUseCase
	logger    *logger.Logger
}

func NewAdvertisementHandler(adUseCase usecase.AdvertisementUseCase, logger *logger.Logger) *AdvertisementHandler {
	return &AdvertisementHandler{
		adUseCase: adUseCase,
		logger:    logger,
	}
}

// ForPosition godoc
// @Summary      Ad for a slot
// @Description  The highest priority running ad for the position; null when none
// @Tags         ads
// @Produce      json
// @Param        position path string true "Position" Enums(header, sidebar, article-top, article-middle, article-bottom)
// @Success      200  {object}  entity.Advertisement
// @Failure      400  {object}  map[string]string
// @Router       /ads/position/{position} [get]
func (h *AdvertisementHandler) ForPosition(c *gin.Context) {
	position := entity.AdPosition(c.Param("position"))
	if !position.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ad position"})
		return
	}

	ad, err := h.adUseCase.ForPosition(c.Request.Context(), position)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch advertisement")
		return
	}

	c.JSON(http.StatusOK, ad)
}

// ListByPosition godoc
// @Summary      Ads for a slot
// @Description  Every running ad for the position, highest priority first
// @Tags         ads
// @Produce      json
// @Param        position path string true "Position"
// @Success      200  {array}   entity.Advertisement
// @Router       /ads/position/{position}/all [get]
func (h *AdvertisementHandler) ListByPosition(c *gin.Context) {
	position := entity.AdPosition(c.Param("position"))
	if !position.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ad position"})
		return
	}

	ads, err := h.adUseCase.ListByPosition(c.Request.Context(), position)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch advertisements")
		return
	}
	if ads == nil {
		ads = []*entity.Advertisement{}
	}

	c.JSON(http.StatusOK, ads)
}

// TrackClick godoc
// @Summary      Count ad click
// @Description  Best effort; always accepted
// @Tags         ads
// @Param        id path string true "Advertisement ID"
// @Success      202
// @Router       /ads/{id}/click [post]
func (h *AdvertisementHandler) TrackClick(c *gin.Context) {
	h.track(c.Param("id"), h.adUseCase.TrackClick)
	c.Status(http.StatusAccepted)
}

// TrackImpression godoc
// @Summary      Count ad impression
// @Description  Best effort; always accepted
// @Tags         ads
// @Param        id path string true "Advertisement ID"
// @Success      202
// @Router       /ads/{id}/impression [post]
func (h *AdvertisementHandler) TrackImpression(c *gin.Context) {
	h.track(c.Param("id"), h.adUseCase.TrackImpression)
	c.Status(http.StatusAccepted)
}

// track runs fn detached from the request so the response never waits on it.
func (h *AdvertisementHandler) track(id string, fn func(ctx context.Context, id string)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), trackingTimeout)
		defer cancel()
		fn(ctx, id)
	}()
}

// ListAds godoc
// @Summary      List advertisements
// @Tags         admin-ads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Advertisement
// @Router       /admin/ads [get]
func (h *AdvertisementHandler) ListAds(c *gin.Context) {
	ads, err := h.adUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch advertisements")
		return
	}

	c.JSON(http.StatusOK, ads)
}

// CreateAd godoc
// @Summary      Create advertisement
// @Tags         admin-ads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        ad body usecase.CreateAdInput true "Advertisement"
// @Success      201  {object}  entity.Advertisement
// @Failure      400  {object}  map[string]string
// @Router       /admin/ads [post]
func (h *AdvertisementHandler) CreateAd(c *gin.Context) {
	var req usecase.CreateAdInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ad, err := h.adUseCase.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create advertisement")
		return
	}

	c.JSON(http.StatusCreated, ad)
}

// UpdateAd godoc
// @Summary      Update advertisement
// @Tags         admin-ads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Advertisement ID"
// @Param        ad body usecase.UpdateAdInput true "Changes"
// @Success      200  {object}  entity.Advertisement
// @Failure      404  {object}  map[string]string
// @Router       /admin/ads/{id} [put]
func (h *AdvertisementHandler) UpdateAd(c *gin.Context) {
	var req usecase.UpdateAdInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ad, err := h.adUseCase.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update advertisement")
		return
	}

	c.JSON(http.StatusOK, ad)
}

// DeleteAd godoc
// @Summary      Delete advertisement
// @Tags         admin-ads
// @Security     BearerAuth
// @Param        id path string true "Advertisement ID"
// @Success      204
// @Router       /admin/ads/{id} [delete]
func (h *AdvertisementHandler) DeleteAd(c *gin.Context) {
	if err := h.adUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete advertisement")
		return
	}

	c.Status(http.StatusNoContent)
}
