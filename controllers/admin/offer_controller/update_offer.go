package offer_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateOffer godoc
// @Summary Update an offer
// @Description Partially update an offer. Validity bounds are re-checked when either changes.
// @Tags Admin - Offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param offer body models.UpdateOfferRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Offer}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Offer not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/offers/{id} [patch]
func UpdateOffer(c *gin.Context) {
	offerID := c.Param("id")

	if _, err := uuid.Parse(offerID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offer ID"))
		return
	}

	var req models.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var offer models.Offer
	if err := config.Gorm.WithContext(ctx).
		First(&offer, "id = ?", offerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offer not found"))
			return
		}
		log.Printf("[admin.offers.update] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offer"))
		return
	}

	// Effective bounds after the update must still be ordered
	validFrom := offer.ValidFrom
	validTo := offer.ValidTo
	if req.ValidFrom != nil {
		validFrom = *req.ValidFrom
	}
	if req.ValidTo != nil {
		validTo = *req.ValidTo
	}
	if !validTo.After(validFrom) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "valid_to must be after valid_from"))
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DiscountText != nil {
		updates["discount_text"] = *req.DiscountText
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.ValidFrom != nil {
		updates["valid_from"] = *req.ValidFrom
	}
	if req.ValidTo != nil {
		updates["valid_to"] = *req.ValidTo
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&offer).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.offers.update] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update offer"))
		return
	}

	c.Set("activityResourceName", offer.Title)
	c.Set("activityResourceID", offer.ID.String())

	log.Printf("[admin.offers.update] ✅ updated id=%s fields=%d", offerID, len(updates))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offer updated successfully", offer))
}
