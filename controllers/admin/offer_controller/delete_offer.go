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

// DeleteOffer godoc
// @Summary Delete an offer
// @Description Delete a promotion permanently
// @Tags Admin - Offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid offer ID"
// @Failure 404 {object} models.ApiResponse "Offer not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/offers/{id} [delete]
func DeleteOffer(c *gin.Context) {
	offerID := c.Param("id")

	if _, err := uuid.Parse(offerID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offer ID"))
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
		log.Printf("[admin.offers.delete] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offer"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&offer).Error; err != nil {
		log.Printf("[admin.offers.delete] ERROR delete failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete offer"))
		return
	}

	c.Set("activityResourceName", offer.Title)
	c.Set("activityResourceID", offer.ID.String())

	log.Printf("[admin.offers.delete] ✅ deleted id=%s title=%q", offerID, offer.Title)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offer deleted successfully", map[string]string{
		"id": offerID,
	}))
}
