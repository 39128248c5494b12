package offer_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateOffer godoc
// @Summary Create an offer
// @Description Create a time-bounded promotion for the public site
// @Tags Admin - Offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param offer body models.OfferRequest true "Offer details"
// @Success 201 {object} models.ApiResponse{data=models.Offer}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/offers [post]
func CreateOffer(c *gin.Context) {
	log.Printf("[admin.offers.create] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	offer := models.Offer{
		Title:        req.Title,
		Description:  req.Description,
		DiscountText: req.DiscountText,
		Image:        req.Image,
		ValidFrom:    req.ValidFrom,
		ValidTo:      req.ValidTo,
		IsActive:     isActive,
	}

	if err := config.Gorm.WithContext(ctx).Create(&offer).Error; err != nil {
		log.Printf("[admin.offers.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create offer"))
		return
	}

	c.Set("activityResourceName", offer.Title)
	c.Set("activityResourceID", offer.ID.String())

	log.Printf("[admin.offers.create] ✅ created id=%s title=%q", offer.ID, offer.Title)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Offer created successfully", offer))
}
