package admin_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateAdminProfile godoc
// @Summary Update own profile
// @Description Update name, avatar or phone number of the authenticated admin
// @Tags Admin - Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.UpdateAdminProfileRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Admin}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/me [patch]
func UpdateAdminProfile(c *gin.Context) {
	adminID, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.UpdateAdminProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.Gorm.WithContext(ctx).
		First(&admin, "id = ?", adminID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
			return
		}
		log.Printf("[admin.profile.update] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&admin).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.profile.update] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	c.Set("activityResourceName", admin.Email)
	c.Set("activityResourceID", admin.ID.String())

	log.Printf("[admin.profile.update] ✅ updated id=%s fields=%d", admin.ID, len(updates))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated successfully", admin))
}
