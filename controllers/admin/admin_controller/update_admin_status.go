package admin_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/Savoria-Hospitality/savoria-admin-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpdateAdminStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}

// UpdateAdminStatus godoc
// @Summary Suspend or reactivate an admin
// @Description Change another admin's status. Suspending also kills their sessions. Super admin only; self-suspension is rejected.
// @Tags Admin - Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param status body UpdateAdminStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.Admin}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Admin not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/admins/{id}/status [patch]
func UpdateAdminStatus(c *gin.Context) {
	targetID := c.Param("id")

	if _, err := uuid.Parse(targetID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}

	if callerID, ok := c.Get("adminID"); ok && callerID == targetID {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "You cannot change your own status"))
		return
	}

	var req UpdateAdminStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.Gorm.WithContext(ctx).
		First(&admin, "id = ?", targetID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
			return
		}
		log.Printf("[admin.admins.status] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&admin).
		Update("status", req.Status).Error; err != nil {
		log.Printf("[admin.admins.status] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update admin status"))
		return
	}
	admin.Status = req.Status

	if req.Status == "suspended" {
		sessionService := services.GetAdminSessionService()
		if err := sessionService.DeactivateSession(ctx, admin.ID); err != nil {
			log.Printf("[admin.admins.status] WARN session deactivation err=%v", err)
		}
	}

	c.Set("activityResourceName", admin.Email)
	c.Set("activityResourceID", admin.ID.String())

	log.Printf("[admin.admins.status] ✅ id=%s status=%s", targetID, req.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin status updated successfully", admin))
}
