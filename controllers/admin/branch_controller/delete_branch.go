package branch_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteBranch godoc
// @Summary Deactivate a branch
// @Description Branches are never hard-deleted because reservations, orders and printed QR codes reference them. This marks the branch inactive.
// @Tags Admin - Branches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Branch ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid branch ID"
// @Failure 404 {object} models.ApiResponse "Branch not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/branches/{id} [delete]
func DeleteBranch(c *gin.Context) {
	branchID := c.Param("id")

	if _, err := uuid.Parse(branchID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid branch ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var branch models.Branch
	if err := config.Gorm.WithContext(ctx).
		First(&branch, "id = ?", branchID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Branch not found"))
			return
		}
		log.Printf("[admin.branches.delete] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch branch"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&branch).
		Update("is_active", false).Error; err != nil {
		log.Printf("[admin.branches.delete] ERROR deactivate failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to deactivate branch"))
		return
	}

	c.Set("activityResourceName", branch.Name)
	c.Set("activityResourceID", branch.ID.String())

	log.Printf("[admin.branches.delete] ✅ deactivated id=%s slug=%s", branchID, branch.Slug)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Branch deactivated successfully", map[string]string{
		"id": branchID,
	}))
}
