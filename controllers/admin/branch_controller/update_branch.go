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

// UpdateBranch godoc
// @Summary Update a branch
// @Description Partially update a branch. The slug is immutable because printed QR codes embed it.
// @Tags Admin - Branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Branch ID"
// @Param branch body models.UpdateBranchRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Branch}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Branch not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/branches/{id} [patch]
func UpdateBranch(c *gin.Context) {
	branchID := c.Param("id")

	if _, err := uuid.Parse(branchID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid branch ID"))
		return
	}

	var req models.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
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
		log.Printf("[admin.branches.update] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch branch"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.OpeningHours != nil {
		updates["opening_hours"] = models.OpeningHours(*req.OpeningHours)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&branch).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.branches.update] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update branch"))
		return
	}

	c.Set("activityResourceName", branch.Name)
	c.Set("activityResourceID", branch.ID.String())

	log.Printf("[admin.branches.update] ✅ updated id=%s fields=%d", branchID, len(updates))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Branch updated successfully", branch))
}
