package branch_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateBranch godoc
// @Summary Create a branch
// @Description Create a restaurant location. The slug feeds the QR menu URLs and cannot change after creation.
// @Tags Admin - Branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param branch body models.BranchRequest true "Branch details"
// @Success 201 {object} models.ApiResponse{data=models.Branch}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already taken"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/branches [post]
func CreateBranch(c *gin.Context) {
	log.Printf("[admin.branches.create] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	var existing int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Branch{}).
		Where("slug = ?", req.Slug).
		Count(&existing).Error; err != nil {
		log.Printf("[admin.branches.create] ERROR slug check err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A branch with this slug already exists"))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	branch := models.Branch{
		Name:         req.Name,
		Slug:         req.Slug,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		OpeningHours: models.OpeningHours(req.OpeningHours),
		IsActive:     isActive,
	}

	if err := config.Gorm.WithContext(ctx).Create(&branch).Error; err != nil {
		log.Printf("[admin.branches.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create branch"))
		return
	}

	c.Set("activityResourceName", branch.Name)
	c.Set("activityResourceID", branch.ID.String())

	log.Printf("[admin.branches.create] ✅ created id=%s slug=%s", branch.ID, branch.Slug)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Branch created successfully", branch))
}
