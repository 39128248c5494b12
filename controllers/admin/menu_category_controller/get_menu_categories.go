package menu_category_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMenuCategories godoc
// @Summary Get menu categories
// @Description Retrieve menu categories with item counts, optionally filtered by branch and active state
// @Tags Admin - Menu Categories
// @Produce json
// @Security BearerAuth
// @Param branch_id query string false "Filter by branch ID"
// @Param active query bool false "Filter by active state"
// @Success 200 {object} models.ApiResponse{data=[]models.MenuCategory}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/menu-categories [get]
func GetMenuCategories(c *gin.Context) {
	branchID := strings.TrimSpace(c.Query("branch_id"))
	active := strings.TrimSpace(c.Query("active"))

	log.Printf("[admin.menu-categories] params branch=%q active=%q", branchID, active)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.MenuCategory{})

	if branchID != "" {
		db = db.Where("branch_id = ?", branchID)
	}
	if active != "" {
		if v, err := strconv.ParseBool(active); err == nil {
			db = db.Where("is_active = ?", v)
		}
	}

	var categories []models.MenuCategory
	if err := db.Order("display_order ASC, name ASC").Find(&categories).Error; err != nil {
		log.Printf("[admin.menu-categories] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	// Item counts in one grouped query instead of N+1
	type countRow struct {
		CategoryID string
		Count      int
	}
	var counts []countRow
	if err := config.Gorm.WithContext(ctx).
		Model(&models.MenuItem{}).
		Select("category_id::text AS category_id, COUNT(*)::int AS count").
		Group("category_id").
		Scan(&counts).Error; err != nil {
		log.Printf("[admin.menu-categories] WARN item counts failed err=%v", err)
	}

	countByCategory := make(map[string]int, len(counts))
	for _, row := range counts {
		countByCategory[row.CategoryID] = row.Count
	}
	for i := range categories {
		categories[i].ItemCount = countByCategory[categories[i].ID.String()]
	}

	log.Printf("[admin.menu-categories] respond 200 count=%d", len(categories))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", categories))
}
