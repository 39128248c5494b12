package menu_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMenuItems godoc
// @Summary Get menu items
// @Description Retrieve menu items with category details and pagination. Supports filtering by category, availability and featured flag, plus name search.
// @Tags Admin - Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param category_id query string false "Filter by category ID"
// @Param available query bool false "Filter by availability"
// @Param featured query bool false "Filter by featured flag"
// @Param q query string false "Search by item name"
// @Success 200 {object} models.ApiResponse{data=[]models.MenuItem,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/menu-items [get]
func GetMenuItems(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	categoryID := strings.TrimSpace(c.Query("category_id"))
	available := strings.TrimSpace(c.Query("available"))
	featured := strings.TrimSpace(c.Query("featured"))
	q := strings.TrimSpace(c.Query("q"))

	log.Printf("[admin.menu-items] params page=%d limit=%d category=%q available=%q featured=%q q=%q",
		page, limit, categoryID, available, featured, q)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.MenuItem{})

	if categoryID != "" {
		db = db.Where("category_id = ?", categoryID)
	}
	if available != "" {
		if v, err := strconv.ParseBool(available); err == nil {
			db = db.Where("is_available = ?", v)
		} else {
			log.Printf("[admin.menu-items] WARN invalid available=%q -> ignored", available)
		}
	}
	if featured != "" {
		if v, err := strconv.ParseBool(featured); err == nil {
			db = db.Where("is_featured = ?", v)
		} else {
			log.Printf("[admin.menu-items] WARN invalid featured=%q -> ignored", featured)
		}
	}
	if q != "" {
		db = db.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.menu-items] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count menu items"))
		return
	}

	items := make([]models.MenuItem, 0, limit)
	if err := db.
		Preload("Category").
		Order("display_order ASC, name ASC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		log.Printf("[admin.menu-items] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu items"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	log.Printf("[admin.menu-items] respond 200 total=%d page=%d", total, page)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Menu items retrieved successfully", items, meta))
}
