package public_menu_controller

import (
	"log"
	"net/http"

	menu_cache "github.com/Savoria-Hospitality/savoria-admin-backend/cache"
	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicMenuCategory is one category with its available items, as served to
// QR-code menu traffic.
type PublicMenuCategory struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Items       []models.MenuItem `json:"items"`
}

type PublicMenuResponse struct {
	Branch     gin.H                `json:"branch"`
	Categories []PublicMenuCategory `json:"categories"`
}

// GetPublicMenu godoc
// @Summary Get the public menu for a branch
// @Description Get active categories and available items for the branch behind a QR code. Served from a short-lived in-memory cache.
// @Tags Public - Menu
// @Produce json
// @Param slug path string true "Branch slug"
// @Success 200 {object} models.ApiResponse{data=PublicMenuResponse}
// @Failure 404 {object} models.ApiResponse "Branch not found"
// @Failure 500 {object} models.ApiResponse
// @Router /public/menu/{slug} [get]
func GetPublicMenu(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var branch models.Branch
	if err := config.Gorm.WithContext(ctx).
		First(&branch, "slug = ? AND is_active = ?", slug, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Branch not found"))
			return
		}
		log.Printf("[public.menu] ERROR branch lookup err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	categories, itemsByCategory, hit := menu_cache.GetMenu(slug)
	if !hit {
		if err := config.Gorm.WithContext(ctx).
			Where("branch_id = ? AND is_active = ?", branch.ID, true).
			Order("display_order ASC, name ASC").
			Find(&categories).Error; err != nil {
			log.Printf("[public.menu] ERROR category fetch err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu"))
			return
		}

		categoryIDs := make([]string, 0, len(categories))
		for _, category := range categories {
			categoryIDs = append(categoryIDs, category.ID.String())
		}

		itemsByCategory = map[string][]models.MenuItem{}
		if len(categoryIDs) > 0 {
			var items []models.MenuItem
			if err := config.Gorm.WithContext(ctx).
				Where("category_id IN ? AND is_available = ?", categoryIDs, true).
				Order("display_order ASC, name ASC").
				Find(&items).Error; err != nil {
				log.Printf("[public.menu] ERROR item fetch err=%v", err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu"))
				return
			}
			for _, item := range items {
				key := item.CategoryID.String()
				itemsByCategory[key] = append(itemsByCategory[key], item)
			}
		}

		menu_cache.SetMenu(slug, categories, itemsByCategory)
		log.Printf("[public.menu] cache miss slug=%s categories=%d", slug, len(categories))
	}

	response := PublicMenuResponse{
		Branch: gin.H{
			"name":          branch.Name,
			"slug":          branch.Slug,
			"address":       branch.Address,
			"phone":         branch.Phone,
			"opening_hours": branch.OpeningHours,
		},
		Categories: make([]PublicMenuCategory, 0, len(categories)),
	}
	for _, category := range categories {
		items := itemsByCategory[category.ID.String()]
		if items == nil {
			items = []models.MenuItem{}
		}
		response.Categories = append(response.Categories, PublicMenuCategory{
			ID:          category.ID.String(),
			Name:        category.Name,
			Description: category.Description,
			Items:       items,
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu fetched successfully", response))
}
