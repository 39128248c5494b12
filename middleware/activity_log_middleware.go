package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/Savoria-Hospitality/savoria-admin-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps URL path segments to resource types. Menu routes
// nest under /menu, so "items" and "categories" resolve first and "menu"
// itself catches utility routes like /menu/cleanup-folder.
var pathToResourceType = map[string]string{
	"items":        models.ResourceTypeMenuItem,
	"categories":   models.ResourceTypeMenuCategory,
	"menu":         models.ResourceTypeMenuItem,
	"reservations": models.ResourceTypeReservation,
	"events":       models.ResourceTypeEvent,
	"gallery":      models.ResourceTypeGallery,
	"offers":       models.ResourceTypeOffer,
	"faqs":         models.ResourceTypeFAQ,
	"branches":     models.ResourceTypeBranch,
	"qrcodes":      models.ResourceTypeQRCode,
	"admins":       models.ResourceTypeAdmin,
	"invite":       models.ResourceTypeAdmin,
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware logs admin actions automatically
// Must be used AFTER AdminAuthMiddleware (which sets adminID and adminEmail)
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip GET requests - we only log non-GET (POST, PATCH, PUT, DELETE)
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		// Extract admin info from context (set by AdminAuthMiddleware)
		adminIDRaw, adminIDExists := c.Get("adminID")
		adminEmailRaw, adminEmailExists := c.Get("adminEmail")

		if !adminIDExists || !adminEmailExists {
			log.Printf("[activity-logging] warning: admin info not in context")
			c.Next()
			return
		}

		adminID := uuid.UUID{}
		if id, ok := adminIDRaw.(uuid.UUID); ok {
			adminID = id
		} else if idStr, ok := adminIDRaw.(string); ok {
			parsedID, err := uuid.Parse(idStr)
			if err != nil {
				log.Printf("[activity-logging] failed to parse admin ID: %v", err)
				c.Next()
				return
			}
			adminID = parsedID
		}

		adminEmail, _ := adminEmailRaw.(string)

		// Extract resource type from URL path
		resourceType := extractResourceType(c.Request.URL.Path)
		if resourceType == "" {
			log.Printf("[activity-logging] could not determine resource type from path: %s", c.Request.URL.Path)
			c.Next()
			return
		}

		// Extract resource ID from URL params; POST routes won't have one yet
		resourceID := c.Param("id")

		// Determine action from HTTP method
		actionVerb := methodToActionVerb[c.Request.Method]
		if actionVerb == "" {
			log.Printf("[activity-logging] unknown HTTP method: %s", c.Request.Method)
			c.Next()
			return
		}

		// Build full action name (e.g., "created_menu_item", "updated_reservation")
		action := actionVerb + "_" + resourceType

		// Execute the handler
		c.Next()

		// After handler execution, determine if successful and log
		statusCode := c.Writer.Status()
		isSuccess := statusCode >= 200 && statusCode < 300

		// Handlers may set a friendlier resource name for the log entry
		resourceName := c.GetString("activityResourceName")
		if createdID := c.GetString("activityResourceID"); resourceID == "" && createdID != "" {
			resourceID = createdID
		}

		svc := services.GetActivityLogService()

		if isSuccess {
			svc.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: resourceName,
				Status:       services.StatusSuccess,
				Context:      c,
			})

			log.Printf("[activity-logging] success: %s by %s", action, adminEmail)
		} else {
			errorMsg := "Request failed with status " + http.StatusText(statusCode)

			svc.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: resourceName,
				Status:       services.StatusFailed,
				ErrorMessage: errorMsg,
				Context:      c,
			})

			log.Printf("[activity-logging] failed: %s by %s - status %d", action, adminEmail, statusCode)
		}
	}
}

// extractResourceType extracts resource type from URL path
// e.g., "/api/v1/admin/reservations/123" → "reservation"
func extractResourceType(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "" {
			continue
		}
		if resourceType, exists := pathToResourceType[parts[i]]; exists {
			return resourceType
		}
	}
	return ""
}
