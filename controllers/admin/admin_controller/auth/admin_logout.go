package admin_auth_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/Savoria-Hospitality/savoria-admin-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Deactivate the admin's sessions and clear the auth cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	token, err := c.Cookie("admin_token")
	if err != nil || token == "" {
		authHeader := c.GetHeader("Authorization")
		token = strings.TrimPrefix(authHeader, "Bearer ")
	}

	if token != "" {
		if claims, err := services.VerifyAdminJWT(token); err == nil {
			if adminID, err := uuid.Parse(claims.AdminID); err == nil {
				ctx, cancel := config.WithTimeout()
				defer cancel()

				sessionService := services.GetAdminSessionService()
				if err := sessionService.DeactivateSession(ctx, adminID); err != nil {
					log.Printf("[admin.logout] WARN failed to deactivate sessions: %v", err)
				}
			}
		}
	}

	c.SetCookie("admin_token", "", -1, "/", "", false, true)

	log.Printf("[admin.logout] ✅ done")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
