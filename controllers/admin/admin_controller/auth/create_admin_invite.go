package admin_auth_controller

import (
	"log"
	"net/http"
	"os"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/Savoria-Hospitality/savoria-admin-backend/services"
	"github.com/gin-gonic/gin"
)

// CreateAdminInvite godoc
// @Summary Invite a new admin
// @Description Create a single-use invite token and email it to the invitee. Super admin only.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invite body models.CreateInviteRequest true "Invitee email and role"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Email already registered or invited"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/invites [post]
func CreateAdminInvite(c *gin.Context) {
	log.Printf("[admin.invite] start")

	var req models.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if req.Role == "" {
		req.Role = "staff"
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existingAdmins int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Admin{}).
		Where("email = ?", req.Email).
		Count(&existingAdmins).Error; err != nil {
		log.Printf("[admin.invite] ERROR admin check err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if existingAdmins > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "This email already has an admin account"))
		return
	}

	authService := services.GetAdminAuthService()
	token, err := authService.GenerateInviteToken()
	if err != nil {
		log.Printf("[admin.invite] ERROR token generation err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	invite := models.AdminInvite{
		Email:     req.Email,
		Role:      req.Role,
		TokenHash: authService.HashToken(token),
		ExpiresAt: authService.GetInviteTokenExpiration(),
	}

	// Replace any previous invite for the same email
	if err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		Delete(&models.AdminInvite{}).Error; err != nil {
		log.Printf("[admin.invite] WARN stale invite cleanup err=%v", err)
	}

	if err := config.Gorm.WithContext(ctx).Create(&invite).Error; err != nil {
		log.Printf("[admin.invite] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create invite"))
		return
	}

	inviterEmail, _ := c.Get("adminEmail")

	// Email the raw token; only the hash is stored
	go func(email, role, token string) {
		resendClient := services.NewResendClient()

		dashboardURL := os.Getenv("DASHBOARD_URL")
		if dashboardURL == "" {
			dashboardURL = "http://localhost:3000"
		}

		emailData := services.AdminInviteEmailData{
			AdminName:  email,
			AdminEmail: email,
			InviteLink: dashboardURL + "/accept-invite?token=" + token,
		}

		if err := resendClient.SendAdminInviteEmail(emailData); err != nil {
			log.Printf("[admin.invite] ❌ invite email failed to=%s err=%v", email, err)
		} else {
			log.Printf("[admin.invite] ✅ invite email sent to=%s", email)
		}
	}(req.Email, req.Role, token)

	c.Set("activityResourceName", req.Email)
	c.Set("activityResourceID", invite.ID.String())

	log.Printf("[admin.invite] ✅ created invite for %s role=%s by=%v", req.Email, req.Role, inviterEmail)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Invite sent successfully", map[string]interface{}{
		"email":      req.Email,
		"role":       req.Role,
		"expires_at": invite.ExpiresAt,
	}))
}
