package admin_auth_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/Savoria-Hospitality/savoria-admin-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AcceptAdminInvite godoc
// @Summary Accept an admin invite
// @Description Redeem an invite token and create the admin account. The token is single-use.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param acceptRequest body models.AcceptInviteRequest true "Token, name and password"
// @Success 201 {object} models.ApiResponse{data=models.Admin}
// @Failure 400 {object} models.ApiResponse "Invalid, expired or used token"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/invites/accept [post]
func AcceptAdminInvite(c *gin.Context) {
	log.Printf("[admin.invite-accept] attempt")

	var req models.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	authService := services.GetAdminAuthService()
	if !authService.ValidatePassword(req.Password) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Password must be at least 8 characters"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	tokenHash := authService.HashToken(req.Token)

	var invite models.AdminInvite
	if err := config.Gorm.WithContext(ctx).
		Where("token_hash = ? AND email = ?", tokenHash, req.Email).
		First(&invite).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[admin.invite-accept] invalid token for %s", req.Email)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid or expired invite"))
		} else {
			log.Printf("[admin.invite-accept] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	if invite.Used {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "This invite has already been used"))
		return
	}
	if authService.IsInviteExpired(invite.ExpiresAt) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "This invite has expired"))
		return
	}

	passwordHash, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Printf("[admin.invite-accept] hash error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	admin := models.Admin{
		Email:        invite.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Role:         invite.Role,
		Status:       "active",
	}

	now := time.Now()
	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Model(&invite).
			Updates(map[string]interface{}{"used": true, "used_at": now}).Error
	})
	if err != nil {
		log.Printf("[admin.invite-accept] ERROR transaction failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	log.Printf("[admin.invite-accept] ✅ account created for %s role=%s", admin.Email, admin.Role)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", admin))
}
