package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoservehq/autoserve-api/internal/middleware"
	"github.com/autoservehq/autoserve-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"phone":     user.Phone,
			"user_type": user.UserType,
		},
	}

	if user.UserType == models.UserTypeServiceProvider {
		var business models.Business
		if err := h.db.Where("owner_id = ?", user.ID).First(&business).Error; err == nil {
			resp["business"] = gin.H{
				"id":          business.ID,
				"name":        business.Name,
				"description": business.Description,
				"phone":       business.Phone,
				"address":     business.Address,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

type UpdateMeRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// UpdateMe edits the caller's own profile. Email and account type are
// fixed at registration.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"phone":     user.Phone,
			"user_type": user.UserType,
		},
	})
}

type PushTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// UpdatePushToken registers the device that should receive booking
// notifications for this account.
func (h *MeHandler) UpdatePushToken(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req PushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("push_token", req.Token).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_push_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
