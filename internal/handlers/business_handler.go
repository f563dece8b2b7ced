package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoservehq/autoserve-api/internal/httperr"
	"github.com/autoservehq/autoserve-api/internal/httpresp"
	"github.com/autoservehq/autoserve-api/internal/middleware"
	"github.com/autoservehq/autoserve-api/internal/models"
	"github.com/autoservehq/autoserve-api/internal/timezone"
)

type BusinessHandler struct {
	db *gorm.DB
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{db: db}
}

type UpdateBusinessRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	Timezone    *string `json:"timezone,omitempty"`
}

func (h *BusinessHandler) GetMeBusiness(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var business models.Business
	if err := h.db.Where("owner_id = ?", userID).First(&business).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	httpresp.OK(c, business)
}

func (h *BusinessHandler) UpdateMeBusiness(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var business models.Business
	if err := h.db.Where("owner_id = ?", userID).First(&business).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid business data.")
		return
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		business.Timezone = *req.Timezone
	}

	if err := h.db.Save(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Could not save business.")
		return
	}

	httpresp.OK(c, business)
}
