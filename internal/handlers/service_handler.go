package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoservehq/autoserve-api/internal/audit"
	domain "github.com/autoservehq/autoserve-api/internal/domain/booking"
	"github.com/autoservehq/autoserve-api/internal/httperr"
	"github.com/autoservehq/autoserve-api/internal/httpresp"
	"github.com/autoservehq/autoserve-api/internal/middleware"
	"github.com/autoservehq/autoserve-api/internal/models"
	"github.com/autoservehq/autoserve-api/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
	audit    *audit.Dispatcher
}

func NewServiceHandler(
	db *gorm.DB,
	uploader *storage.Uploader,
	audit *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{
		db:       db,
		uploader: uploader,
		audit:    audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// ======================================================
// PROVIDER CATALOGUE
// ======================================================

func (h *ServiceHandler) businessForOwner(c *gin.Context) (*models.Business, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var business models.Business
	if err := h.db.Where("owner_id = ?", userID).First(&business).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return nil, false
	}
	return &business, true
}

func (h *ServiceHandler) List(c *gin.Context) {
	business, ok := h.businessForOwner(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("business_id = ?", business.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	business, ok := h.businessForOwner(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	if !domain.IsValidCategory(req.Category) {
		httperr.BadRequest(c, "invalid_category", "Unknown service category.")
		return
	}

	svc := models.Service{
		BusinessID:  business.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    domain.CanonicalCategory(req.Category),
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not save service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BusinessID: business.ID,
		UserID:     &userID,
		Action:     "service_created",
		Entity:     "service",
		EntityID:   &svc.ID,
	})

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	business, ok := h.businessForOwner(c)
	if !ok {
		return
	}

	id := c.Param("id")

	var svc models.Service
	if err := h.db.
		Where("id = ? AND business_id = ?", id, business.ID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Category != nil {
		if !domain.IsValidCategory(*req.Category) {
			httperr.BadRequest(c, "invalid_category", "Unknown service category.")
			return
		}
		svc.Category = domain.CanonicalCategory(*req.Category)
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not save service.")
		return
	}

	httpresp.OK(c, svc)
}

// UploadImage stores the catalogue image and persists its public URL.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	business, ok := h.businessForOwner(c)
	if !ok {
		return
	}

	id := c.Param("id")

	var svc models.Service
	if err := h.db.
		Where("id = ? AND business_id = ?", id, business.ID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	data, err := readImageUpload(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not read the uploaded image.")
		return
	}

	url, err := h.uploader.UploadImage(c.Request.Context(), "services", data)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Could not store the image.")
		return
	}

	svc.ImageURL = url
	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not save service.")
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// PUBLIC BROWSING
// ======================================================

func (h *ServiceHandler) ListCategories(c *gin.Context) {
	httpresp.List(c, domain.Categories)
}

func (h *ServiceHandler) ListPublic(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Preload("Business").Where("active = true")

	if category != "" {
		if !domain.IsValidCategory(category) {
			httperr.BadRequest(c, "invalid_category", "Unknown service category.")
			return
		}
		q = q.Where("category = ?", domain.CanonicalCategory(category))
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

// GetPublic returns the service joined with its business and the
// business owner's identifier, everything a booking screen needs.
func (h *ServiceHandler) GetPublic(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.
		Preload("Business").
		Where("id = ? AND active = true", id).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.JSON(200, gin.H{
		"service": svc,
		"business": gin.H{
			"id":       svc.Business.ID,
			"owner_id": svc.Business.OwnerID,
			"name":     svc.Business.Name,
		},
	})
}
