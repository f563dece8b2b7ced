package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoservehq/autoserve-api/internal/httperr"
	"github.com/autoservehq/autoserve-api/internal/httpresp"
	"github.com/autoservehq/autoserve-api/internal/middleware"
	"github.com/autoservehq/autoserve-api/internal/models"
	"github.com/autoservehq/autoserve-api/internal/storage"
)

const maxImageUploadBytes = 8 << 20

type VehicleHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewVehicleHandler(db *gorm.DB, uploader *storage.Uploader) *VehicleHandler {
	return &VehicleHandler{db: db, uploader: uploader}
}

// --------- Requests ---------

type CreateVehicleRequest struct {
	Make  string `json:"make" binding:"required"`
	Model string `json:"model" binding:"required"`
	Year  string `json:"year"`
}

type UpdateVehicleRequest struct {
	Make  *string `json:"make,omitempty"`
	Model *string `json:"model,omitempty"`
	Year  *string `json:"year,omitempty"`
}

// --------- Handlers ---------

func (h *VehicleHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var vehicles []models.Vehicle
	if err := h.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&vehicles).Error; err != nil {

		httperr.Internal(c, "failed_to_list_vehicles", "Could not load vehicles.")
		return
	}

	httpresp.List(c, vehicles)
}

func (h *VehicleHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid vehicle data.")
		return
	}

	vehicle := models.Vehicle{
		UserID: userID,
		Make:   req.Make,
		Model:  req.Model,
		Year:   req.Year,
	}

	if err := h.db.Create(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_create_vehicle", "Could not save vehicle.")
		return
	}

	httpresp.Created(c, vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&vehicle).Error; err != nil {
		httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid vehicle data.")
		return
	}

	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}

	if err := h.db.Save(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_update_vehicle", "Could not save vehicle.")
		return
	}

	httpresp.OK(c, vehicle)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Vehicle{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_vehicle", "Could not delete vehicle.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UploadPhoto stores the vehicle photo and persists its public URL.
func (h *VehicleHandler) UploadPhoto(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&vehicle).Error; err != nil {
		httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
		return
	}

	data, err := readImageUpload(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not read the uploaded image.")
		return
	}

	url, err := h.uploader.UploadImage(c.Request.Context(), "vehicles", data)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Could not store the image.")
		return
	}

	vehicle.ImageURL = url
	if err := h.db.Save(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_update_vehicle", "Could not save vehicle.")
		return
	}

	httpresp.OK(c, vehicle)
}

func readImageUpload(c *gin.Context) ([]byte, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, err
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, maxImageUploadBytes))
}
