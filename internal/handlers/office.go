package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"teamdash-backend/internal/models"
)

const defaultOfficeRadiusMeters = 100

type OfficeHandler struct {
	DB *gorm.DB
}

type createOfficeRequest struct {
	Name         string   `json:"name" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"required"`
	Longitude    *float64 `json:"longitude" binding:"required"`
	RadiusMeters *int     `json:"radius_meters" binding:"omitempty,gt=0"`
}

func NewOfficeHandler(db *gorm.DB) *OfficeHandler {
	return &OfficeHandler{DB: db}
}

func (h *OfficeHandler) Create(c *gin.Context) {
	var req createOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	radius := defaultOfficeRadiusMeters
	if req.RadiusMeters != nil {
		radius = *req.RadiusMeters
	}

	location := models.OfficeLocation{
		Name:         req.Name,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		RadiusMeters: radius,
	}
	if err := h.DB.Create(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "location creation failed"})
		return
	}

	c.JSON(http.StatusCreated, location)
}

// List is public and returns offices in creation order, the same order
// the geofence evaluator walks them.
func (h *OfficeHandler) List(c *gin.Context) {
	var locations []models.OfficeLocation
	if err := h.DB.Order("created_at asc").Find(&locations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load locations"})
		return
	}

	c.JSON(http.StatusOK, locations)
}
