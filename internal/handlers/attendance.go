package handlers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"teamdash-backend/internal/geo"
	"teamdash-backend/internal/middleware"
	"teamdash-backend/internal/models"
)

type AttendanceHandler struct {
	DB *gorm.DB
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler {
	return &AttendanceHandler{DB: db}
}

// The attendance day is the server's UTC date at call time, never a
// client-supplied value. A shift spanning midnight lands on two dates.
func todayKey(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	now := time.Now().UTC()
	today := todayKey(now)

	var existing models.Attendance
	findErr := h.DB.Where("user_id = ? AND date = ?", user.ID, today).First(&existing).Error
	if findErr == nil && existing.CheckInTime != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "already checked in today"})
		return
	}
	if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "check-in failed"})
		return
	}

	var offices []models.OfficeLocation
	if err := h.DB.Order("created_at asc").Find(&offices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "check-in failed"})
		return
	}

	isInOffice, _ := geo.Classify(req.Latitude, req.Longitude, offices)
	workLocation := "home"
	if isInOffice {
		workLocation = "office"
	}

	reported := models.GeoPoint{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}

	if findErr == nil {
		existing.CheckInTime = &now
		existing.CheckInLocation = reported
		existing.WorkLocation = workLocation
		existing.IsInOfficeRadius = isInOffice
		if err := h.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "check-in failed"})
			return
		}
	} else {
		record := models.Attendance{
			UserID:           user.ID,
			Date:             today,
			CheckInTime:      &now,
			CheckInLocation:  reported,
			WorkLocation:     workLocation,
			IsInOfficeRadius: isInOffice,
		}
		if err := h.DB.Create(&record).Error; err != nil {
			// a concurrent check-in for the same day trips the
			// (user_id, date) unique index
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "already checked in today"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "check-in failed"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Checked in successfully", "is_in_office": isInOffice})
}

func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	now := time.Now().UTC()
	today := todayKey(now)

	var record models.Attendance
	err := h.DB.Where("user_id = ? AND date = ?", user.ID, today).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && record.CheckInTime == nil) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no check-in found for today"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "check-out failed"})
		return
	}

	if record.CheckOutTime != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "already checked out today"})
		return
	}

	// Not floored at zero: clock skew that yields a negative duration
	// is stored as-is.
	totalHours := now.Sub(*record.CheckInTime).Hours()

	record.CheckOutTime = &now
	record.CheckOutLocation = models.GeoPoint{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}
	record.TotalHours = &totalHours
	if err := h.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "check-out failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Checked out successfully",
		"total_hours": math.Round(totalHours*100) / 100,
	})
}

func (h *AttendanceHandler) Today(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	today := todayKey(time.Now().UTC())

	var record models.Attendance
	if err := h.DB.Where("user_id = ? AND date = ?", user.ID, today).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"checked_in": false, "checked_out": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checked_in":     record.CheckInTime != nil,
		"checked_out":    record.CheckOutTime != nil,
		"check_in_time":  record.CheckInTime,
		"check_out_time": record.CheckOutTime,
		"work_location":  record.WorkLocation,
		"total_hours":    record.TotalHours,
	})
}
