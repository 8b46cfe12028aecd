package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamdash-backend/internal/middleware"
	"teamdash-backend/internal/models"
)

type LeaveHandler struct {
	DB *gorm.DB
}

type createLeaveRequest struct {
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Reason    string    `json:"reason" binding:"required"`
	LeaveType string    `json:"leave_type" binding:"omitempty,oneof=casual sick vacation"`
}

func NewLeaveHandler(db *gorm.DB) *LeaveHandler {
	return &LeaveHandler{DB: db}
}

func (h *LeaveHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if req.EndDate.Before(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date cannot be before start_date"})
		return
	}

	leaveType := req.LeaveType
	if leaveType == "" {
		leaveType = "casual"
	}

	leave := models.LeaveRequest{
		UserID:    user.ID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		LeaveType: leaveType,
		Status:    "pending",
	}
	if err := h.DB.Create(&leave).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "leave request failed"})
		return
	}

	c.JSON(http.StatusCreated, leave)
}

func (h *LeaveHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	query := h.DB.Order("created_at desc")
	if user.Role != "admin" {
		query = query.Where("user_id = ?", user.ID)
	}

	var leaves []models.LeaveRequest
	if err := query.Find(&leaves).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load leave requests"})
		return
	}

	c.JSON(http.StatusOK, leaves)
}

func (h *LeaveHandler) ListPending(c *gin.Context) {
	var leaves []models.LeaveRequest
	if err := h.DB.Where("status = ?", "pending").Order("created_at desc").Find(&leaves).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load leave requests"})
		return
	}

	c.JSON(http.StatusOK, leaves)
}

func (h *LeaveHandler) Approve(c *gin.Context) {
	h.decide(c, "approved")
}

func (h *LeaveHandler) Reject(c *gin.Context) {
	h.decide(c, "rejected")
}

// decide moves a pending request to its terminal status and records
// the acting admin. Requests already decided stay as they are.
func (h *LeaveHandler) decide(c *gin.Context, status string) {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	leaveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid leave id"})
		return
	}

	var leave models.LeaveRequest
	if err := h.DB.First(&leave, "id = ?", leaveID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "leave request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load leave request"})
		return
	}

	if leave.Status != "pending" {
		c.JSON(http.StatusConflict, gin.H{"error": "leave request already decided"})
		return
	}

	leave.Status = status
	leave.ApprovedBy = &admin.ID
	if err := h.DB.Save(&leave).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, leave)
}
