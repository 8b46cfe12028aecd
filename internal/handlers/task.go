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

type TaskHandler struct {
	DB *gorm.DB
}

type createTaskRequest struct {
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description"`
	Category       string    `json:"category" binding:"required"`
	Priority       string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssignedTo     string    `json:"assigned_to" binding:"required"`
	EstimatedHours float64   `json:"estimated_hours" binding:"required,gt=0"`
	DueDate        time.Time `json:"due_date" binding:"required"`
}

type updateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed"`
}

type logTimeRequest struct {
	ActualHours float64 `json:"actual_hours" binding:"required,gt=0"`
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{DB: db}
}

func (h *TaskHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	assignedTo, err := uuid.Parse(req.AssignedTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assigned_to"})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	task := models.Task{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Priority:       priority,
		AssignedTo:     assignedTo,
		CreatedBy:      user.ID,
		EstimatedHours: req.EstimatedHours,
		Status:         "pending",
		DueDate:        req.DueDate,
	}
	if err := h.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "task creation failed"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	query := h.DB.Order("created_at desc")
	if user.Role != "admin" {
		query = query.Where("assigned_to = ?", user.ID)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req updateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	task, ok := h.findVisibleTask(c)
	if !ok {
		return
	}

	task.Status = req.Status
	if err := h.DB.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) LogTime(c *gin.Context) {
	var req logTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	task, ok := h.findVisibleTask(c)
	if !ok {
		return
	}

	task.ActualHours = &req.ActualHours
	if err := h.DB.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// findVisibleTask loads the task in the path and enforces that
// employees only touch tasks assigned to them. It writes the error
// response itself when the lookup fails.
func (h *TaskHandler) findVisibleTask(c *gin.Context) (models.Task, bool) {
	var task models.Task

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return task, false
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return task, false
	}

	if err := h.DB.First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return task, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load task"})
		return task, false
	}

	if user.Role != "admin" && task.AssignedTo != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return task, false
	}

	return task, true
}
