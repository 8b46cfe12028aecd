package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Description    string    `gorm:"size:2000" json:"description"`
	Category       string    `gorm:"size:120;not null" json:"category"`
	Priority       string    `gorm:"size:20;not null;default:medium" json:"priority"`
	AssignedTo     uuid.UUID `gorm:"type:char(36);index;not null" json:"assigned_to"`
	CreatedBy      uuid.UUID `gorm:"type:char(36);index;not null" json:"created_by"`
	EstimatedHours float64   `gorm:"not null" json:"estimated_hours"`
	ActualHours    *float64  `json:"actual_hours,omitempty"`
	Status         string    `gorm:"size:20;index;not null;default:pending" json:"status"`
	DueDate        time.Time `gorm:"not null" json:"due_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
