package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveRequest struct {
	ID         uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:char(36);index;not null" json:"user_id"`
	StartDate  time.Time  `gorm:"not null" json:"start_date"`
	EndDate    time.Time  `gorm:"not null" json:"end_date"`
	Reason     string     `gorm:"size:500;not null" json:"reason"`
	LeaveType  string     `gorm:"size:20;not null;default:casual" json:"leave_type"`
	Status     string     `gorm:"size:20;index;not null;default:pending" json:"status"`
	ApprovedBy *uuid.UUID `gorm:"type:char(36)" json:"approved_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (r *LeaveRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
