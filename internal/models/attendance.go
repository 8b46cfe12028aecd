package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeoPoint is a reported device position. Latitude and longitude stay
// pointers because clients may submit neither.
type GeoPoint struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `gorm:"size:500" json:"address,omitempty"`
}

// Attendance holds one check-in/check-out record per user per calendar
// day; the composite unique index makes a concurrent double check-in a
// storage conflict instead of a silent duplicate.
type Attendance struct {
	ID               uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	Date             string     `gorm:"size:10;not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	CheckInTime      *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime     *time.Time `json:"check_out_time,omitempty"`
	CheckInLocation  GeoPoint   `gorm:"embedded;embeddedPrefix:check_in_" json:"check_in_location"`
	CheckOutLocation GeoPoint   `gorm:"embedded;embeddedPrefix:check_out_" json:"check_out_location"`
	WorkLocation     string     `gorm:"size:20" json:"work_location"`
	IsInOfficeRadius bool       `json:"is_in_office_radius"`
	TotalHours       *float64   `json:"total_hours,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
