package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OfficeLocation struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Latitude     float64   `gorm:"not null" json:"latitude"`
	Longitude    float64   `gorm:"not null" json:"longitude"`
	RadiusMeters int       `gorm:"not null;default:100" json:"radius_meters"`
	CreatedAt    time.Time `json:"created_at"`
}

func (l *OfficeLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
