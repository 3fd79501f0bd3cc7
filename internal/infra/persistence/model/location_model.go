// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Address        string    `gorm:"type:text;not null"`
	Latitude       float64   `gorm:"type:decimal(10,8);not null"`
	Longitude      float64   `gorm:"type:decimal(11,8);not null"`
	Category       string    `gorm:"type:varchar(32);not null;default:'customer'"`
	FullCylinders  int       `gorm:"not null;default:0"`
	EmptyCylinders int       `gorm:"not null;default:0"`
	OperatingHours string    `gorm:"type:varchar(255)"`
	Country        string    `gorm:"type:varchar(100);index:idx_locations_on_region"`
	Region         string    `gorm:"type:varchar(100);index:idx_locations_on_region"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
