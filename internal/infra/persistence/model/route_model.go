package model

import (
	"time"

	"github.com/google/uuid"
)

// RouteModel is the GORM-specific struct for the 'routes' table.
type RouteModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Country     string    `gorm:"type:varchar(100)"`
	Region      string    `gorm:"type:varchar(100)"`
	RouteDate   time.Time `gorm:"not null;index:idx_routes_on_route_date"`
	Stops       int       `gorm:"not null;default:0"`
	DistanceKm  float64   `gorm:"type:decimal(10,2);not null;default:0"`
	DurationMin float64   `gorm:"type:decimal(10,2);not null;default:0"`
	CostRand    float64   `gorm:"type:decimal(12,2);not null;default:0"`
	Cylinders   int       `gorm:"not null;default:0"`
	Status      string    `gorm:"type:varchar(32);not null;default:'planned'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "routes"
}
