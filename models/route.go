package models

import "time"

// Route is an origin-destination pair users can favorite. Geometry is kept
// as the two endpoints; polyline decoding is handled elsewhere.
type Route struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:120"`
	OriginLat *float64
	OriginLng *float64
	DestLat   *float64
	DestLng   *float64
	Active    bool `gorm:"default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
