package models

import "time"

type AlertType string

const (
	AlertAccident   AlertType = "ACCIDENT"
	AlertTrafficJam AlertType = "TRAFFIC_JAM"
	AlertClosure    AlertType = "ROAD_CLOSURE"
	AlertPothole    AlertType = "POTHOLE"
	AlertLandslide  AlertType = "LANDSLIDE"
	AlertFlood      AlertType = "FLOOD"
	AlertCheckpoint AlertType = "POLICE_CHECKPOINT"
	AlertOther      AlertType = "OTHER"
)

// Severity is ordered: LOW < MEDIUM < HIGH < CRITICAL.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

type AlertStatus string

const (
	StatusActive      AlertStatus = "ACTIVE"
	StatusUnderReview AlertStatus = "UNDER_REVIEW"
	StatusResolved    AlertStatus = "RESOLVED"
	StatusRejected    AlertStatus = "REJECTED"
	StatusExpired     AlertStatus = "EXPIRED"
)

// Alert is a geotagged road-hazard report. Coordinates are optional;
// an alert without them is never matched against routes.
type Alert struct {
	ID          uint        `gorm:"primaryKey"`
	Type        AlertType   `gorm:"size:30;index"`
	Title       string      `gorm:"size:120"`
	Description string      `gorm:"type:text"`
	Latitude    *float64
	Longitude   *float64
	Location    string      `gorm:"size:200"` // free-text, e.g. "Vía Pasto - Chachagüí km 12"
	Severity    Severity    `gorm:"size:10"`
	Status      AlertStatus `gorm:"size:20;index"`
	Verified    bool
	ImageURL    string
	UserID      uint `gorm:"index"`
	Upvotes     int
	Downvotes   int
	ExpiresAt   *time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasCoordinates reports whether both latitude and longitude are set.
func (a *Alert) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}
