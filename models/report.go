package models

import "time"

type ReportReason string

const (
	ReasonFalseInformation ReportReason = "FALSE_INFORMATION"
	ReasonSpam             ReportReason = "SPAM"
	ReasonOffensive        ReportReason = "OFFENSIVE_CONTENT"
	ReasonDuplicate        ReportReason = "DUPLICATE"
	ReasonOutdated         ReportReason = "OUTDATED"
	ReasonOther            ReportReason = "OTHER"
)

// Report is an abuse flag against an alert. One per (alert, reporter);
// the review fields are written exactly once by a moderator.
type Report struct {
	ID          uint         `gorm:"primaryKey"`
	AlertID     uint         `gorm:"index;uniqueIndex:idx_report_alert_user"`
	UserID      uint         `gorm:"uniqueIndex:idx_report_alert_user"` // reporter
	Reason      ReportReason `gorm:"size:30"`
	Description string       `gorm:"type:text"`
	Reviewed    bool         `gorm:"index"`
	ReviewerID  *uint
	ReviewedAt  *time.Time
	ReviewNotes string `gorm:"type:text"`
	CreatedAt   time.Time
}
