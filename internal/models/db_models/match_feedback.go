package db_models

import "github.com/google/uuid"

const (
	FeedbackTypeHelpful    = "helpful"
	FeedbackTypeNotHelpful = "not_helpful"
	FeedbackTypeContacted  = "contacted"
	FeedbackTypeSuccessful = "successful"
)

// MatchFeedback records one user's judgment of one journalist/company
// pairing. Unique per (user, journalist, company); a second submission
// overwrites type and notes. Never read by the matching algorithm.
type MatchFeedback struct {
	BaseModel
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_feedback,priority:1"`
	JournalistProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_feedback,priority:2"`
	CompanyProfileID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_feedback,priority:3"`

	FeedbackType string `gorm:"type:varchar(20);not null"`
	Notes        string `gorm:"type:text"`
}
