package db_models

import "github.com/google/uuid"

const (
	OutletTypeNewspaper  = "newspaper"
	OutletTypeMagazine   = "magazine"
	OutletTypeOnline     = "online"
	OutletTypeBroadcast  = "broadcast"
	OutletTypePodcast    = "podcast"
	OutletTypeNewsletter = "newsletter"
	OutletTypeFreelance  = "freelance"
)

type JournalistProfile struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;unique;not null"`

	FullName string `gorm:"type:varchar(200);not null"`
	Bio      string `gorm:"type:text"`

	OutletName string `gorm:"type:varchar(200);not null"`
	OutletType string `gorm:"type:varchar(20);not null"`

	BeatDescription string `gorm:"type:text;not null"`

	MinPitchNoticeDays     int    `gorm:"not null;default:3"`
	PreferredContactMethod string `gorm:"type:varchar(20);default:email"`
	IsAcceptingPitches     bool   `gorm:"not null;default:true;index"`

	Topics []Topic `gorm:"many2many:journalist_topics"`
}

// Candidate capability methods used by the rule matcher.

func (j *JournalistProfile) ProfileID() uuid.UUID { return j.ID }

func (j *JournalistProfile) DisplayLabel() string { return j.FullName }

func (j *JournalistProfile) TopicList() []Topic { return j.Topics }

func (j *JournalistProfile) EligibleForMatching() bool {
	return j.IsAcceptingPitches && len(j.Topics) > 0
}
