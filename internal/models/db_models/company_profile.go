package db_models

import "github.com/google/uuid"

const (
	CompanySizeStartup    = "startup"
	CompanySizeSmall      = "small"
	CompanySizeMedium     = "medium"
	CompanySizeLarge      = "large"
	CompanySizeEnterprise = "enterprise"
)

type CompanyProfile struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;unique;not null"`

	CompanyName string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	Website     string `gorm:"type:varchar(500)"`

	Industry     string `gorm:"type:varchar(100);not null"`
	CompanySize  string `gorm:"type:varchar(20);not null"`
	FoundedYear  int
	Headquarters string `gorm:"type:varchar(200)"`

	IsActive bool `gorm:"not null;default:true;index"`

	Topics []Topic `gorm:"many2many:company_topics"`
}

// Candidate capability methods used by the rule matcher.

func (c *CompanyProfile) ProfileID() uuid.UUID { return c.ID }

func (c *CompanyProfile) DisplayLabel() string { return c.CompanyName }

func (c *CompanyProfile) TopicList() []Topic { return c.Topics }

func (c *CompanyProfile) EligibleForMatching() bool {
	return c.IsActive && len(c.Topics) > 0
}
