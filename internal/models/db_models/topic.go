package db_models

// Topic is a taxonomy entry shared by both sides of the platform.
// Name is the stable slug used as the join key for overlap matching.
type Topic struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);unique;not null;index"`
	DisplayName string `gorm:"type:varchar(100);not null"`
	Category    string `gorm:"type:varchar(50);not null;index"`

	Journalists []JournalistProfile `gorm:"many2many:journalist_topics"`
	Companies   []CompanyProfile    `gorm:"many2many:company_topics"`
}
