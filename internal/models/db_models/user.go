package db_models

const (
	UserTypeJournalist = "journalist"
	UserTypeCompany    = "company"
	UserTypeAdmin      = "admin"
)

type User struct {
	BaseModel
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	UserType     string `gorm:"type:varchar(20);not null;index"`
	IsActive     bool   `gorm:"not null;default:true"`
}
