package request_models

type CreateCompanyProfileRequest struct {
	CompanyName  string   `json:"company_name" binding:"required,min=2,max=200"`
	Description  string   `json:"description" binding:"max=2000"`
	Website      string   `json:"website" binding:"omitempty,url,max=500"`
	Industry     string   `json:"industry" binding:"required,min=2,max=100"`
	CompanySize  string   `json:"company_size" binding:"required,oneof=startup small medium large enterprise"`
	FoundedYear  *int     `json:"founded_year" binding:"omitempty,gte=1800,lte=2100"`
	Headquarters string   `json:"headquarters" binding:"max=200"`
	TopicIDs     []string `json:"topic_ids" binding:"max=10,dive,uuid"`
}

type UpdateCompanyProfileRequest struct {
	CompanyName  *string   `json:"company_name" binding:"omitempty,min=2,max=200"`
	Description  *string   `json:"description" binding:"omitempty,max=2000"`
	Website      *string   `json:"website" binding:"omitempty,url,max=500"`
	Industry     *string   `json:"industry" binding:"omitempty,min=2,max=100"`
	CompanySize  *string   `json:"company_size" binding:"omitempty,oneof=startup small medium large enterprise"`
	FoundedYear  *int      `json:"founded_year" binding:"omitempty,gte=1800,lte=2100"`
	Headquarters *string   `json:"headquarters" binding:"omitempty,max=200"`
	IsActive     *bool     `json:"is_active"`
	TopicIDs     *[]string `json:"topic_ids" binding:"omitempty,max=10,dive,uuid"`
}
