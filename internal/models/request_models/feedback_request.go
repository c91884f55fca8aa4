package request_models

type CreateFeedbackRequest struct {
	JournalistProfileID string `json:"journalist_profile_id" binding:"required,uuid"`
	CompanyProfileID    string `json:"company_profile_id" binding:"required,uuid"`
	FeedbackType        string `json:"feedback_type" binding:"required,oneof=helpful not_helpful contacted successful"`
	Notes               string `json:"notes" binding:"max=2000"`
}
