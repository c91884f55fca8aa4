package response_models

type FeedbackResponse struct {
	ID                  string `json:"id"`
	JournalistProfileID string `json:"journalist_profile_id"`
	CompanyProfileID    string `json:"company_profile_id"`
	FeedbackType        string `json:"feedback_type"`
	Notes               string `json:"notes,omitempty"`
	CreatedAt           int64  `json:"created_at"`
	UpdatedAt           int64  `json:"updated_at"`
}

type FeedbackStats struct {
	TotalFeedback   int64   `json:"total_feedback"`
	HelpfulCount    int64   `json:"helpful_count"`
	NotHelpfulCount int64   `json:"not_helpful_count"`
	ContactedCount  int64   `json:"contacted_count"`
	SuccessfulCount int64   `json:"successful_count"`
	HelpfulnessRate float64 `json:"helpfulness_rate"`
}
