package response_models

type PlatformMetrics struct {
	TotalUsers       int64   `json:"total_users"`
	JournalistCount  int64   `json:"journalist_count"`
	CompanyCount     int64   `json:"company_count"`
	AdminCount       int64   `json:"admin_count"`
	ProfilesComplete int64   `json:"profiles_complete"`
	TotalTopics      int64   `json:"total_topics"`
	TopicsInUse      int64   `json:"topics_in_use"`
	TotalFeedback    int64   `json:"total_feedback"`
	HelpfulFeedback  int64   `json:"helpful_feedback"`
	HelpfulnessRate  float64 `json:"helpfulness_rate"`
}

type UserMetrics struct {
	UserType        string `json:"user_type"`
	ProfileComplete bool   `json:"profile_complete"`
	TopicCount      int    `json:"topic_count"`
	MatchesFound    int    `json:"matches_found"`
}
