package response_models

// Every match result carries a non-empty MatchReason. That is a platform
// invariant, not optional metadata.

type JournalistMatch struct {
	JournalistID    string          `json:"journalist_id"`
	FullName        string          `json:"full_name"`
	OutletName      string          `json:"outlet_name"`
	OutletType      string          `json:"outlet_type"`
	BeatDescription string          `json:"beat_description"`
	MatchedTopics   []TopicResponse `json:"matched_topics"`
	MatchReason     string          `json:"match_reason"`
}

type CompanyMatch struct {
	CompanyID     string          `json:"company_id"`
	CompanyName   string          `json:"company_name"`
	Industry      string          `json:"industry"`
	CompanySize   string          `json:"company_size"`
	Description   string          `json:"description,omitempty"`
	MatchedTopics []TopicResponse `json:"matched_topics"`
	MatchReason   string          `json:"match_reason"`
}

type MatchResults struct {
	Matches  interface{} `json:"matches"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	HasMore  bool        `json:"has_more"`
}

type SimilarJournalistMatch struct {
	JournalistID    string  `json:"journalist_id"`
	FullName        string  `json:"full_name"`
	OutletName      string  `json:"outlet_name"`
	OutletType      string  `json:"outlet_type"`
	BeatDescription string  `json:"beat_description"`
	SimilarityScore float64 `json:"similarity_score"`
	MatchReason     string  `json:"match_reason"`
}

type SimilarCompanyMatch struct {
	CompanyID       string  `json:"company_id"`
	CompanyName     string  `json:"company_name"`
	Industry        string  `json:"industry"`
	CompanySize     string  `json:"company_size"`
	Description     string  `json:"description,omitempty"`
	SimilarityScore float64 `json:"similarity_score"`
	MatchReason     string  `json:"match_reason"`
}

type SimilarMatchResults struct {
	Matches interface{} `json:"matches"`
	Total   int         `json:"total"`
}
