package response_models

type JournalistProfileResponse struct {
	ID                     string          `json:"id"`
	UserID                 string          `json:"user_id"`
	FullName               string          `json:"full_name"`
	Bio                    string          `json:"bio,omitempty"`
	OutletName             string          `json:"outlet_name"`
	OutletType             string          `json:"outlet_type"`
	BeatDescription        string          `json:"beat_description"`
	MinPitchNoticeDays     int             `json:"min_pitch_notice_days"`
	PreferredContactMethod string          `json:"preferred_contact_method"`
	IsAcceptingPitches     bool            `json:"is_accepting_pitches"`
	Topics                 []TopicResponse `json:"topics"`
}

type CompanyProfileResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	CompanyName  string          `json:"company_name"`
	Description  string          `json:"description,omitempty"`
	Website      string          `json:"website,omitempty"`
	Industry     string          `json:"industry"`
	CompanySize  string          `json:"company_size"`
	FoundedYear  int             `json:"founded_year,omitempty"`
	Headquarters string          `json:"headquarters,omitempty"`
	IsActive     bool            `json:"is_active"`
	Topics       []TopicResponse `json:"topics"`
}
