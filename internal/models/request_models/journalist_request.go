package request_models

type CreateJournalistProfileRequest struct {
	FullName               string   `json:"full_name" binding:"required,min=2,max=200"`
	Bio                    string   `json:"bio" binding:"max=2000"`
	OutletName             string   `json:"outlet_name" binding:"required,min=2,max=200"`
	OutletType             string   `json:"outlet_type" binding:"required,oneof=newspaper magazine online broadcast podcast newsletter freelance"`
	BeatDescription        string   `json:"beat_description" binding:"required,min=10,max=2000"`
	MinPitchNoticeDays     *int     `json:"min_pitch_notice_days" binding:"omitempty,gte=0,lte=90"`
	PreferredContactMethod string   `json:"preferred_contact_method" binding:"omitempty,oneof=email twitter linkedin"`
	TopicIDs               []string `json:"topic_ids" binding:"max=10,dive,uuid"`
}

// Pointer fields distinguish "not sent" from zero values; nil leaves the
// stored value unchanged.
type UpdateJournalistProfileRequest struct {
	FullName               *string   `json:"full_name" binding:"omitempty,min=2,max=200"`
	Bio                    *string   `json:"bio" binding:"omitempty,max=2000"`
	OutletName             *string   `json:"outlet_name" binding:"omitempty,min=2,max=200"`
	OutletType             *string   `json:"outlet_type" binding:"omitempty,oneof=newspaper magazine online broadcast podcast newsletter freelance"`
	BeatDescription        *string   `json:"beat_description" binding:"omitempty,min=10,max=2000"`
	MinPitchNoticeDays     *int      `json:"min_pitch_notice_days" binding:"omitempty,gte=0,lte=90"`
	PreferredContactMethod *string   `json:"preferred_contact_method" binding:"omitempty,oneof=email twitter linkedin"`
	IsAcceptingPitches     *bool     `json:"is_accepting_pitches"`
	TopicIDs               *[]string `json:"topic_ids" binding:"omitempty,max=10,dive,uuid"`
}
