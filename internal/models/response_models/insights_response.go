package response_models

import "pressmatch/internal/insights"

// Advisory LLM output. Never feeds back into matching decisions.
type MatchInsightsResponse struct {
	Provider    string                    `json:"provider"`
	Explanation insights.MatchExplanation `json:"explanation"`
	PitchAngles []insights.PitchAngle     `json:"pitch_angles"`
	Risk        insights.RiskAssessment   `json:"risk"`
}
