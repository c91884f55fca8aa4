package insights

import "context"

// MatchExplanation is a rich, advisory explanation of a match. The
// template-based reason on the match result remains the decisional
// record; this only enriches it.
type MatchExplanation struct {
	Summary           string   `json:"summary"`
	RelevancePoints   []string `json:"relevance_points"`
	PotentialAngles   []string `json:"potential_angles"`
	SuggestedApproach string   `json:"suggested_approach"`
	Confidence        string   `json:"confidence"`
}

type PitchAngle struct {
	Headline  string   `json:"headline"`
	Hook      string   `json:"hook"`
	WhyNow    string   `json:"why_now"`
	KeyPoints []string `json:"key_points"`
}

type RiskAssessment struct {
	RiskLevel       string   `json:"risk_level"`
	Flags           []string `json:"flags"`
	Recommendations []string `json:"recommendations"`
}

// MatchContext carries everything a provider needs about one pairing.
type MatchContext struct {
	CompanyName        string
	CompanyDescription string
	CompanyTopics      []string
	JournalistName     string
	JournalistOutlet   string
	JournalistBeat     string
	JournalistTopics   []string
	MatchedTopics      []string
}

// Provider generates advisory pitch intelligence. Implementations must
// degrade to sensible defaults on backend failure rather than erroring.
type Provider interface {
	ExplainMatch(ctx context.Context, mc MatchContext) (MatchExplanation, error)
	SuggestPitchAngles(ctx context.Context, mc MatchContext, numAngles int) ([]PitchAngle, error)
	AssessRisk(ctx context.Context, mc MatchContext) (RiskAssessment, error)
	ProviderName() string
}
