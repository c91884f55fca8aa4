package insights

import (
	"context"
	"fmt"
	"strings"
)

// MockProvider returns deterministic, template-based insights. Used in
// tests and as the default when no LLM backend is configured.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) ProviderName() string { return "mock" }

func (p *MockProvider) ExplainMatch(ctx context.Context, mc MatchContext) (MatchExplanation, error) {
	return defaultExplanation(mc), nil
}

func (p *MockProvider) SuggestPitchAngles(ctx context.Context, mc MatchContext, numAngles int) ([]PitchAngle, error) {
	return defaultPitchAngles(mc, numAngles), nil
}

func (p *MockProvider) AssessRisk(ctx context.Context, mc MatchContext) (RiskAssessment, error) {
	return defaultRisk(mc), nil
}

// Defaults shared with the LLM-backed providers, which fall back to
// these when the backend is unreachable or returns unparseable output.

func defaultExplanation(mc MatchContext) MatchExplanation {
	shared := "related topics"
	if len(mc.MatchedTopics) > 0 {
		shared = strings.Join(mc.MatchedTopics, ", ")
	}
	return MatchExplanation{
		Summary: fmt.Sprintf("%s aligns with %s's coverage of %s.", mc.CompanyName, mc.JournalistName, mc.JournalistBeat),
		RelevancePoints: []string{
			fmt.Sprintf("Shared interest in %s", shared),
			fmt.Sprintf("%s covers %s", mc.JournalistName, mc.JournalistBeat),
			fmt.Sprintf("%s's story fits this beat", mc.CompanyName),
		},
		PotentialAngles: []string{
			"Industry trend story",
			"Company innovation angle",
		},
		SuggestedApproach: "Personalize your pitch based on their recent coverage.",
		Confidence:        "medium",
	}
}

func defaultPitchAngles(mc MatchContext, numAngles int) []PitchAngle {
	angles := []PitchAngle{
		{
			Headline:  fmt.Sprintf("How %s is reshaping its market", mc.CompanyName),
			Hook:      fmt.Sprintf("A fresh development relevant to %s's beat.", mc.JournalistName),
			WhyNow:    "Timely against current industry coverage.",
			KeyPoints: []string{"Market context", "Company differentiator", "Expert availability"},
		},
		{
			Headline:  fmt.Sprintf("%s and the future of %s", mc.CompanyName, mc.JournalistBeat),
			Hook:      "A data-backed look at where the space is heading.",
			WhyNow:    "Builds on an active news cycle.",
			KeyPoints: []string{"Original data", "Customer story", "Industry forecast"},
		},
		{
			Headline:  fmt.Sprintf("Inside %s: a %s story", mc.CompanyName, mc.JournalistBeat),
			Hook:      "Behind-the-scenes access angle.",
			WhyNow:    "Evergreen with a topical peg.",
			KeyPoints: []string{"Founder access", "Concrete numbers", "Visual assets"},
		},
	}
	if numAngles > 0 && numAngles < len(angles) {
		return angles[:numAngles]
	}
	return angles
}

func defaultRisk(mc MatchContext) RiskAssessment {
	return RiskAssessment{
		RiskLevel: "low",
		Flags:     []string{},
		Recommendations: []string{
			fmt.Sprintf("Review %s's recent work at %s before pitching.", mc.JournalistName, mc.JournalistOutlet),
			"Respect the journalist's stated pitch notice period.",
		},
	}
}
