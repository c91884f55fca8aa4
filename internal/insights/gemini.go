package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GeminiProvider generates insights with Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  string
	log    *logrus.Logger
}

func NewGeminiProvider(apiKey, model string, log *logrus.Logger) (*GeminiProvider, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model, log: log}, nil
}

func (p *GeminiProvider) ProviderName() string { return "gemini" }

func (p *GeminiProvider) Close() error { return p.client.Close() }

func (p *GeminiProvider) generateJSON(ctx context.Context, prompt string) (string, error) {
	m := p.client.GenerativeModel(p.model)
	// Force JSON-only output so no fence stripping is needed.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.7)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: not valid json")
	}
	return content, nil
}

func (p *GeminiProvider) ExplainMatch(ctx context.Context, mc MatchContext) (MatchExplanation, error) {
	fallback := defaultExplanation(mc)

	prompt := fmt.Sprintf(`You are an expert PR matchmaking assistant. Explain why this company and journalist are a good match.

COMPANY: %s - %s (topics: %s)
JOURNALIST: %s, beat: %s (topics: %s)
MATCHED TOPICS: %s

Return JSON only, exact keys:
{"summary": "...", "relevance_points": ["..."], "potential_angles": ["..."], "suggested_approach": "...", "confidence": "high/medium/low"}`,
		mc.CompanyName, mc.CompanyDescription, strings.Join(mc.CompanyTopics, ", "),
		mc.JournalistName, mc.JournalistBeat, strings.Join(mc.JournalistTopics, ", "),
		matchedTopicsOrNote(mc))

	raw, err := p.generateJSON(ctx, prompt)
	if err != nil {
		p.log.WithError(err).Warn("gemini unavailable, using fallback explanation")
		return fallback, nil
	}

	var out MatchExplanation
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out.Summary == "" {
		return fallback, nil
	}
	return out, nil
}

func (p *GeminiProvider) SuggestPitchAngles(ctx context.Context, mc MatchContext, numAngles int) ([]PitchAngle, error) {
	fallback := defaultPitchAngles(mc, numAngles)

	prompt := fmt.Sprintf(`You are an expert PR strategist. Suggest %d pitch angles.

COMPANY: %s - %s
JOURNALIST: %s, beat: %s
MATCHED TOPICS: %s

Return JSON only, exact keys:
{"angles": [{"headline": "...", "hook": "...", "why_now": "...", "key_points": ["..."]}]}`,
		numAngles, mc.CompanyName, mc.CompanyDescription,
		mc.JournalistName, mc.JournalistBeat, matchedTopicsOrNote(mc))

	raw, err := p.generateJSON(ctx, prompt)
	if err != nil {
		p.log.WithError(err).Warn("gemini unavailable, using fallback pitch angles")
		return fallback, nil
	}

	var out struct {
		Angles []PitchAngle `json:"angles"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil || len(out.Angles) == 0 {
		return fallback, nil
	}
	return out.Angles, nil
}

func (p *GeminiProvider) AssessRisk(ctx context.Context, mc MatchContext) (RiskAssessment, error) {
	fallback := defaultRisk(mc)

	prompt := fmt.Sprintf(`You are a PR risk analyst. Assess the risk of this pitch.

COMPANY: %s - %s
JOURNALIST: %s at %s, beat: %s

Return JSON only, exact keys:
{"risk_level": "low/medium/high", "flags": ["..."], "recommendations": ["..."]}`,
		mc.CompanyName, mc.CompanyDescription,
		mc.JournalistName, mc.JournalistOutlet, mc.JournalistBeat)

	raw, err := p.generateJSON(ctx, prompt)
	if err != nil {
		p.log.WithError(err).Warn("gemini unavailable, using fallback risk assessment")
		return fallback, nil
	}

	var out RiskAssessment
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out.RiskLevel == "" {
		return fallback, nil
	}
	return out, nil
}
