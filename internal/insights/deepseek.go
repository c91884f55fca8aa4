package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// DeepSeekProvider talks to DeepSeek through its OpenAI-compatible API.
type DeepSeekProvider struct {
	client *openai.Client
	model  string
	log    *logrus.Logger
}

func NewDeepSeekProvider(apiKey, baseURL, model string, log *logrus.Logger) *DeepSeekProvider {
	if baseURL == "" {
		baseURL = "https://api.deepseek.com"
	}
	if model == "" {
		model = "deepseek-chat"
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &DeepSeekProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    log,
	}
}

func (p *DeepSeekProvider) ProviderName() string { return "deepseek" }

func (p *DeepSeekProvider) callLLM(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", fmt.Errorf("deepseek: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("deepseek: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// stripCodeFence removes a markdown code fence if the model wrapped its
// JSON in one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[7:]
	} else if strings.HasPrefix(s, "```") {
		s = s[3:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func (p *DeepSeekProvider) ExplainMatch(ctx context.Context, mc MatchContext) (MatchExplanation, error) {
	fallback := defaultExplanation(mc)

	systemPrompt := "You are an expert PR matchmaking assistant. Explain why a company and journalist are a good match. Be specific and focus on editorial relevance. Always respond in valid JSON."
	userPrompt := fmt.Sprintf(`Analyze this match and explain why it's relevant:

COMPANY:
- Name: %s
- Description: %s
- Topics: %s

JOURNALIST:
- Name: %s
- Beat: %s
- Topics: %s

MATCHED TOPICS: %s

Respond with JSON in this exact format:
{
    "summary": "1-2 sentence overview of why this is a good match",
    "relevance_points": ["point 1", "point 2", "point 3"],
    "potential_angles": ["angle 1", "angle 2"],
    "suggested_approach": "How the company should approach this journalist",
    "confidence": "high/medium/low"
}`,
		mc.CompanyName, mc.CompanyDescription, strings.Join(mc.CompanyTopics, ", "),
		mc.JournalistName, mc.JournalistBeat, strings.Join(mc.JournalistTopics, ", "),
		matchedTopicsOrNote(mc))

	raw, err := p.callLLM(ctx, systemPrompt, userPrompt)
	if err != nil {
		p.log.WithError(err).Warn("deepseek unavailable, using fallback explanation")
		return fallback, nil
	}

	var out MatchExplanation
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &out); err != nil {
		p.log.WithError(err).Warn("failed to parse deepseek explanation JSON")
		return fallback, nil
	}
	if out.Summary == "" {
		return fallback, nil
	}
	return out, nil
}

func (p *DeepSeekProvider) SuggestPitchAngles(ctx context.Context, mc MatchContext, numAngles int) ([]PitchAngle, error) {
	fallback := defaultPitchAngles(mc, numAngles)

	systemPrompt := "You are an expert PR strategist. Suggest pitch angles tailored to a specific journalist. Always respond in valid JSON."
	userPrompt := fmt.Sprintf(`Suggest %d pitch angles for this pairing:

COMPANY: %s - %s
JOURNALIST: %s, beat: %s
MATCHED TOPICS: %s

Respond with JSON in this exact format:
{
    "angles": [
        {"headline": "...", "hook": "...", "why_now": "...", "key_points": ["...", "..."]}
    ]
}`,
		numAngles, mc.CompanyName, mc.CompanyDescription,
		mc.JournalistName, mc.JournalistBeat, matchedTopicsOrNote(mc))

	raw, err := p.callLLM(ctx, systemPrompt, userPrompt)
	if err != nil {
		p.log.WithError(err).Warn("deepseek unavailable, using fallback pitch angles")
		return fallback, nil
	}

	var out struct {
		Angles []PitchAngle `json:"angles"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &out); err != nil || len(out.Angles) == 0 {
		return fallback, nil
	}
	return out.Angles, nil
}

func (p *DeepSeekProvider) AssessRisk(ctx context.Context, mc MatchContext) (RiskAssessment, error) {
	fallback := defaultRisk(mc)

	systemPrompt := "You are a PR risk analyst. Flag potential problems in pitching a journalist. Always respond in valid JSON."
	userPrompt := fmt.Sprintf(`Assess the risk of this pitch:

COMPANY: %s - %s
JOURNALIST: %s at %s, beat: %s

Respond with JSON in this exact format:
{
    "risk_level": "low/medium/high",
    "flags": ["..."],
    "recommendations": ["..."]
}`,
		mc.CompanyName, mc.CompanyDescription,
		mc.JournalistName, mc.JournalistOutlet, mc.JournalistBeat)

	raw, err := p.callLLM(ctx, systemPrompt, userPrompt)
	if err != nil {
		p.log.WithError(err).Warn("deepseek unavailable, using fallback risk assessment")
		return fallback, nil
	}

	var out RiskAssessment
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &out); err != nil || out.RiskLevel == "" {
		return fallback, nil
	}
	return out, nil
}

func matchedTopicsOrNote(mc MatchContext) string {
	if len(mc.MatchedTopics) == 0 {
		return "None (similarity-based match)"
	}
	return strings.Join(mc.MatchedTopics, ", ")
}
