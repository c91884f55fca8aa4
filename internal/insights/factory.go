package insights

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewProvider selects the insights backend once at process start.
func NewProvider(provider, apiKey, baseURL, model string, log *logrus.Logger) (Provider, error) {
	switch strings.ToLower(provider) {
	case "deepseek":
		return NewDeepSeekProvider(apiKey, baseURL, model, log), nil
	case "gemini":
		return NewGeminiProvider(apiKey, model, log)
	case "mock", "":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported insights provider: %s. Use 'deepseek', 'gemini' or 'mock'", provider)
	}
}
