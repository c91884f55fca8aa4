package matching

import (
	"fmt"
	"math"
	"strings"

	"pressmatch/internal/models/db_models"
)

// joinDisplayNames renders topic names with English list grammar:
// "A", "A and B", "A, B, and C".
func joinDisplayNames(topics []db_models.Topic) string {
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.DisplayName
	}

	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

// MatchReason explains a rule-based match. Every match result must carry
// a non-empty explanation.
func MatchReason(journalist *db_models.JournalistProfile, company *db_models.CompanyProfile, matchedTopics []db_models.Topic) string {
	return fmt.Sprintf(
		"%s at %s covers %s, which aligns with %s's expertise.",
		journalist.FullName,
		journalist.OutletName,
		joinDisplayNames(matchedTopics),
		company.CompanyName,
	)
}

// SimilarJournalistReason explains an embedding-based journalist match
// with the rounded percentage score and both parties' names.
func SimilarJournalistReason(journalist *db_models.JournalistProfile, company *db_models.CompanyProfile, score float64) string {
	return fmt.Sprintf(
		"Profile similarity: %d%% match based on semantic analysis of %s's beat and %s's description.",
		int(math.Round(score*100)),
		journalist.FullName,
		company.CompanyName,
	)
}

// SimilarCompanyReason is the journalist-facing counterpart of
// SimilarJournalistReason.
func SimilarCompanyReason(company *db_models.CompanyProfile, journalist *db_models.JournalistProfile, score float64) string {
	return fmt.Sprintf(
		"Profile similarity: %d%% match based on semantic analysis of %s's profile and %s's beat.",
		int(math.Round(score*100)),
		company.CompanyName,
		journalist.FullName,
	)
}
