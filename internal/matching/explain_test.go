package matching

import (
	"strings"
	"testing"

	"pressmatch/internal/models/db_models"
)

func named(display string) db_models.Topic {
	t := topic(display)
	t.DisplayName = display
	return t
}

func TestJoinDisplayNames(t *testing.T) {
	tests := []struct {
		name   string
		topics []db_models.Topic
		want   string
	}{
		{"empty", nil, ""},
		{"one", []db_models.Topic{named("AI")}, "AI"},
		{"two", []db_models.Topic{named("AI"), named("Fintech")}, "AI and Fintech"},
		{"three", []db_models.Topic{named("AI"), named("Fintech"), named("Climate")}, "AI, Fintech, and Climate"},
		{"four", []db_models.Topic{named("AI"), named("Fintech"), named("Climate"), named("Health")}, "AI, Fintech, Climate, and Health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinDisplayNames(tt.topics); got != tt.want {
				t.Errorf("joinDisplayNames() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatchReason(t *testing.T) {
	j := journalist(true)
	c := company(true)
	topics := []db_models.Topic{named("AI"), named("Robotics")}

	got := MatchReason(j, c, topics)
	want := "Dana Reyes at The Daily Ledger covers AI and Robotics, which aligns with Acme Robotics's expertise."
	if got != want {
		t.Errorf("MatchReason() = %q, want %q", got, want)
	}
}

func TestSimilarReasonsRoundPercent(t *testing.T) {
	j := journalist(true)
	c := company(true)

	got := SimilarJournalistReason(j, c, 0.746)
	if !strings.Contains(got, "75% match") {
		t.Errorf("expected rounded 75%% in %q", got)
	}

	got = SimilarCompanyReason(c, j, 0.4)
	want := "Profile similarity: 40% match based on semantic analysis of Acme Robotics's profile and Dana Reyes's beat."
	if got != want {
		t.Errorf("SimilarCompanyReason() = %q, want %q", got, want)
	}
}

func TestReasonsNeverEmpty(t *testing.T) {
	j := journalist(true)
	c := company(true)

	if MatchReason(j, c, nil) == "" {
		t.Error("MatchReason returned empty string")
	}
	if SimilarJournalistReason(j, c, 0) == "" {
		t.Error("SimilarJournalistReason returned empty string")
	}
}
