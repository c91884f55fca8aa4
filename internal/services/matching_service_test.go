package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"pressmatch/internal/models/response_models"
	"pressmatch/pkg/utils"
)

func TestFindJournalistsForCompany(t *testing.T) {
	ai := testTopic("artificial-intelligence")
	fintech := testTopic("fintech")
	climate := testTopic("climate")

	companyUserID := uuid.New()
	companyRepo := &fakeCompanyRepo{}
	companyRepo.profiles = append(companyRepo.profiles, testCompany(companyUserID, true, ai, fintech))

	journalistRepo := &fakeJournalistRepo{}
	matching := testJournalist(uuid.New(), true, ai)
	matching.FullName = "Dana Reyes"
	notAccepting := testJournalist(uuid.New(), false, ai)
	offTopic := testJournalist(uuid.New(), true, climate)
	journalistRepo.profiles = append(journalistRepo.profiles, matching, notAccepting, offTopic)

	svc := NewMatchingService(journalistRepo, companyRepo, testLogger())

	results, err := svc.FindJournalistsForCompany(context.Background(), companyUserID, 1, 20)
	if err != nil {
		t.Fatalf("FindJournalistsForCompany() error: %v", err)
	}

	if results.Total != 1 {
		t.Fatalf("Total = %d, want 1", results.Total)
	}
	matches, ok := results.Matches.([]response_models.JournalistMatch)
	if !ok {
		t.Fatalf("Matches has type %T", results.Matches)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].FullName != "Dana Reyes" {
		t.Errorf("matched %q, want Dana Reyes", matches[0].FullName)
	}
	if len(matches[0].MatchedTopics) != 1 || matches[0].MatchedTopics[0].Name != ai.Name {
		t.Errorf("MatchedTopics = %v, want the shared topic only", matches[0].MatchedTopics)
	}
	if matches[0].MatchReason == "" {
		t.Error("MatchReason is empty")
	}
	if results.HasMore {
		t.Error("HasMore = true for a single-page result")
	}
}

func TestFindCompaniesForJournalist(t *testing.T) {
	ai := testTopic("artificial-intelligence")

	journalistUserID := uuid.New()
	journalistRepo := &fakeJournalistRepo{}
	journalistRepo.profiles = append(journalistRepo.profiles, testJournalist(journalistUserID, true, ai))

	companyRepo := &fakeCompanyRepo{}
	active := testCompany(uuid.New(), true, ai)
	inactive := testCompany(uuid.New(), false, ai)
	companyRepo.profiles = append(companyRepo.profiles, active, inactive)

	svc := NewMatchingService(journalistRepo, companyRepo, testLogger())

	results, err := svc.FindCompaniesForJournalist(context.Background(), journalistUserID, 1, 20)
	if err != nil {
		t.Fatalf("FindCompaniesForJournalist() error: %v", err)
	}
	if results.Total != 1 {
		t.Fatalf("Total = %d, want 1 (inactive company must be excluded)", results.Total)
	}
}

func TestMatchingPreconditions(t *testing.T) {
	ai := testTopic("artificial-intelligence")

	withProfile := uuid.New()
	withoutTopics := uuid.New()

	companyRepo := &fakeCompanyRepo{}
	companyRepo.profiles = append(companyRepo.profiles,
		testCompany(withProfile, true, ai),
		testCompany(withoutTopics, true))

	svc := NewMatchingService(&fakeJournalistRepo{}, companyRepo, testLogger())

	tests := []struct {
		name     string
		userID   uuid.UUID
		page     int
		pageSize int
		wantErr  error
	}{
		{"no profile", uuid.New(), 1, 20, utils.ErrProfileNotFound},
		{"no topics", withoutTopics, 1, 20, utils.ErrEmptyTopicSet},
		{"zero page", withProfile, 0, 20, utils.ErrInvalidPage},
		{"oversized page size", withProfile, 1, 101, utils.ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.FindJournalistsForCompany(context.Background(), tt.userID, tt.page, tt.pageSize)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMatchingPagination(t *testing.T) {
	ai := testTopic("artificial-intelligence")

	companyUserID := uuid.New()
	companyRepo := &fakeCompanyRepo{}
	companyRepo.profiles = append(companyRepo.profiles, testCompany(companyUserID, true, ai))

	journalistRepo := &fakeJournalistRepo{}
	const n = 7
	for i := 0; i < n; i++ {
		journalistRepo.profiles = append(journalistRepo.profiles, testJournalist(uuid.New(), true, ai))
	}

	svc := NewMatchingService(journalistRepo, companyRepo, testLogger())

	// Pages must partition the matches and agree on the total.
	seen := 0
	for page := 1; page <= 4; page++ {
		results, err := svc.FindJournalistsForCompany(context.Background(), companyUserID, page, 3)
		if err != nil {
			t.Fatalf("page %d error: %v", page, err)
		}
		if results.Total != n {
			t.Fatalf("page %d Total = %d, want %d", page, results.Total, n)
		}
		matches := results.Matches.([]response_models.JournalistMatch)
		seen += len(matches)

		wantMore := page*3 < n
		if results.HasMore != wantMore {
			t.Errorf("page %d HasMore = %v, want %v", page, results.HasMore, wantMore)
		}
	}
	if seen != n {
		t.Errorf("pages yielded %d matches in total, want %d", seen, n)
	}

	// Far out-of-range page: empty matches, same total.
	results, err := svc.FindJournalistsForCompany(context.Background(), companyUserID, 50, 3)
	if err != nil {
		t.Fatalf("out-of-range page error: %v", err)
	}
	if len(results.Matches.([]response_models.JournalistMatch)) != 0 {
		t.Error("out-of-range page returned matches")
	}
	if results.Total != n {
		t.Errorf("out-of-range page Total = %d, want %d", results.Total, n)
	}

	// A page large enough to overflow the start offset must behave like
	// any other out-of-range page, not panic.
	results, err = svc.FindJournalistsForCompany(context.Background(), companyUserID, math.MaxInt64/50, 100)
	if err != nil {
		t.Fatalf("huge page error: %v", err)
	}
	if len(results.Matches.([]response_models.JournalistMatch)) != 0 {
		t.Error("huge page returned matches")
	}
	if results.HasMore {
		t.Error("huge page HasMore = true")
	}
}

func TestMatchingExcludesProfilesWithoutSharedTopics(t *testing.T) {
	ai := testTopic("artificial-intelligence")
	fintech := testTopic("fintech")

	journalistUserID := uuid.New()
	journalistRepo := &fakeJournalistRepo{}
	journalistRepo.profiles = append(journalistRepo.profiles, testJournalist(journalistUserID, true, ai))

	companyRepo := &fakeCompanyRepo{}
	companyRepo.profiles = append(companyRepo.profiles, testCompany(uuid.New(), true, fintech))

	svc := NewMatchingService(journalistRepo, companyRepo, testLogger())

	results, err := svc.FindCompaniesForJournalist(context.Background(), journalistUserID, 1, 20)
	if err != nil {
		t.Fatalf("FindCompaniesForJournalist() error: %v", err)
	}
	if results.Total != 0 {
		t.Errorf("Total = %d, want 0", results.Total)
	}
	if _, ok := results.Matches.([]response_models.CompanyMatch); !ok {
		t.Errorf("empty result has type %T, want []response_models.CompanyMatch", results.Matches)
	}
}
