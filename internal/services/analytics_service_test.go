package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"pressmatch/internal/models/db_models"
)

func analyticsFixture() (AnalyticsServiceInterface, *fakeUserRepo, *fakeJournalistRepo, *fakeCompanyRepo, *fakeFeedbackRepo) {
	userRepo := &fakeUserRepo{}
	topicRepo := &fakeTopicRepo{}
	journalistRepo := &fakeJournalistRepo{}
	companyRepo := &fakeCompanyRepo{}
	feedbackRepo := &fakeFeedbackRepo{}

	matchingService := NewMatchingService(journalistRepo, companyRepo, testLogger())
	svc := NewAnalyticsService(userRepo, topicRepo, journalistRepo, companyRepo, feedbackRepo, matchingService, testLogger())
	return svc, userRepo, journalistRepo, companyRepo, feedbackRepo
}

func TestPlatformMetrics(t *testing.T) {
	svc, userRepo, journalistRepo, companyRepo, feedbackRepo := analyticsFixture()

	userRepo.users = append(userRepo.users,
		db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "j@example.com", UserType: db_models.UserTypeJournalist},
		db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "c@example.com", UserType: db_models.UserTypeCompany},
		db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "a@example.com", UserType: db_models.UserTypeAdmin},
	)
	journalistRepo.profiles = append(journalistRepo.profiles, testJournalist(uuid.New(), true))
	companyRepo.profiles = append(companyRepo.profiles, testCompany(uuid.New(), true))

	feedbackRepo.feedbacks = append(feedbackRepo.feedbacks,
		db_models.MatchFeedback{FeedbackType: db_models.FeedbackTypeHelpful},
		db_models.MatchFeedback{FeedbackType: db_models.FeedbackTypeNotHelpful},
	)

	metrics, err := svc.PlatformMetrics(context.Background())
	if err != nil {
		t.Fatalf("PlatformMetrics() error: %v", err)
	}

	if metrics.TotalUsers != 3 {
		t.Errorf("TotalUsers = %d, want 3", metrics.TotalUsers)
	}
	if metrics.JournalistCount != 1 || metrics.CompanyCount != 1 || metrics.AdminCount != 1 {
		t.Errorf("per-type counts wrong: %+v", metrics)
	}
	if metrics.ProfilesComplete != 2 {
		t.Errorf("ProfilesComplete = %d, want 2", metrics.ProfilesComplete)
	}
	if metrics.TotalFeedback != 2 || metrics.HelpfulFeedback != 1 {
		t.Errorf("feedback counts wrong: %+v", metrics)
	}
	if metrics.HelpfulnessRate != 0.5 {
		t.Errorf("HelpfulnessRate = %v, want 0.5", metrics.HelpfulnessRate)
	}
}

func TestUserMetricsJournalist(t *testing.T) {
	svc, _, journalistRepo, companyRepo, _ := analyticsFixture()

	ai := testTopic("artificial-intelligence")
	journalistUserID := uuid.New()
	journalistRepo.profiles = append(journalistRepo.profiles, testJournalist(journalistUserID, true, ai))
	companyRepo.profiles = append(companyRepo.profiles, testCompany(uuid.New(), true, ai))

	metrics, err := svc.UserMetrics(context.Background(), journalistUserID, db_models.UserTypeJournalist)
	if err != nil {
		t.Fatalf("UserMetrics() error: %v", err)
	}

	if !metrics.ProfileComplete {
		t.Error("ProfileComplete = false for an existing profile")
	}
	if metrics.TopicCount != 1 {
		t.Errorf("TopicCount = %d, want 1", metrics.TopicCount)
	}
	if metrics.MatchesFound != 1 {
		t.Errorf("MatchesFound = %d, want 1", metrics.MatchesFound)
	}
}

func TestUserMetricsWithoutProfile(t *testing.T) {
	svc, _, _, _, _ := analyticsFixture()

	metrics, err := svc.UserMetrics(context.Background(), uuid.New(), db_models.UserTypeCompany)
	if err != nil {
		t.Fatalf("UserMetrics() error: %v", err)
	}
	if metrics.ProfileComplete || metrics.TopicCount != 0 || metrics.MatchesFound != 0 {
		t.Errorf("metrics for missing profile = %+v, want zeros", metrics)
	}
}
