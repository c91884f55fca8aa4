package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pressmatch/internal/models/db_models"
	"pressmatch/internal/models/response_models"
	"pressmatch/internal/repositories"
	"pressmatch/pkg/utils"
)

type AnalyticsServiceInterface interface {
	PlatformMetrics(ctx context.Context) (*response_models.PlatformMetrics, error)
	UserMetrics(ctx context.Context, userID uuid.UUID, userType string) (*response_models.UserMetrics, error)
}

type AnalyticsService struct {
	userRepo        repositories.UserRepositoryInterface
	topicRepo       repositories.TopicRepositoryInterface
	journalistRepo  repositories.JournalistRepositoryInterface
	companyRepo     repositories.CompanyRepositoryInterface
	feedbackRepo    repositories.FeedbackRepositoryInterface
	matchingService MatchingServiceInterface
	log             *logrus.Logger
}

func NewAnalyticsService(
	userRepo repositories.UserRepositoryInterface,
	topicRepo repositories.TopicRepositoryInterface,
	journalistRepo repositories.JournalistRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	feedbackRepo repositories.FeedbackRepositoryInterface,
	matchingService MatchingServiceInterface,
	log *logrus.Logger,
) AnalyticsServiceInterface {
	return &AnalyticsService{
		userRepo:        userRepo,
		topicRepo:       topicRepo,
		journalistRepo:  journalistRepo,
		companyRepo:     companyRepo,
		feedbackRepo:    feedbackRepo,
		matchingService: matchingService,
		log:             log,
	}
}

func (s *AnalyticsService) PlatformMetrics(ctx context.Context) (*response_models.PlatformMetrics, error) {
	userCounts, err := s.userRepo.CountUsersByType(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	journalistProfiles, err := s.journalistRepo.CountProfiles(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	companyProfiles, err := s.companyRepo.CountProfiles(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalTopics, err := s.topicRepo.CountTopics(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	topicsInUse, err := s.topicRepo.CountTopicsInUse(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	feedbackCounts, err := s.feedbackRepo.CountByType(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	metrics := &response_models.PlatformMetrics{
		JournalistCount:  userCounts[db_models.UserTypeJournalist],
		CompanyCount:     userCounts[db_models.UserTypeCompany],
		AdminCount:       userCounts[db_models.UserTypeAdmin],
		ProfilesComplete: journalistProfiles + companyProfiles,
		TotalTopics:      totalTopics,
		TopicsInUse:      topicsInUse,
		HelpfulFeedback:  feedbackCounts[db_models.FeedbackTypeHelpful],
	}
	metrics.TotalUsers = metrics.JournalistCount + metrics.CompanyCount + metrics.AdminCount
	for _, n := range feedbackCounts {
		metrics.TotalFeedback += n
	}

	rated := feedbackCounts[db_models.FeedbackTypeHelpful] + feedbackCounts[db_models.FeedbackTypeNotHelpful]
	if rated > 0 {
		metrics.HelpfulnessRate = roundScore(float64(metrics.HelpfulFeedback) / float64(rated))
	}
	return metrics, nil
}

// UserMetrics reports one user's standing: whether a profile exists, how
// many topics it carries, and how many counterparts currently match it.
func (s *AnalyticsService) UserMetrics(ctx context.Context, userID uuid.UUID, userType string) (*response_models.UserMetrics, error) {
	metrics := &response_models.UserMetrics{UserType: userType}

	switch userType {
	case db_models.UserTypeJournalist:
		profile, err := s.journalistRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if profile == nil {
			return metrics, nil
		}
		metrics.ProfileComplete = true
		metrics.TopicCount = len(profile.Topics)

		results, err := s.matchingService.FindCompaniesForJournalist(ctx, userID, 1, 1)
		if err != nil && !errors.Is(err, utils.ErrEmptyTopicSet) {
			return nil, err
		}
		if results != nil {
			metrics.MatchesFound = results.Total
		}
	case db_models.UserTypeCompany:
		profile, err := s.companyRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if profile == nil {
			return metrics, nil
		}
		metrics.ProfileComplete = true
		metrics.TopicCount = len(profile.Topics)

		results, err := s.matchingService.FindJournalistsForCompany(ctx, userID, 1, 1)
		if err != nil && !errors.Is(err, utils.ErrEmptyTopicSet) {
			return nil, err
		}
		if results != nil {
			metrics.MatchesFound = results.Total
		}
	default:
		return nil, utils.ErrWrongUserType
	}

	return metrics, nil
}
