package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pressmatch/internal/insights"
	"pressmatch/internal/matching"
	"pressmatch/internal/models/db_models"
	"pressmatch/internal/models/response_models"
	"pressmatch/internal/repositories"
	"pressmatch/pkg/utils"
)

type InsightsServiceInterface interface {
	InsightsForCompany(ctx context.Context, userID uuid.UUID, journalistID uuid.UUID) (*response_models.MatchInsightsResponse, error)
	InsightsForJournalist(ctx context.Context, userID uuid.UUID, companyID uuid.UUID) (*response_models.MatchInsightsResponse, error)
}

type InsightsService struct {
	provider       insights.Provider
	journalistRepo repositories.JournalistRepositoryInterface
	companyRepo    repositories.CompanyRepositoryInterface
	log            *logrus.Logger
}

func NewInsightsService(
	provider insights.Provider,
	journalistRepo repositories.JournalistRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	log *logrus.Logger,
) InsightsServiceInterface {
	return &InsightsService{
		provider:       provider,
		journalistRepo: journalistRepo,
		companyRepo:    companyRepo,
		log:            log,
	}
}

// InsightsForCompany explains one journalist to the requesting company.
func (s *InsightsService) InsightsForCompany(ctx context.Context, userID uuid.UUID, journalistID uuid.UUID) (*response_models.MatchInsightsResponse, error) {
	company, err := s.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if company == nil {
		return nil, utils.ErrProfileNotFound
	}

	journalist, err := s.journalistRepo.GetByID(ctx, journalistID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journalist == nil {
		return nil, utils.ErrCounterpartNotFound
	}

	return s.generate(ctx, journalist, company)
}

// InsightsForJournalist explains one company to the requesting journalist.
func (s *InsightsService) InsightsForJournalist(ctx context.Context, userID uuid.UUID, companyID uuid.UUID) (*response_models.MatchInsightsResponse, error) {
	journalist, err := s.journalistRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journalist == nil {
		return nil, utils.ErrProfileNotFound
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if company == nil {
		return nil, utils.ErrCounterpartNotFound
	}

	return s.generate(ctx, journalist, company)
}

func (s *InsightsService) generate(ctx context.Context, journalist *db_models.JournalistProfile, company *db_models.CompanyProfile) (*response_models.MatchInsightsResponse, error) {
	mc := buildMatchContext(journalist, company)

	explanation, err := s.provider.ExplainMatch(ctx, mc)
	if err != nil {
		s.log.WithError(err).Warn("insights: explain match failed")
		return nil, utils.ErrDatabaseError
	}

	angles, err := s.provider.SuggestPitchAngles(ctx, mc, 3)
	if err != nil {
		s.log.WithError(err).Warn("insights: pitch angles failed")
		return nil, utils.ErrDatabaseError
	}

	risk, err := s.provider.AssessRisk(ctx, mc)
	if err != nil {
		s.log.WithError(err).Warn("insights: risk assessment failed")
		return nil, utils.ErrDatabaseError
	}

	return &response_models.MatchInsightsResponse{
		Provider:    s.provider.ProviderName(),
		Explanation: explanation,
		PitchAngles: angles,
		Risk:        risk,
	}, nil
}

func buildMatchContext(journalist *db_models.JournalistProfile, company *db_models.CompanyProfile) insights.MatchContext {
	matched := matching.TopicOverlap(journalist.Topics, company.Topics)
	return insights.MatchContext{
		CompanyName:        company.CompanyName,
		CompanyDescription: company.Description,
		CompanyTopics:      topicDisplayNames(company.Topics),
		JournalistName:     journalist.FullName,
		JournalistOutlet:   journalist.OutletName,
		JournalistBeat:     journalist.BeatDescription,
		JournalistTopics:   topicDisplayNames(journalist.Topics),
		MatchedTopics:      topicDisplayNames(matched),
	}
}

func topicDisplayNames(topics []db_models.Topic) []string {
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.DisplayName)
	}
	return names
}
