package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pressmatch/internal/matching"
	"pressmatch/internal/models/response_models"
	"pressmatch/internal/observability"
	"pressmatch/internal/repositories"
	"pressmatch/pkg/utils"
)

type MatchingServiceInterface interface {
	FindJournalistsForCompany(ctx context.Context, companyUserID uuid.UUID, page, pageSize int) (*response_models.MatchResults, error)
	FindCompaniesForJournalist(ctx context.Context, journalistUserID uuid.UUID, page, pageSize int) (*response_models.MatchResults, error)
}

type MatchingService struct {
	journalistRepo repositories.JournalistRepositoryInterface
	companyRepo    repositories.CompanyRepositoryInterface
	log            *logrus.Logger
}

func NewMatchingService(
	journalistRepo repositories.JournalistRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	log *logrus.Logger,
) MatchingServiceInterface {
	return &MatchingService{
		journalistRepo: journalistRepo,
		companyRepo:    companyRepo,
		log:            log,
	}
}

func (s *MatchingService) FindJournalistsForCompany(ctx context.Context, companyUserID uuid.UUID, page, pageSize int) (*response_models.MatchResults, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	company, err := s.companyRepo.GetByUserID(ctx, companyUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if company == nil {
		return nil, utils.ErrProfileNotFound
	}
	if len(company.Topics) == 0 {
		return nil, utils.ErrEmptyTopicSet
	}

	journalists, err := s.journalistRepo.ListAcceptingPitches(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	observability.CandidatesScanned.WithLabelValues("rule_journalists").Observe(float64(len(journalists)))

	matches := make([]response_models.JournalistMatch, 0)
	for i := range journalists {
		journalist := &journalists[i]
		matched, overlap := matching.IsMatch(company, journalist)
		if !matched {
			continue
		}

		matches = append(matches, response_models.JournalistMatch{
			JournalistID:    journalist.ID.String(),
			FullName:        journalist.FullName,
			OutletName:      journalist.OutletName,
			OutletType:      journalist.OutletType,
			BeatDescription: journalist.BeatDescription,
			MatchedTopics:   toTopicResponses(overlap),
			MatchReason:     matching.MatchReason(journalist, company, overlap),
		})
	}

	total := len(matches)
	paged := paginate(matches, page, pageSize)
	observability.MatchesComputed.WithLabelValues("rule_journalists").Add(float64(total))

	return &response_models.MatchResults{
		Matches:  paged,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  hasMore(total, page, pageSize),
	}, nil
}

func (s *MatchingService) FindCompaniesForJournalist(ctx context.Context, journalistUserID uuid.UUID, page, pageSize int) (*response_models.MatchResults, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	journalist, err := s.journalistRepo.GetByUserID(ctx, journalistUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journalist == nil {
		return nil, utils.ErrProfileNotFound
	}
	if len(journalist.Topics) == 0 {
		return nil, utils.ErrEmptyTopicSet
	}

	companies, err := s.companyRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	observability.CandidatesScanned.WithLabelValues("rule_companies").Observe(float64(len(companies)))

	matches := make([]response_models.CompanyMatch, 0)
	for i := range companies {
		company := &companies[i]
		matched, overlap := matching.IsMatch(journalist, company)
		if !matched {
			continue
		}

		matches = append(matches, response_models.CompanyMatch{
			CompanyID:     company.ID.String(),
			CompanyName:   company.CompanyName,
			Industry:      company.Industry,
			CompanySize:   company.CompanySize,
			Description:   company.Description,
			MatchedTopics: toTopicResponses(overlap),
			MatchReason:   matching.MatchReason(journalist, company, overlap),
		})
	}

	total := len(matches)
	paged := paginate(matches, page, pageSize)
	observability.MatchesComputed.WithLabelValues("rule_companies").Add(float64(total))

	return &response_models.MatchResults{
		Matches:  paged,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  hasMore(total, page, pageSize),
	}, nil
}

// paginate slices one page out of the full match set. Out-of-range pages
// return an empty (never nil) slice so totals stay meaningful. The start
// offset can wrap negative when page is huge, so guard both sides.
func paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// hasMore reports whether pages beyond the requested one exist. Compares
// against the last page number instead of page*pageSize, which overflows
// for huge page values.
func hasMore(total, page, pageSize int) bool {
	lastPage := (total + pageSize - 1) / pageSize
	return page < lastPage
}
