package services

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pressmatch/internal/embeddings"
	"pressmatch/internal/matching"
	"pressmatch/internal/models/db_models"
	"pressmatch/internal/models/response_models"
	"pressmatch/internal/observability"
	"pressmatch/internal/repositories"
	"pressmatch/pkg/utils"
)

type SimilarityServiceInterface interface {
	FindSimilarJournalists(ctx context.Context, companyUserID uuid.UUID, minSimilarity float64, limit int) (*response_models.SimilarMatchResults, error)
	FindSimilarCompanies(ctx context.Context, journalistUserID uuid.UUID, minSimilarity float64, limit int) (*response_models.SimilarMatchResults, error)
}

type SimilarityService struct {
	journalistRepo repositories.JournalistRepositoryInterface
	companyRepo    repositories.CompanyRepositoryInterface
	embeddingRepo  repositories.EmbeddingRepositoryInterface
	log            *logrus.Logger
}

func NewSimilarityService(
	journalistRepo repositories.JournalistRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	embeddingRepo repositories.EmbeddingRepositoryInterface,
	log *logrus.Logger,
) SimilarityServiceInterface {
	return &SimilarityService{
		journalistRepo: journalistRepo,
		companyRepo:    companyRepo,
		embeddingRepo:  embeddingRepo,
		log:            log,
	}
}

type scoredEmbedding struct {
	profileID uuid.UUID
	score     float64
}

// scanSimilar computes cosine similarity between the requester's vector
// and every opposite-side embedding, keeps scores >= minSimilarity, and
// orders the survivors by score descending with profile id as a
// deterministic tie-break.
func scanSimilar(source []float32, candidates []db_models.ProfileEmbedding, minSimilarity float64) []scoredEmbedding {
	scored := make([]scoredEmbedding, 0)
	for i := range candidates {
		score := embeddings.CosineSimilarity(source, candidates[i].Embedding.Slice())
		if score >= minSimilarity {
			scored = append(scored, scoredEmbedding{profileID: candidates[i].ProfileID, score: score})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].profileID.String() < scored[j].profileID.String()
	})
	return scored
}

func (s *SimilarityService) FindSimilarJournalists(ctx context.Context, companyUserID uuid.UUID, minSimilarity float64, limit int) (*response_models.SimilarMatchResults, error) {
	company, err := s.companyRepo.GetByUserID(ctx, companyUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if company == nil {
		return nil, utils.ErrProfileNotFound
	}

	sourceEmbedding, err := s.embeddingRepo.GetEmbedding(ctx, db_models.ProfileTypeCompany, company.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sourceEmbedding == nil {
		return nil, utils.ErrEmbeddingUnavailable
	}

	candidates, err := s.embeddingRepo.ListByProfileType(ctx, db_models.ProfileTypeJournalist)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	observability.CandidatesScanned.WithLabelValues("similar_journalists").Observe(float64(len(candidates)))

	eligible, err := s.journalistRepo.ListAcceptingPitches(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	byID := make(map[uuid.UUID]*db_models.JournalistProfile, len(eligible))
	for i := range eligible {
		byID[eligible[i].ID] = &eligible[i]
	}

	matches := make([]response_models.SimilarJournalistMatch, 0)
	for _, sc := range scanSimilar(sourceEmbedding.Embedding.Slice(), candidates, minSimilarity) {
		journalist, ok := byID[sc.profileID]
		if !ok {
			continue
		}
		matches = append(matches, response_models.SimilarJournalistMatch{
			JournalistID:    journalist.ID.String(),
			FullName:        journalist.FullName,
			OutletName:      journalist.OutletName,
			OutletType:      journalist.OutletType,
			BeatDescription: journalist.BeatDescription,
			SimilarityScore: roundScore(sc.score),
			MatchReason:     matching.SimilarJournalistReason(journalist, company, sc.score),
		})
		if len(matches) == limit {
			break
		}
	}

	observability.MatchesComputed.WithLabelValues("similar_journalists").Add(float64(len(matches)))
	return &response_models.SimilarMatchResults{Matches: matches, Total: len(matches)}, nil
}

func (s *SimilarityService) FindSimilarCompanies(ctx context.Context, journalistUserID uuid.UUID, minSimilarity float64, limit int) (*response_models.SimilarMatchResults, error) {
	journalist, err := s.journalistRepo.GetByUserID(ctx, journalistUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journalist == nil {
		return nil, utils.ErrProfileNotFound
	}

	sourceEmbedding, err := s.embeddingRepo.GetEmbedding(ctx, db_models.ProfileTypeJournalist, journalist.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sourceEmbedding == nil {
		return nil, utils.ErrEmbeddingUnavailable
	}

	candidates, err := s.embeddingRepo.ListByProfileType(ctx, db_models.ProfileTypeCompany)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	observability.CandidatesScanned.WithLabelValues("similar_companies").Observe(float64(len(candidates)))

	eligible, err := s.companyRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	byID := make(map[uuid.UUID]*db_models.CompanyProfile, len(eligible))
	for i := range eligible {
		byID[eligible[i].ID] = &eligible[i]
	}

	matches := make([]response_models.SimilarCompanyMatch, 0)
	for _, sc := range scanSimilar(sourceEmbedding.Embedding.Slice(), candidates, minSimilarity) {
		company, ok := byID[sc.profileID]
		if !ok {
			continue
		}
		matches = append(matches, response_models.SimilarCompanyMatch{
			CompanyID:       company.ID.String(),
			CompanyName:     company.CompanyName,
			Industry:        company.Industry,
			CompanySize:     company.CompanySize,
			Description:     company.Description,
			SimilarityScore: roundScore(sc.score),
			MatchReason:     matching.SimilarCompanyReason(company, journalist, sc.score),
		})
		if len(matches) == limit {
			break
		}
	}

	observability.MatchesComputed.WithLabelValues("similar_companies").Add(float64(len(matches)))
	return &response_models.SimilarMatchResults{Matches: matches, Total: len(matches)}, nil
}

// roundScore keeps three decimals in API output.
func roundScore(score float64) float64 {
	return math.Round(score*1000) / 1000
}
