package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"

	"pressmatch/internal/embeddings"
	"pressmatch/internal/models/db_models"
	"pressmatch/internal/observability"
	"pressmatch/internal/repositories"
	"pressmatch/pkg/utils"
)

type EmbeddingServiceInterface interface {
	UpsertJournalistEmbedding(ctx context.Context, profile *db_models.JournalistProfile) error
	UpsertCompanyEmbedding(ctx context.Context, profile *db_models.CompanyProfile) error
}

type EmbeddingService struct {
	embeddingRepo repositories.EmbeddingRepositoryInterface
	generator     embeddings.Generator
	log           *logrus.Logger
}

func NewEmbeddingService(
	embeddingRepo repositories.EmbeddingRepositoryInterface,
	generator embeddings.Generator,
	log *logrus.Logger,
) EmbeddingServiceInterface {
	return &EmbeddingService{
		embeddingRepo: embeddingRepo,
		generator:     generator,
		log:           log,
	}
}

func (s *EmbeddingService) UpsertJournalistEmbedding(ctx context.Context, profile *db_models.JournalistProfile) error {
	sourceText := embeddings.BuildJournalistText(profile)
	return s.upsert(ctx, db_models.ProfileTypeJournalist, profile.ID, sourceText, profile.Topics)
}

func (s *EmbeddingService) UpsertCompanyEmbedding(ctx context.Context, profile *db_models.CompanyProfile) error {
	sourceText := embeddings.BuildCompanyText(profile)
	return s.upsert(ctx, db_models.ProfileTypeCompany, profile.ID, sourceText, profile.Topics)
}

func (s *EmbeddingService) upsert(ctx context.Context, profileType string, profileID uuid.UUID, sourceText string, topics []db_models.Topic) error {
	// Generator failures never fail a profile write; the failover
	// wrapper substitutes the deterministic fallback internally, so an
	// error here means even the fallback broke.
	vec, err := s.generator.Generate(ctx, sourceText)
	if err != nil {
		return err
	}
	if len(vec) != s.generator.Dimension() {
		return utils.ErrDimensionMismatch
	}

	slugs := make([]string, 0, len(topics))
	for _, t := range topics {
		slugs = append(slugs, t.Name)
	}

	embedding := &db_models.ProfileEmbedding{
		ProfileType: profileType,
		ProfileID:   profileID,
		Embedding:   pgvector.NewVector(vec),
		SourceText:  sourceText,
		TopicSlugs:  slugs,
	}
	if err := s.embeddingRepo.UpsertEmbedding(ctx, embedding); err != nil {
		return utils.ErrDatabaseError
	}

	observability.EmbeddingsGenerated.WithLabelValues(profileType).Inc()
	s.log.WithFields(logrus.Fields{
		"profile_type": profileType,
		"profile_id":   profileID,
	}).Debug("embedding upserted")
	return nil
}
