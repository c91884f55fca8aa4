package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pressmatch/internal/models/db_models"
)

type EmbeddingRepositoryInterface interface {
	GetEmbedding(ctx context.Context, profileType string, profileID uuid.UUID) (*db_models.ProfileEmbedding, error)
	UpsertEmbedding(ctx context.Context, embedding *db_models.ProfileEmbedding) error
	ListByProfileType(ctx context.Context, profileType string) ([]db_models.ProfileEmbedding, error)
}

func NewEmbeddingRepository(db *gorm.DB) EmbeddingRepositoryInterface {
	return &EmbeddingRepository{db: db}
}

type EmbeddingRepository struct {
	db *gorm.DB
}

func (r *EmbeddingRepository) GetEmbedding(ctx context.Context, profileType string, profileID uuid.UUID) (*db_models.ProfileEmbedding, error) {
	var embedding db_models.ProfileEmbedding
	err := r.db.WithContext(ctx).
		Where("profile_type = ? AND profile_id = ?", profileType, profileID).
		First(&embedding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &embedding, nil
}

// UpsertEmbedding creates or replaces the single active embedding for a
// profile. Read-modify-write inside one transaction so concurrent
// profile updates cannot interleave a torn vector; last writer wins.
func (r *EmbeddingRepository) UpsertEmbedding(ctx context.Context, embedding *db_models.ProfileEmbedding) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing db_models.ProfileEmbedding
		err := tx.WithContext(ctx).
			Where("profile_type = ? AND profile_id = ?", embedding.ProfileType, embedding.ProfileID).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.WithContext(ctx).Create(embedding).Error
			}
			return err
		}

		existing.Embedding = embedding.Embedding
		existing.SourceText = embedding.SourceText
		existing.TopicSlugs = embedding.TopicSlugs
		return tx.WithContext(ctx).Save(&existing).Error
	})
}

func (r *EmbeddingRepository) ListByProfileType(ctx context.Context, profileType string) ([]db_models.ProfileEmbedding, error) {
	var embeddings []db_models.ProfileEmbedding
	err := r.db.WithContext(ctx).
		Where("profile_type = ?", profileType).
		Find(&embeddings).Error
	return embeddings, err
}
