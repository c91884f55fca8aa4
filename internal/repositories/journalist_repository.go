package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pressmatch/internal/models/db_models"
)

type JournalistRepositoryInterface interface {
	CreateProfile(ctx context.Context, profile *db_models.JournalistProfile) error
	SaveProfile(ctx context.Context, profile *db_models.JournalistProfile) error
	ReplaceTopics(ctx context.Context, profile *db_models.JournalistProfile, topics []db_models.Topic) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.JournalistProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.JournalistProfile, error)
	ListAcceptingPitches(ctx context.Context) ([]db_models.JournalistProfile, error)
	CountProfiles(ctx context.Context) (int64, error)
}

func NewJournalistRepository(db *gorm.DB) JournalistRepositoryInterface {
	return &JournalistRepository{db: db}
}

type JournalistRepository struct {
	db *gorm.DB
}

func (r *JournalistRepository) CreateProfile(ctx context.Context, profile *db_models.JournalistProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(profile).Error
	})
}

func (r *JournalistRepository) SaveProfile(ctx context.Context, profile *db_models.JournalistProfile) error {
	return r.db.WithContext(ctx).Omit("Topics").Save(profile).Error
}

func (r *JournalistRepository) ReplaceTopics(ctx context.Context, profile *db_models.JournalistProfile, topics []db_models.Topic) error {
	if err := r.db.WithContext(ctx).Model(profile).Association("Topics").Replace(topics); err != nil {
		return err
	}
	profile.Topics = topics
	return nil
}

func (r *JournalistRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.JournalistProfile, error) {
	var profile db_models.JournalistProfile
	err := r.db.WithContext(ctx).Preload("Topics").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *JournalistRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.JournalistProfile, error) {
	var profile db_models.JournalistProfile
	err := r.db.WithContext(ctx).Preload("Topics").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *JournalistRepository) ListAcceptingPitches(ctx context.Context) ([]db_models.JournalistProfile, error) {
	var profiles []db_models.JournalistProfile
	err := r.db.WithContext(ctx).
		Preload("Topics").
		Where("is_accepting_pitches = ?", true).
		Find(&profiles).Error
	return profiles, err
}

func (r *JournalistRepository) CountProfiles(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.JournalistProfile{}).Count(&count).Error
	return count, err
}
