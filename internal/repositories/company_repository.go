package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pressmatch/internal/models/db_models"
)

type CompanyRepositoryInterface interface {
	CreateProfile(ctx context.Context, profile *db_models.CompanyProfile) error
	SaveProfile(ctx context.Context, profile *db_models.CompanyProfile) error
	ReplaceTopics(ctx context.Context, profile *db_models.CompanyProfile, topics []db_models.Topic) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.CompanyProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.CompanyProfile, error)
	ListActive(ctx context.Context) ([]db_models.CompanyProfile, error)
	CountProfiles(ctx context.Context) (int64, error)
}

func NewCompanyRepository(db *gorm.DB) CompanyRepositoryInterface {
	return &CompanyRepository{db: db}
}

type CompanyRepository struct {
	db *gorm.DB
}

func (r *CompanyRepository) CreateProfile(ctx context.Context, profile *db_models.CompanyProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(profile).Error
	})
}

func (r *CompanyRepository) SaveProfile(ctx context.Context, profile *db_models.CompanyProfile) error {
	return r.db.WithContext(ctx).Omit("Topics").Save(profile).Error
}

func (r *CompanyRepository) ReplaceTopics(ctx context.Context, profile *db_models.CompanyProfile, topics []db_models.Topic) error {
	if err := r.db.WithContext(ctx).Model(profile).Association("Topics").Replace(topics); err != nil {
		return err
	}
	profile.Topics = topics
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.CompanyProfile, error) {
	var profile db_models.CompanyProfile
	err := r.db.WithContext(ctx).Preload("Topics").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CompanyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.CompanyProfile, error) {
	var profile db_models.CompanyProfile
	err := r.db.WithContext(ctx).Preload("Topics").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CompanyRepository) ListActive(ctx context.Context) ([]db_models.CompanyProfile, error) {
	var profiles []db_models.CompanyProfile
	err := r.db.WithContext(ctx).
		Preload("Topics").
		Where("is_active = ?", true).
		Find(&profiles).Error
	return profiles, err
}

func (r *CompanyRepository) CountProfiles(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.CompanyProfile{}).Count(&count).Error
	return count, err
}
