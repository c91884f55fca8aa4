package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pressmatch/internal/models/db_models"
)

type FeedbackRepositoryInterface interface {
	GetFeedback(ctx context.Context, userID, journalistID, companyID uuid.UUID) (*db_models.MatchFeedback, error)
	SaveFeedback(ctx context.Context, feedback *db_models.MatchFeedback) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.MatchFeedback, error)
	CountByType(ctx context.Context) (map[string]int64, error)
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepositoryInterface {
	return &FeedbackRepository{db: db}
}

type FeedbackRepository struct {
	db *gorm.DB
}

func (r *FeedbackRepository) GetFeedback(ctx context.Context, userID, journalistID, companyID uuid.UUID) (*db_models.MatchFeedback, error) {
	var feedback db_models.MatchFeedback
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND journalist_profile_id = ? AND company_profile_id = ?", userID, journalistID, companyID).
		First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackRepository) SaveFeedback(ctx context.Context, feedback *db_models.MatchFeedback) error {
	return r.db.WithContext(ctx).Save(feedback).Error
}

func (r *FeedbackRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.MatchFeedback, error) {
	var feedbacks []db_models.MatchFeedback
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *FeedbackRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	type row struct {
		FeedbackType string
		Count        int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&db_models.MatchFeedback{}).
		Select("feedback_type, count(id) as count").
		Group("feedback_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.FeedbackType] = r.Count
	}
	return counts, nil
}
