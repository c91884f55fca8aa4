package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pressmatch/internal/models/db_models"
	"pressmatch/internal/models/request_models"
	"pressmatch/internal/models/response_models"
	"pressmatch/internal/repositories"
	"pressmatch/pkg/utils"
)

type FeedbackServiceInterface interface {
	SubmitFeedback(ctx context.Context, userID uuid.UUID, req request_models.CreateFeedbackRequest) (*response_models.FeedbackResponse, error)
	ListUserFeedback(ctx context.Context, userID uuid.UUID, limit int) ([]response_models.FeedbackResponse, error)
	GetStats(ctx context.Context) (*response_models.FeedbackStats, error)
}

type FeedbackService struct {
	feedbackRepo   repositories.FeedbackRepositoryInterface
	journalistRepo repositories.JournalistRepositoryInterface
	companyRepo    repositories.CompanyRepositoryInterface
	log            *logrus.Logger
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	journalistRepo repositories.JournalistRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	log *logrus.Logger,
) FeedbackServiceInterface {
	return &FeedbackService{
		feedbackRepo:   feedbackRepo,
		journalistRepo: journalistRepo,
		companyRepo:    companyRepo,
		log:            log,
	}
}

// SubmitFeedback records one user's judgment of one pairing. A repeat
// submission for the same pairing overwrites type and notes instead of
// creating a duplicate row.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, userID uuid.UUID, req request_models.CreateFeedbackRequest) (*response_models.FeedbackResponse, error) {
	journalistID, err := uuid.Parse(req.JournalistProfileID)
	if err != nil {
		return nil, utils.ErrCounterpartNotFound
	}
	companyID, err := uuid.Parse(req.CompanyProfileID)
	if err != nil {
		return nil, utils.ErrCounterpartNotFound
	}

	journalist, err := s.journalistRepo.GetByID(ctx, journalistID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journalist == nil {
		return nil, utils.ErrCounterpartNotFound
	}
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if company == nil {
		return nil, utils.ErrCounterpartNotFound
	}

	feedback, err := s.feedbackRepo.GetFeedback(ctx, userID, journalistID, companyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if feedback == nil {
		feedback = &db_models.MatchFeedback{
			UserID:              userID,
			JournalistProfileID: journalistID,
			CompanyProfileID:    companyID,
		}
	}
	feedback.FeedbackType = req.FeedbackType
	feedback.Notes = req.Notes

	if err := s.feedbackRepo.SaveFeedback(ctx, feedback); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toFeedbackResponse(feedback)
	return &resp, nil
}

func (s *FeedbackService) ListUserFeedback(ctx context.Context, userID uuid.UUID, limit int) ([]response_models.FeedbackResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	feedbacks, err := s.feedbackRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		out = append(out, toFeedbackResponse(&feedbacks[i]))
	}
	return out, nil
}

func (s *FeedbackService) GetStats(ctx context.Context) (*response_models.FeedbackStats, error) {
	counts, err := s.feedbackRepo.CountByType(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats := &response_models.FeedbackStats{
		HelpfulCount:    counts[db_models.FeedbackTypeHelpful],
		NotHelpfulCount: counts[db_models.FeedbackTypeNotHelpful],
		ContactedCount:  counts[db_models.FeedbackTypeContacted],
		SuccessfulCount: counts[db_models.FeedbackTypeSuccessful],
	}
	stats.TotalFeedback = stats.HelpfulCount + stats.NotHelpfulCount + stats.ContactedCount + stats.SuccessfulCount

	rated := stats.HelpfulCount + stats.NotHelpfulCount
	if rated > 0 {
		stats.HelpfulnessRate = roundScore(float64(stats.HelpfulCount) / float64(rated))
	}
	return stats, nil
}

func toFeedbackResponse(f *db_models.MatchFeedback) response_models.FeedbackResponse {
	return response_models.FeedbackResponse{
		ID:                  f.ID.String(),
		JournalistProfileID: f.JournalistProfileID.String(),
		CompanyProfileID:    f.CompanyProfileID.String(),
		FeedbackType:        f.FeedbackType,
		Notes:               f.Notes,
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
}
