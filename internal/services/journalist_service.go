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

type JournalistServiceInterface interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, req request_models.CreateJournalistProfileRequest) (*response_models.JournalistProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateJournalistProfileRequest) (*response_models.JournalistProfileResponse, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*response_models.JournalistProfileResponse, error)
}

type JournalistService struct {
	journalistRepo   repositories.JournalistRepositoryInterface
	topicRepo        repositories.TopicRepositoryInterface
	embeddingService EmbeddingServiceInterface
	log              *logrus.Logger
}

func NewJournalistService(
	journalistRepo repositories.JournalistRepositoryInterface,
	topicRepo repositories.TopicRepositoryInterface,
	embeddingService EmbeddingServiceInterface,
	log *logrus.Logger,
) JournalistServiceInterface {
	return &JournalistService{
		journalistRepo:   journalistRepo,
		topicRepo:        topicRepo,
		embeddingService: embeddingService,
		log:              log,
	}
}

func (s *JournalistService) CreateProfile(ctx context.Context, userID uuid.UUID, req request_models.CreateJournalistProfileRequest) (*response_models.JournalistProfileResponse, error) {
	existing, err := s.journalistRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrProfileExists
	}

	topics, err := resolveTopicIDs(ctx, s.topicRepo, req.TopicIDs)
	if err != nil {
		return nil, err
	}

	profile := &db_models.JournalistProfile{
		UserID:                 userID,
		FullName:               req.FullName,
		Bio:                    req.Bio,
		OutletName:             req.OutletName,
		OutletType:             req.OutletType,
		BeatDescription:        req.BeatDescription,
		MinPitchNoticeDays:     3,
		PreferredContactMethod: "email",
		IsAcceptingPitches:     true,
		Topics:                 topics,
	}
	if req.MinPitchNoticeDays != nil {
		profile.MinPitchNoticeDays = *req.MinPitchNoticeDays
	}
	if req.PreferredContactMethod != "" {
		profile.PreferredContactMethod = req.PreferredContactMethod
	}

	if err := s.journalistRepo.CreateProfile(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Embedding is written synchronously with the profile; backend
	// failures are absorbed by the generator's fallback.
	if err := s.embeddingService.UpsertJournalistEmbedding(ctx, profile); err != nil {
		return nil, err
	}

	resp := toJournalistProfileResponse(profile)
	return &resp, nil
}

func (s *JournalistService) UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateJournalistProfileRequest) (*response_models.JournalistProfileResponse, error) {
	profile, err := s.journalistRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.OutletName != nil {
		profile.OutletName = *req.OutletName
	}
	if req.OutletType != nil {
		profile.OutletType = *req.OutletType
	}
	if req.BeatDescription != nil {
		profile.BeatDescription = *req.BeatDescription
	}
	if req.MinPitchNoticeDays != nil {
		profile.MinPitchNoticeDays = *req.MinPitchNoticeDays
	}
	if req.PreferredContactMethod != nil {
		profile.PreferredContactMethod = *req.PreferredContactMethod
	}
	if req.IsAcceptingPitches != nil {
		profile.IsAcceptingPitches = *req.IsAcceptingPitches
	}

	if err := s.journalistRepo.SaveProfile(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if req.TopicIDs != nil {
		topics, err := resolveTopicIDs(ctx, s.topicRepo, *req.TopicIDs)
		if err != nil {
			return nil, err
		}
		if err := s.journalistRepo.ReplaceTopics(ctx, profile, topics); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	if err := s.embeddingService.UpsertJournalistEmbedding(ctx, profile); err != nil {
		return nil, err
	}

	resp := toJournalistProfileResponse(profile)
	return &resp, nil
}

func (s *JournalistService) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*response_models.JournalistProfileResponse, error) {
	profile, err := s.journalistRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	resp := toJournalistProfileResponse(profile)
	return &resp, nil
}

func toJournalistProfileResponse(p *db_models.JournalistProfile) response_models.JournalistProfileResponse {
	return response_models.JournalistProfileResponse{
		ID:                     p.ID.String(),
		UserID:                 p.UserID.String(),
		FullName:               p.FullName,
		Bio:                    p.Bio,
		OutletName:             p.OutletName,
		OutletType:             p.OutletType,
		BeatDescription:        p.BeatDescription,
		MinPitchNoticeDays:     p.MinPitchNoticeDays,
		PreferredContactMethod: p.PreferredContactMethod,
		IsAcceptingPitches:     p.IsAcceptingPitches,
		Topics:                 toTopicResponses(p.Topics),
	}
}
