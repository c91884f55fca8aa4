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

type CompanyServiceInterface interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, req request_models.CreateCompanyProfileRequest) (*response_models.CompanyProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateCompanyProfileRequest) (*response_models.CompanyProfileResponse, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*response_models.CompanyProfileResponse, error)
}

type CompanyService struct {
	companyRepo      repositories.CompanyRepositoryInterface
	topicRepo        repositories.TopicRepositoryInterface
	embeddingService EmbeddingServiceInterface
	log              *logrus.Logger
}

func NewCompanyService(
	companyRepo repositories.CompanyRepositoryInterface,
	topicRepo repositories.TopicRepositoryInterface,
	embeddingService EmbeddingServiceInterface,
	log *logrus.Logger,
) CompanyServiceInterface {
	return &CompanyService{
		companyRepo:      companyRepo,
		topicRepo:        topicRepo,
		embeddingService: embeddingService,
		log:              log,
	}
}

func (s *CompanyService) CreateProfile(ctx context.Context, userID uuid.UUID, req request_models.CreateCompanyProfileRequest) (*response_models.CompanyProfileResponse, error) {
	existing, err := s.companyRepo.GetByUserID(ctx, userID)
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

	profile := &db_models.CompanyProfile{
		UserID:       userID,
		CompanyName:  req.CompanyName,
		Description:  req.Description,
		Website:      req.Website,
		Industry:     req.Industry,
		CompanySize:  req.CompanySize,
		Headquarters: req.Headquarters,
		IsActive:     true,
		Topics:       topics,
	}
	if req.FoundedYear != nil {
		profile.FoundedYear = *req.FoundedYear
	}

	if err := s.companyRepo.CreateProfile(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := s.embeddingService.UpsertCompanyEmbedding(ctx, profile); err != nil {
		return nil, err
	}

	resp := toCompanyProfileResponse(profile)
	return &resp, nil
}

func (s *CompanyService) UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateCompanyProfileRequest) (*response_models.CompanyProfileResponse, error) {
	profile, err := s.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.Industry != nil {
		profile.Industry = *req.Industry
	}
	if req.CompanySize != nil {
		profile.CompanySize = *req.CompanySize
	}
	if req.FoundedYear != nil {
		profile.FoundedYear = *req.FoundedYear
	}
	if req.Headquarters != nil {
		profile.Headquarters = *req.Headquarters
	}
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}

	if err := s.companyRepo.SaveProfile(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if req.TopicIDs != nil {
		topics, err := resolveTopicIDs(ctx, s.topicRepo, *req.TopicIDs)
		if err != nil {
			return nil, err
		}
		if err := s.companyRepo.ReplaceTopics(ctx, profile, topics); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	if err := s.embeddingService.UpsertCompanyEmbedding(ctx, profile); err != nil {
		return nil, err
	}

	resp := toCompanyProfileResponse(profile)
	return &resp, nil
}

func (s *CompanyService) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*response_models.CompanyProfileResponse, error) {
	profile, err := s.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	resp := toCompanyProfileResponse(profile)
	return &resp, nil
}

func toCompanyProfileResponse(p *db_models.CompanyProfile) response_models.CompanyProfileResponse {
	return response_models.CompanyProfileResponse{
		ID:           p.ID.String(),
		UserID:       p.UserID.String(),
		CompanyName:  p.CompanyName,
		Description:  p.Description,
		Website:      p.Website,
		Industry:     p.Industry,
		CompanySize:  p.CompanySize,
		FoundedYear:  p.FoundedYear,
		Headquarters: p.Headquarters,
		IsActive:     p.IsActive,
		Topics:       toTopicResponses(p.Topics),
	}
}
