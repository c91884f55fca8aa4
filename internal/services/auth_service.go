package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"pressmatch/internal/models/db_models"
	"pressmatch/internal/models/response_models"
	"pressmatch/internal/repositories"
	"pressmatch/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, email, password, userType string) (*response_models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*response_models.AuthResponse, error)
}

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
	log      *logrus.Logger
}

func NewAuthService(userRepo repositories.UserRepositoryInterface, log *logrus.Logger) AuthServiceInterface {
	return &AuthService{userRepo: userRepo, log: log}
}

func (s *AuthService) Register(ctx context.Context, email, password, userType string) (*response_models.AuthResponse, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		Email:        email,
		PasswordHash: hash,
		UserType:     userType,
		IsActive:     true,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(user.ID, user.UserType)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "user_type": userType}).Info("user registered")

	return &response_models.AuthResponse{
		Token:    token,
		UserID:   user.ID.String(),
		UserType: user.UserType,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*response_models.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.UserType)
	if err != nil {
		return nil, err
	}

	return &response_models.AuthResponse{
		Token:    token,
		UserID:   user.ID.String(),
		UserType: user.UserType,
	}, nil
}
