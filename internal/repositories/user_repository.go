package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pressmatch/internal/models/db_models"
)

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *db_models.User) error
	GetUserByEmail(ctx context.Context, email string) (*db_models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	CountUsersByType(ctx context.Context) (map[string]int64, error)
}

func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{db: db}
}

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountUsersByType(ctx context.Context) (map[string]int64, error) {
	type row struct {
		UserType string
		Count    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&db_models.User{}).
		Select("user_type, count(id) as count").
		Group("user_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.UserType] = r.Count
	}
	return counts, nil
}
