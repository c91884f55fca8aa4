package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pressmatch/internal/models/db_models"
)

type TopicRepositoryInterface interface {
	CreateTopic(ctx context.Context, topic *db_models.Topic) error
	GetTopicByID(ctx context.Context, topicID uuid.UUID) (*db_models.Topic, error)
	GetTopicByName(ctx context.Context, name string) (*db_models.Topic, error)
	GetTopicsByIDs(ctx context.Context, topicIDs []uuid.UUID) ([]db_models.Topic, error)
	ListTopics(ctx context.Context, category string, page, pageSize int) ([]db_models.Topic, error)
	CountTopics(ctx context.Context) (int64, error)
	CountTopicsInUse(ctx context.Context) (int64, error)
}

func NewTopicRepository(db *gorm.DB) TopicRepositoryInterface {
	return &TopicRepository{db: db}
}

type TopicRepository struct {
	db *gorm.DB
}

func (r *TopicRepository) CreateTopic(ctx context.Context, topic *db_models.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}

func (r *TopicRepository) GetTopicByID(ctx context.Context, topicID uuid.UUID) (*db_models.Topic, error) {
	var topic db_models.Topic
	err := r.db.WithContext(ctx).Where("id = ?", topicID).First(&topic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &topic, nil
}

func (r *TopicRepository) GetTopicByName(ctx context.Context, name string) (*db_models.Topic, error) {
	var topic db_models.Topic
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&topic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &topic, nil
}

func (r *TopicRepository) GetTopicsByIDs(ctx context.Context, topicIDs []uuid.UUID) ([]db_models.Topic, error) {
	if len(topicIDs) == 0 {
		return []db_models.Topic{}, nil
	}
	var topics []db_models.Topic
	err := r.db.WithContext(ctx).Where("id IN ?", topicIDs).Find(&topics).Error
	return topics, err
}

func (r *TopicRepository) ListTopics(ctx context.Context, category string, page, pageSize int) ([]db_models.Topic, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Topic{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var topics []db_models.Topic
	err := query.
		Order("category, display_name").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&topics).Error
	return topics, err
}

func (r *TopicRepository) CountTopics(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Topic{}).Count(&count).Error
	return count, err
}

func (r *TopicRepository) CountTopicsInUse(ctx context.Context) (int64, error) {
	var journalistCount, companyCount int64
	if err := r.db.WithContext(ctx).
		Table("journalist_topics").
		Distinct("topic_id").
		Count(&journalistCount).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).
		Table("company_topics").
		Distinct("topic_id").
		Count(&companyCount).Error; err != nil {
		return 0, err
	}
	if companyCount > journalistCount {
		return companyCount, nil
	}
	return journalistCount, nil
}
