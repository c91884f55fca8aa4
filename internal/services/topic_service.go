package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pressmatch/internal/models/db_models"
	"pressmatch/internal/models/response_models"
	"pressmatch/internal/repositories"
	"pressmatch/pkg/utils"
)

type TopicServiceInterface interface {
	ListTopics(ctx context.Context, category string, page, pageSize int) ([]response_models.TopicResponse, error)
	CreateTopic(ctx context.Context, name, displayName, category string) (*response_models.TopicResponse, error)
	SeedTopics(ctx context.Context) (int, error)
}

type TopicService struct {
	topicRepo repositories.TopicRepositoryInterface
	log       *logrus.Logger
}

func NewTopicService(topicRepo repositories.TopicRepositoryInterface, log *logrus.Logger) TopicServiceInterface {
	return &TopicService{topicRepo: topicRepo, log: log}
}

func (s *TopicService) ListTopics(ctx context.Context, category string, page, pageSize int) ([]response_models.TopicResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	topics, err := s.topicRepo.ListTopics(ctx, category, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toTopicResponses(topics), nil
}

func (s *TopicService) CreateTopic(ctx context.Context, name, displayName, category string) (*response_models.TopicResponse, error) {
	topic := &db_models.Topic{
		Name:        name,
		DisplayName: displayName,
		Category:    category,
	}
	if err := s.topicRepo.CreateTopic(ctx, topic); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toTopicResponse(*topic)
	return &resp, nil
}

// SeedTopics loads the initial taxonomy. Idempotent: existing slugs are
// skipped. Returns the number of topics created.
func (s *TopicService) SeedTopics(ctx context.Context) (int, error) {
	created := 0
	for _, seed := range seedTopics {
		existing, err := s.topicRepo.GetTopicByName(ctx, seed.name)
		if err != nil {
			return created, utils.ErrDatabaseError
		}
		if existing != nil {
			continue
		}

		topic := &db_models.Topic{
			Name:        seed.name,
			DisplayName: seed.displayName,
			Category:    seed.category,
		}
		if err := s.topicRepo.CreateTopic(ctx, topic); err != nil {
			return created, utils.ErrDatabaseError
		}
		created++
	}

	if created > 0 {
		s.log.WithField("created", created).Info("seeded topic taxonomy")
	}
	return created, nil
}

var seedTopics = []struct {
	name        string
	displayName string
	category    string
}{
	{"artificial-intelligence", "Artificial Intelligence", "technology"},
	{"machine-learning", "Machine Learning", "technology"},
	{"cybersecurity", "Cybersecurity", "technology"},
	{"cloud-computing", "Cloud Computing", "technology"},
	{"blockchain", "Blockchain", "technology"},
	{"software-development", "Software Development", "technology"},
	{"data-privacy", "Data Privacy", "technology"},
	{"startups", "Startups", "business"},
	{"venture-capital", "Venture Capital", "business"},
	{"mergers-acquisitions", "Mergers & Acquisitions", "business"},
	{"leadership", "Leadership", "business"},
	{"remote-work", "Remote Work", "business"},
	{"fintech", "Fintech", "business"},
	{"ecommerce", "E-commerce", "business"},
	{"digital-health", "Digital Health", "healthcare"},
	{"biotech", "Biotech", "healthcare"},
	{"pharmaceuticals", "Pharmaceuticals", "healthcare"},
	{"mental-health", "Mental Health", "healthcare"},
	{"healthcare-policy", "Healthcare Policy", "healthcare"},
	{"climate-tech", "Climate Tech", "energy"},
	{"renewable-energy", "Renewable Energy", "energy"},
	{"sustainability", "Sustainability", "energy"},
	{"electric-vehicles", "Electric Vehicles", "energy"},
	{"streaming", "Streaming", "media"},
	{"gaming", "Gaming", "media"},
	{"social-media", "Social Media", "media"},
	{"creator-economy", "Creator Economy", "media"},
}

func toTopicResponse(t db_models.Topic) response_models.TopicResponse {
	return response_models.TopicResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		DisplayName: t.DisplayName,
		Category:    t.Category,
	}
}

func toTopicResponses(topics []db_models.Topic) []response_models.TopicResponse {
	out := make([]response_models.TopicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, toTopicResponse(t))
	}
	return out
}

// resolveTopicIDs parses and loads the topics referenced by a profile
// request. Enforces the 10-topic cap and rejects unknown ids.
func resolveTopicIDs(ctx context.Context, topicRepo repositories.TopicRepositoryInterface, rawIDs []string) ([]db_models.Topic, error) {
	if len(rawIDs) > 10 {
		return nil, utils.ErrTooManyTopics
	}
	if len(rawIDs) == 0 {
		return []db_models.Topic{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, utils.ErrTopicNotFound
		}
		ids = append(ids, id)
	}

	topics, err := topicRepo.GetTopicsByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(topics) != len(ids) {
		return nil, utils.ErrTopicNotFound
	}
	return topics, nil
}
