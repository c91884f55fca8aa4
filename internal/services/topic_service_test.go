package services

import (
	"context"
	"errors"
	"testing"

	"pressmatch/pkg/utils"
)

func TestSeedTopicsIdempotent(t *testing.T) {
	repo := &fakeTopicRepo{}
	svc := NewTopicService(repo, testLogger())

	created, err := svc.SeedTopics(context.Background())
	if err != nil {
		t.Fatalf("SeedTopics() error: %v", err)
	}
	if created != len(seedTopics) {
		t.Fatalf("first seed created %d topics, want %d", created, len(seedTopics))
	}

	created, err = svc.SeedTopics(context.Background())
	if err != nil {
		t.Fatalf("second SeedTopics() error: %v", err)
	}
	if created != 0 {
		t.Errorf("second seed created %d topics, want 0", created)
	}
	if len(repo.topics) != len(seedTopics) {
		t.Errorf("repo holds %d topics after reseed, want %d", len(repo.topics), len(seedTopics))
	}
}

func TestListTopicsByCategory(t *testing.T) {
	repo := &fakeTopicRepo{}
	svc := NewTopicService(repo, testLogger())
	if _, err := svc.SeedTopics(context.Background()); err != nil {
		t.Fatalf("SeedTopics() error: %v", err)
	}

	topics, err := svc.ListTopics(context.Background(), "energy", 1, 50)
	if err != nil {
		t.Fatalf("ListTopics() error: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no energy topics returned")
	}
	for _, topic := range topics {
		if topic.Category != "energy" {
			t.Errorf("topic %q has category %q, want energy", topic.Name, topic.Category)
		}
	}
}

func TestListTopicsValidatesPaging(t *testing.T) {
	svc := NewTopicService(&fakeTopicRepo{}, testLogger())

	if _, err := svc.ListTopics(context.Background(), "", 0, 20); !errors.Is(err, utils.ErrInvalidPage) {
		t.Errorf("page 0 error = %v, want ErrInvalidPage", err)
	}
	if _, err := svc.ListTopics(context.Background(), "", 1, 0); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Errorf("size 0 error = %v, want ErrInvalidPageSize", err)
	}
	if _, err := svc.ListTopics(context.Background(), "", 1, 101); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Errorf("size 101 error = %v, want ErrInvalidPageSize", err)
	}
}
