package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"pressmatch/internal/embeddings"
	"pressmatch/internal/models/db_models"
	"pressmatch/internal/models/request_models"
	"pressmatch/pkg/utils"
)

func journalistFixture() (JournalistServiceInterface, *fakeJournalistRepo, *fakeTopicRepo, *fakeEmbeddingRepo) {
	journalistRepo := &fakeJournalistRepo{}
	topicRepo := &fakeTopicRepo{}
	embeddingRepo := &fakeEmbeddingRepo{}
	embeddingService := NewEmbeddingService(embeddingRepo, embeddings.NewHashGenerator(), testLogger())
	svc := NewJournalistService(journalistRepo, topicRepo, embeddingService, testLogger())
	return svc, journalistRepo, topicRepo, embeddingRepo
}

func validCreateRequest(topicIDs ...string) request_models.CreateJournalistProfileRequest {
	return request_models.CreateJournalistProfileRequest{
		FullName:        "Dana Reyes",
		OutletName:      "The Daily Ledger",
		OutletType:      db_models.OutletTypeOnline,
		BeatDescription: "Enterprise software and AI infrastructure.",
		TopicIDs:        topicIDs,
	}
}

func TestCreateJournalistProfile(t *testing.T) {
	svc, repo, topicRepo, embeddingRepo := journalistFixture()

	ai := testTopic("artificial-intelligence")
	topicRepo.topics = append(topicRepo.topics, ai)

	userID := uuid.New()
	resp, err := svc.CreateProfile(context.Background(), userID, validCreateRequest(ai.ID.String()))
	if err != nil {
		t.Fatalf("CreateProfile() error: %v", err)
	}

	if !resp.IsAcceptingPitches {
		t.Error("new profile should default to accepting pitches")
	}
	if resp.MinPitchNoticeDays != 3 {
		t.Errorf("MinPitchNoticeDays = %d, want default 3", resp.MinPitchNoticeDays)
	}
	if resp.PreferredContactMethod != "email" {
		t.Errorf("PreferredContactMethod = %q, want default email", resp.PreferredContactMethod)
	}
	if len(resp.Topics) != 1 {
		t.Errorf("Topics = %v, want the one assigned topic", resp.Topics)
	}

	stored, _ := repo.GetByUserID(context.Background(), userID)
	if stored == nil {
		t.Fatal("profile not persisted")
	}

	// Profile writes and embedding writes travel together.
	embedded, _ := embeddingRepo.GetEmbedding(context.Background(), db_models.ProfileTypeJournalist, stored.ID)
	if embedded == nil {
		t.Error("no embedding stored alongside the profile")
	}
}

func TestCreateJournalistProfileRejectsSecond(t *testing.T) {
	svc, _, _, _ := journalistFixture()
	userID := uuid.New()

	if _, err := svc.CreateProfile(context.Background(), userID, validCreateRequest()); err != nil {
		t.Fatalf("CreateProfile() error: %v", err)
	}

	_, err := svc.CreateProfile(context.Background(), userID, validCreateRequest())
	if !errors.Is(err, utils.ErrProfileExists) {
		t.Errorf("error = %v, want ErrProfileExists", err)
	}
}

func TestCreateJournalistProfileUnknownTopic(t *testing.T) {
	svc, _, _, _ := journalistFixture()

	_, err := svc.CreateProfile(context.Background(), uuid.New(), validCreateRequest(uuid.New().String()))
	if !errors.Is(err, utils.ErrTopicNotFound) {
		t.Errorf("error = %v, want ErrTopicNotFound", err)
	}
}

func TestCreateJournalistProfileTopicCap(t *testing.T) {
	svc, _, topicRepo, _ := journalistFixture()

	ids := make([]string, 0, 11)
	for i := 0; i < 11; i++ {
		topic := testTopic(uuid.New().String())
		topicRepo.topics = append(topicRepo.topics, topic)
		ids = append(ids, topic.ID.String())
	}

	_, err := svc.CreateProfile(context.Background(), uuid.New(), validCreateRequest(ids...))
	if !errors.Is(err, utils.ErrTooManyTopics) {
		t.Errorf("error = %v, want ErrTooManyTopics", err)
	}
}

func TestUpdateJournalistProfilePartial(t *testing.T) {
	svc, repo, topicRepo, embeddingRepo := journalistFixture()

	ai := testTopic("artificial-intelligence")
	fintech := testTopic("fintech")
	topicRepo.topics = append(topicRepo.topics, ai, fintech)

	userID := uuid.New()
	if _, err := svc.CreateProfile(context.Background(), userID, validCreateRequest(ai.ID.String())); err != nil {
		t.Fatalf("CreateProfile() error: %v", err)
	}

	closed := false
	newBeat := "Payments infrastructure and banking APIs."
	resp, err := svc.UpdateProfile(context.Background(), userID, request_models.UpdateJournalistProfileRequest{
		BeatDescription:    &newBeat,
		IsAcceptingPitches: &closed,
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error: %v", err)
	}

	// Sent fields applied, unsent fields untouched.
	if resp.BeatDescription != newBeat {
		t.Errorf("BeatDescription = %q, want update applied", resp.BeatDescription)
	}
	if resp.IsAcceptingPitches {
		t.Error("IsAcceptingPitches still true after explicit false")
	}
	if resp.FullName != "Dana Reyes" {
		t.Errorf("FullName changed to %q on partial update", resp.FullName)
	}

	stored, _ := repo.GetByUserID(context.Background(), userID)
	if len(stored.Topics) != 1 || stored.Topics[0].ID != ai.ID {
		t.Errorf("topics changed without TopicIDs in the request: %v", stored.Topics)
	}

	// Embedding regenerated from the updated text.
	embedded, _ := embeddingRepo.GetEmbedding(context.Background(), db_models.ProfileTypeJournalist, stored.ID)
	if embedded == nil {
		t.Fatal("embedding missing after update")
	}
	if embedded.SourceText != embeddings.BuildJournalistText(stored) {
		t.Error("embedding source text not regenerated after update")
	}
}

func TestUpdateJournalistProfileReplacesTopics(t *testing.T) {
	svc, repo, topicRepo, _ := journalistFixture()

	ai := testTopic("artificial-intelligence")
	fintech := testTopic("fintech")
	topicRepo.topics = append(topicRepo.topics, ai, fintech)

	userID := uuid.New()
	if _, err := svc.CreateProfile(context.Background(), userID, validCreateRequest(ai.ID.String())); err != nil {
		t.Fatalf("CreateProfile() error: %v", err)
	}

	newTopics := []string{fintech.ID.String()}
	if _, err := svc.UpdateProfile(context.Background(), userID, request_models.UpdateJournalistProfileRequest{
		TopicIDs: &newTopics,
	}); err != nil {
		t.Fatalf("UpdateProfile() error: %v", err)
	}

	stored, _ := repo.GetByUserID(context.Background(), userID)
	if len(stored.Topics) != 1 || stored.Topics[0].ID != fintech.ID {
		t.Errorf("topics = %v, want replaced with fintech only", stored.Topics)
	}
}

func TestUpdateJournalistProfileWithoutProfile(t *testing.T) {
	svc, _, _, _ := journalistFixture()

	name := "Nobody"
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), request_models.UpdateJournalistProfileRequest{FullName: &name})
	if !errors.Is(err, utils.ErrProfileNotFound) {
		t.Errorf("error = %v, want ErrProfileNotFound", err)
	}
}
