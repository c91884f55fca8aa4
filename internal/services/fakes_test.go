package services

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pressmatch/internal/models/db_models"
)

// Hand-written in-memory fakes. They implement only what the services
// under test touch and keep the ordering guarantees of the real
// repositories where those matter.

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeJournalistRepo struct {
	profiles []db_models.JournalistProfile
	saveErr  error
}

func (f *fakeJournalistRepo) CreateProfile(ctx context.Context, profile *db_models.JournalistProfile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.profiles = append(f.profiles, *profile)
	return nil
}

func (f *fakeJournalistRepo) SaveProfile(ctx context.Context, profile *db_models.JournalistProfile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for i := range f.profiles {
		if f.profiles[i].ID == profile.ID {
			topics := f.profiles[i].Topics
			f.profiles[i] = *profile
			f.profiles[i].Topics = topics
			return nil
		}
	}
	f.profiles = append(f.profiles, *profile)
	return nil
}

func (f *fakeJournalistRepo) ReplaceTopics(ctx context.Context, profile *db_models.JournalistProfile, topics []db_models.Topic) error {
	profile.Topics = topics
	for i := range f.profiles {
		if f.profiles[i].ID == profile.ID {
			f.profiles[i].Topics = topics
		}
	}
	return nil
}

func (f *fakeJournalistRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.JournalistProfile, error) {
	for i := range f.profiles {
		if f.profiles[i].ID == id {
			p := f.profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeJournalistRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.JournalistProfile, error) {
	for i := range f.profiles {
		if f.profiles[i].UserID == userID {
			p := f.profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeJournalistRepo) ListAcceptingPitches(ctx context.Context) ([]db_models.JournalistProfile, error) {
	out := make([]db_models.JournalistProfile, 0)
	for _, p := range f.profiles {
		if p.IsAcceptingPitches {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeJournalistRepo) CountProfiles(ctx context.Context) (int64, error) {
	return int64(len(f.profiles)), nil
}

type fakeCompanyRepo struct {
	profiles []db_models.CompanyProfile
	saveErr  error
}

func (f *fakeCompanyRepo) CreateProfile(ctx context.Context, profile *db_models.CompanyProfile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.profiles = append(f.profiles, *profile)
	return nil
}

func (f *fakeCompanyRepo) SaveProfile(ctx context.Context, profile *db_models.CompanyProfile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for i := range f.profiles {
		if f.profiles[i].ID == profile.ID {
			topics := f.profiles[i].Topics
			f.profiles[i] = *profile
			f.profiles[i].Topics = topics
			return nil
		}
	}
	f.profiles = append(f.profiles, *profile)
	return nil
}

func (f *fakeCompanyRepo) ReplaceTopics(ctx context.Context, profile *db_models.CompanyProfile, topics []db_models.Topic) error {
	profile.Topics = topics
	for i := range f.profiles {
		if f.profiles[i].ID == profile.ID {
			f.profiles[i].Topics = topics
		}
	}
	return nil
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.CompanyProfile, error) {
	for i := range f.profiles {
		if f.profiles[i].ID == id {
			p := f.profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.CompanyProfile, error) {
	for i := range f.profiles {
		if f.profiles[i].UserID == userID {
			p := f.profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) ListActive(ctx context.Context) ([]db_models.CompanyProfile, error) {
	out := make([]db_models.CompanyProfile, 0)
	for _, p := range f.profiles {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCompanyRepo) CountProfiles(ctx context.Context) (int64, error) {
	return int64(len(f.profiles)), nil
}

type fakeEmbeddingRepo struct {
	embeddings []db_models.ProfileEmbedding
}

func (f *fakeEmbeddingRepo) GetEmbedding(ctx context.Context, profileType string, profileID uuid.UUID) (*db_models.ProfileEmbedding, error) {
	for i := range f.embeddings {
		if f.embeddings[i].ProfileType == profileType && f.embeddings[i].ProfileID == profileID {
			e := f.embeddings[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmbeddingRepo) UpsertEmbedding(ctx context.Context, embedding *db_models.ProfileEmbedding) error {
	for i := range f.embeddings {
		if f.embeddings[i].ProfileType == embedding.ProfileType && f.embeddings[i].ProfileID == embedding.ProfileID {
			f.embeddings[i].Embedding = embedding.Embedding
			f.embeddings[i].SourceText = embedding.SourceText
			f.embeddings[i].TopicSlugs = embedding.TopicSlugs
			return nil
		}
	}
	if embedding.ID == uuid.Nil {
		embedding.ID = uuid.New()
	}
	f.embeddings = append(f.embeddings, *embedding)
	return nil
}

func (f *fakeEmbeddingRepo) ListByProfileType(ctx context.Context, profileType string) ([]db_models.ProfileEmbedding, error) {
	out := make([]db_models.ProfileEmbedding, 0)
	for _, e := range f.embeddings {
		if e.ProfileType == profileType {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeFeedbackRepo struct {
	feedbacks []db_models.MatchFeedback
}

func (f *fakeFeedbackRepo) GetFeedback(ctx context.Context, userID, journalistID, companyID uuid.UUID) (*db_models.MatchFeedback, error) {
	for i := range f.feedbacks {
		fb := f.feedbacks[i]
		if fb.UserID == userID && fb.JournalistProfileID == journalistID && fb.CompanyProfileID == companyID {
			return &fb, nil
		}
	}
	return nil, nil
}

func (f *fakeFeedbackRepo) SaveFeedback(ctx context.Context, feedback *db_models.MatchFeedback) error {
	for i := range f.feedbacks {
		fb := &f.feedbacks[i]
		if fb.UserID == feedback.UserID && fb.JournalistProfileID == feedback.JournalistProfileID && fb.CompanyProfileID == feedback.CompanyProfileID {
			fb.FeedbackType = feedback.FeedbackType
			fb.Notes = feedback.Notes
			return nil
		}
	}
	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	f.feedbacks = append(f.feedbacks, *feedback)
	return nil
}

func (f *fakeFeedbackRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.MatchFeedback, error) {
	out := make([]db_models.MatchFeedback, 0)
	for _, fb := range f.feedbacks {
		if fb.UserID == userID {
			out = append(out, fb)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeFeedbackRepo) CountByType(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, fb := range f.feedbacks {
		counts[fb.FeedbackType]++
	}
	return counts, nil
}

type fakeTopicRepo struct {
	topics []db_models.Topic
}

func (f *fakeTopicRepo) CreateTopic(ctx context.Context, topic *db_models.Topic) error {
	if topic.ID == uuid.Nil {
		topic.ID = uuid.New()
	}
	f.topics = append(f.topics, *topic)
	return nil
}

func (f *fakeTopicRepo) GetTopicByID(ctx context.Context, topicID uuid.UUID) (*db_models.Topic, error) {
	for i := range f.topics {
		if f.topics[i].ID == topicID {
			t := f.topics[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeTopicRepo) GetTopicByName(ctx context.Context, name string) (*db_models.Topic, error) {
	for i := range f.topics {
		if f.topics[i].Name == name {
			t := f.topics[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeTopicRepo) GetTopicsByIDs(ctx context.Context, topicIDs []uuid.UUID) ([]db_models.Topic, error) {
	wanted := make(map[uuid.UUID]struct{}, len(topicIDs))
	for _, id := range topicIDs {
		wanted[id] = struct{}{}
	}
	out := make([]db_models.Topic, 0)
	for _, t := range f.topics {
		if _, ok := wanted[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTopicRepo) ListTopics(ctx context.Context, category string, page, pageSize int) ([]db_models.Topic, error) {
	filtered := make([]db_models.Topic, 0)
	for _, t := range f.topics {
		if category == "" || t.Category == category {
			filtered = append(filtered, t)
		}
	}
	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []db_models.Topic{}, nil
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], nil
}

func (f *fakeTopicRepo) CountTopics(ctx context.Context) (int64, error) {
	return int64(len(f.topics)), nil
}

func (f *fakeTopicRepo) CountTopicsInUse(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeUserRepo struct {
	users []db_models.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*db_models.User, error) {
	for i := range f.users {
		if strings.EqualFold(f.users[i].Email, email) {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CountUsersByType(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, u := range f.users {
		counts[u.UserType]++
	}
	return counts, nil
}

// helpers shared across service tests

func testTopic(name string) db_models.Topic {
	return db_models.Topic{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Name:        name,
		DisplayName: name,
		Category:    "technology",
	}
}

func testJournalist(userID uuid.UUID, accepting bool, topics ...db_models.Topic) db_models.JournalistProfile {
	return db_models.JournalistProfile{
		BaseModel:          db_models.BaseModel{ID: uuid.New()},
		UserID:             userID,
		FullName:           "Dana Reyes",
		OutletName:         "The Daily Ledger",
		OutletType:         db_models.OutletTypeOnline,
		BeatDescription:    "Enterprise software and AI infrastructure.",
		IsAcceptingPitches: accepting,
		Topics:             topics,
	}
}

func testCompany(userID uuid.UUID, active bool, topics ...db_models.Topic) db_models.CompanyProfile {
	return db_models.CompanyProfile{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		UserID:      userID,
		CompanyName: "Acme Robotics",
		Industry:    "Robotics",
		CompanySize: db_models.CompanySizeStartup,
		IsActive:    active,
		Topics:      topics,
	}
}
