package matching

import (
	"github.com/google/uuid"
	"pressmatch/internal/models/db_models"
)

// Candidate is the small capability surface both profile variants expose
// to the matcher. Keeping the rule logic against this interface means one
// implementation covers both match directions.
type Candidate interface {
	ProfileID() uuid.UUID
	DisplayLabel() string
	TopicList() []db_models.Topic
	EligibleForMatching() bool
}

// TopicOverlap returns the topics present in both lists. Intersection is
// by topic id, order-irrelevant.
func TopicOverlap(topicsA, topicsB []db_models.Topic) []db_models.Topic {
	idsA := make(map[uuid.UUID]struct{}, len(topicsA))
	for _, t := range topicsA {
		idsA[t.ID] = struct{}{}
	}

	var overlap []db_models.Topic
	for _, t := range topicsB {
		if _, ok := idsA[t.ID]; ok {
			overlap = append(overlap, t)
		}
	}
	return overlap
}

// IsMatch reports whether two candidates match and with which topics.
// A match requires both sides eligible and at least one shared topic.
func IsMatch(a, b Candidate) (bool, []db_models.Topic) {
	if !a.EligibleForMatching() || !b.EligibleForMatching() {
		return false, nil
	}

	overlap := TopicOverlap(a.TopicList(), b.TopicList())
	if len(overlap) == 0 {
		return false, nil
	}

	return true, overlap
}
