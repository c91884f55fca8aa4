package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

const (
	ProfileTypeJournalist = "journalist"
	ProfileTypeCompany    = "company"
)

// ProfileEmbedding holds the single active embedding for a profile.
// Replaced in place on every profile create or update, never versioned.
// SourceText keeps the exact text the vector was derived from so an
// embedding can be inspected or regenerated later.
type ProfileEmbedding struct {
	BaseModel
	ProfileType string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_profile_embedding,priority:1"`
	ProfileID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_profile_embedding,priority:2"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	SourceText  string          `gorm:"type:text;not null"`
	TopicSlugs  pq.StringArray  `gorm:"type:text[]"` // taxonomy state at generation time, for debugging

}
