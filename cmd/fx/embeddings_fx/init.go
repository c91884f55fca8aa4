package embeddings_fx

import (
	"os"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pressmatch/internal/embeddings"
	"pressmatch/internal/repositories"
	"pressmatch/internal/services"
)

var Module = fx.Provide(
	provideEmbeddingRepo,
	provideGenerator,
	provideEmbeddingService)

func provideEmbeddingRepo(db *gorm.DB) repositories.EmbeddingRepositoryInterface {
	return repositories.NewEmbeddingRepository(db)
}

// provideGenerator picks the embedding backend. With an OpenAI key the
// API generator runs in front of the deterministic hash generator so
// profile writes never fail on an embeddings outage. Without a key the
// hash generator runs alone.
func provideGenerator(log *logrus.Logger) embeddings.Generator {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Warn("OPENAI_API_KEY not set, using deterministic hash embeddings")
		return embeddings.NewHashGenerator()
	}

	primary := embeddings.NewOpenAIGenerator(apiKey, os.Getenv("OPENAI_EMBEDDING_MODEL"))
	return embeddings.NewFailoverGenerator(primary, embeddings.NewHashGenerator(), log)
}

func provideEmbeddingService(
	embeddingRepo repositories.EmbeddingRepositoryInterface,
	generator embeddings.Generator,
	log *logrus.Logger,
) services.EmbeddingServiceInterface {
	return services.NewEmbeddingService(embeddingRepo, generator, log)
}
