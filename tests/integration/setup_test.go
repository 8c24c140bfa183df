package integration

import (
	"context"
	"os"
	"testing"

	"github.com/emryn/chronicle/internal/infrastructure/config"
	embedder "github.com/emryn/chronicle/internal/infrastructure/embedder/openai"
	"github.com/emryn/chronicle/internal/infrastructure/vectordb/qdrant"
)

const (
	testQdrantHost = "localhost"
	testQdrantPort = 6334
	testCollection = "chronicle_integration_test"
	testWorld      = "integration"
)

var testRepo *qdrant.Repository

func TestMain(m *testing.M) {
	// Skip if INTEGRATION_TEST is not set
	if os.Getenv("INTEGRATION_TEST") != "1" {
		os.Exit(0)
	}

	cfg := config.QdrantConfig{
		Host:       testQdrantHost,
		Port:       testQdrantPort,
		Collection: testCollection,
	}

	var err error
	testRepo, err = qdrant.NewRepository(cfg)
	if err != nil {
		panic("failed to create repository: " + err.Error())
	}

	// Ensure clean collection
	ctx := context.Background()
	_ = testRepo.DeleteCollection(ctx) // Ignore error if collection doesn't exist
	if err := testRepo.EnsureCollection(ctx, uint64(embedder.VectorSize)); err != nil {
		panic("failed to create collection: " + err.Error())
	}

	code := m.Run()

	_ = testRepo.DeleteCollection(ctx)
	testRepo.Close()

	os.Exit(code)
}
