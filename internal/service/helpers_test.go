package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
	"github.com/aliskhannn/lexicon-bot/internal/repository"
	"github.com/aliskhannn/lexicon-bot/internal/storage"
)

func entry(word string) entities.Entry {
	return entities.Entry{
		Word:       word,
		Function:   entities.FunctionNoun,
		Definition: "definition of " + word,
		Example:    "an example with " + word,
	}
}

func entries(words ...string) []entities.Entry {
	out := make([]entities.Entry, 0, len(words))
	for _, w := range words {
		out = append(out, entry(w))
	}
	return out
}

func wordsOf(list []entities.Entry) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.Word)
	}
	return out
}

func newTestSampler() *Sampler {
	return NewSampler(rand.NewSource(42))
}

type testEnv struct {
	store      *storage.MemoryStore
	vocab      *repository.VocabularyRepository
	hidden     *repository.HiddenWordRepository
	controller *SessionController
}

// newTestEnv builds a loaded controller over an in-memory store seeded with
// the given collection and hidden words.
func newTestEnv(t *testing.T, catalog []entities.Entry, collection []entities.Entry, hidden ...string) *testEnv {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()

	store := storage.NewMemoryStore()
	seed := repository.NewVocabularyRepository(store, logger)
	for _, e := range collection {
		seed.Add(ctx, e)
	}

	hiddenRepo := repository.NewHiddenWordRepository(store, logger)
	for _, w := range hidden {
		hiddenRepo.Add(ctx, w)
	}

	sampler := newTestSampler()
	vocab := repository.NewVocabularyRepository(store, logger)
	explore := NewExploreService(repository.NewCatalogFromEntries(catalog), hiddenRepo, logger)
	controller := NewSessionController(vocab, explore, NewQuizService(sampler), sampler, logger)

	controller.Start(ctx)
	<-controller.Ready()

	require.False(t, controller.Snapshot().Loading)

	return &testEnv{
		store:      store,
		vocab:      vocab,
		hidden:     hiddenRepo,
		controller: controller,
	}
}
