package repository

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
	"github.com/aliskhannn/lexicon-bot/internal/storage"
)

// HiddenWordRepository stores the words the user dismissed while exploring.
// Words are lowercased before they are stored or looked up. The set only grows.
type HiddenWordRepository struct {
	store  storage.KVStore
	logger *zap.Logger
}

// NewHiddenWordRepository creates a new HiddenWordRepository.
func NewHiddenWordRepository(store storage.KVStore, logger *zap.Logger) *HiddenWordRepository {
	return &HiddenWordRepository{
		store:  store,
		logger: logger,
	}
}

// Load returns the hidden words as a set. Missing or corrupt data yields an empty set.
func (r *HiddenWordRepository) Load(ctx context.Context) map[string]struct{} {
	return lo.Keyify(r.list(ctx))
}

// Contains reports whether the word is hidden.
func (r *HiddenWordRepository) Contains(ctx context.Context, word string) bool {
	return slices.Contains(r.list(ctx), entities.NormalizeWord(word))
}

// Add hides a word. Adding a word twice stores it once.
func (r *HiddenWordRepository) Add(ctx context.Context, word string) {
	key := entities.NormalizeWord(word)
	if key == "" {
		return
	}

	words := r.list(ctx)
	if slices.Contains(words, key) {
		return
	}
	words = append(words, key)

	data, err := json.Marshal(words)
	if err != nil {
		r.logger.Error("failed to encode hidden words", zap.Error(err))
		return
	}

	if err := r.store.Set(ctx, storage.KeyHiddenWords, data); err != nil {
		r.logger.Error("failed to save hidden words",
			zap.String("word", key),
			zap.Error(err),
		)
	}
}

func (r *HiddenWordRepository) list(ctx context.Context) []string {
	data, err := r.store.Get(ctx, storage.KeyHiddenWords)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.logger.Error("failed to read hidden words", zap.Error(err))
		}
		return nil
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		r.logger.Warn("failed to decode hidden words, treating as empty", zap.Error(err))
		return nil
	}

	return lo.Map(words, func(w string, _ int) string {
		return entities.NormalizeWord(w)
	})
}
