package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
	"github.com/aliskhannn/lexicon-bot/internal/storage"
)

// VocabularyRepository owns the user's word collection. The whole collection
// is written under storage.KeyUserWords after every mutation.
//
// It is not safe for concurrent use; callers serialize access.
type VocabularyRepository struct {
	store   storage.KVStore
	logger  *zap.Logger
	entries []entities.Entry
}

// NewVocabularyRepository creates a repository with an empty in-memory
// collection. Call Load to read the persisted one.
func NewVocabularyRepository(store storage.KVStore, logger *zap.Logger) *VocabularyRepository {
	return &VocabularyRepository{
		store:  store,
		logger: logger,
	}
}

// Load reads the persisted collection. A missing key yields an empty
// collection; corrupt data is logged and also yields an empty collection.
func (r *VocabularyRepository) Load(ctx context.Context) []entities.Entry {
	r.entries = nil

	data, err := r.store.Get(ctx, storage.KeyUserWords)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.logger.Error("failed to read user words", zap.Error(err))
		}
		return r.List()
	}

	var entries []entities.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		r.logger.Warn("failed to decode user words, starting empty", zap.Error(err))
		return r.List()
	}

	r.entries = entries
	return r.List()
}

// Add appends an entry and persists the collection. Duplicate words are not
// checked here.
func (r *VocabularyRepository) Add(ctx context.Context, e entities.Entry) []entities.Entry {
	r.entries = append(r.entries, e)
	r.Save(ctx)
	return r.List()
}

// Remove deletes the first entry whose word matches case-insensitively.
// Removing an absent word is a no-op.
func (r *VocabularyRepository) Remove(ctx context.Context, word string) []entities.Entry {
	key := entities.NormalizeWord(word)

	_, idx, found := lo.FindIndexOf(r.entries, func(e entities.Entry) bool {
		return e.Key() == key
	})
	if !found {
		return r.List()
	}

	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	r.Save(ctx)
	return r.List()
}

// Save writes the full collection. Failures are logged, not returned.
func (r *VocabularyRepository) Save(ctx context.Context) {
	entries := r.entries
	if entries == nil {
		entries = []entities.Entry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		r.logger.Error("failed to encode user words", zap.Error(err))
		return
	}

	if err := r.store.Set(ctx, storage.KeyUserWords, data); err != nil {
		r.logger.Error("failed to save user words",
			zap.Int("count", len(entries)),
			zap.Error(err),
		)
	}
}

// List returns a copy of the collection in insertion order.
func (r *VocabularyRepository) List() []entities.Entry {
	return append([]entities.Entry(nil), r.entries...)
}

// Contains reports whether the collection holds the word, ignoring case.
func (r *VocabularyRepository) Contains(word string) bool {
	key := entities.NormalizeWord(word)
	return lo.ContainsBy(r.entries, func(e entities.Entry) bool {
		return e.Key() == key
	})
}
