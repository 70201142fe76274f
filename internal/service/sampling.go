package service

import (
	"math/rand"
	"sync"

	"github.com/samber/lo"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
)

// Sampler makes every random choice of the application. It wraps a
// seedable source so tests can assert deterministic outcomes.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler creates a sampler over src.
func NewSampler(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// PickRandom returns a uniformly random entry. It returns false for an empty collection.
func (s *Sampler) PickRandom(entries []entities.Entry) (entities.Entry, bool) {
	if len(entries) == 0 {
		return entities.Entry{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return entries[s.rng.Intn(len(entries))], true
}

// PickDistractors returns up to count entries from pool in random order,
// leaving out every entry with the same word as exclude. When fewer
// entries are eligible, all of them are returned.
func (s *Sampler) PickDistractors(pool []entities.Entry, exclude entities.Entry, count int) []entities.Entry {
	if count <= 0 {
		return nil
	}

	key := exclude.Key()
	candidates := lo.Filter(pool, func(e entities.Entry, _ int) bool {
		return e.Key() != key
	})

	s.mu.Lock()
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	s.mu.Unlock()

	if len(candidates) <= count {
		return candidates
	}
	return candidates[:count]
}

// ShuffleStrings returns a shuffled copy of in.
func (s *Sampler) ShuffleStrings(in []string) []string {
	out := append([]string(nil), in...)
	shuffle(s, out)
	return out
}

// ShuffleQuestions returns a shuffled copy of in.
func (s *Sampler) ShuffleQuestions(in []entities.Question) []entities.Question {
	out := append([]entities.Question(nil), in...)
	shuffle(s, out)
	return out
}

func shuffle[T any](s *Sampler, items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
