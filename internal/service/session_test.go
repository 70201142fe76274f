package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
	"github.com/aliskhannn/lexicon-bot/internal/repository"
	"github.com/aliskhannn/lexicon-bot/internal/storage"
)

// blockingVocabulary holds Load until release is closed.
type blockingVocabulary struct {
	*repository.VocabularyRepository
	release chan struct{}
}

func (b *blockingVocabulary) Load(ctx context.Context) []entities.Entry {
	<-b.release
	return b.VocabularyRepository.Load(ctx)
}

func TestSessionController_Loading(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	store := storage.NewMemoryStore()
	sampler := newTestSampler()

	vocab := &blockingVocabulary{
		VocabularyRepository: repository.NewVocabularyRepository(store, logger),
		release:              make(chan struct{}),
	}
	explore := NewExploreService(repository.NewCatalogFromEntries(nil), repository.NewHiddenWordRepository(store, logger), logger)
	c := NewSessionController(vocab, explore, NewQuizService(sampler), sampler, logger)

	c.Start(ctx)
	assert.True(t, c.Snapshot().Loading)

	_, _, err := c.Shuffle()
	assert.ErrorIs(t, err, ErrLoading)
	_, err = c.StartStudy()
	assert.ErrorIs(t, err, ErrLoading)
	_, err = c.StartExplore(ctx)
	assert.ErrorIs(t, err, ErrLoading)
	assert.ErrorIs(t, c.AddWord(ctx, entry("a")), ErrLoading)
	assert.ErrorIs(t, c.DeleteWord(ctx, "a"), ErrLoading)
	_, _, err = c.DeleteCurrent(ctx)
	assert.ErrorIs(t, err, ErrLoading)

	close(vocab.release)
	<-c.Ready()

	state := c.Snapshot()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Words)
	assert.Nil(t, state.Current)
}

func TestSessionController_LoadPicksCurrent(t *testing.T) {
	env := newTestEnv(t, nil, entries("a", "b", "c"))

	state := env.controller.Snapshot()
	assert.Equal(t, []string{"a", "b", "c"}, wordsOf(state.Words))
	require.NotNil(t, state.Current)
	assert.Contains(t, []string{"a", "b", "c"}, state.Current.Word)
}

func TestSessionController_Shuffle(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		env := newTestEnv(t, nil, nil)

		_, ok, err := env.controller.Shuffle()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("picks from the collection", func(t *testing.T) {
		env := newTestEnv(t, nil, entries("a", "b"))

		for range 10 {
			e, ok, err := env.controller.Shuffle()
			require.NoError(t, err)
			require.True(t, ok)
			assert.Contains(t, []string{"a", "b"}, e.Word)
			assert.Equal(t, e, *env.controller.Snapshot().Current)
		}
	})
}

func TestSessionController_AddWord(t *testing.T) {
	ctx := context.Background()

	t.Run("added word becomes current and is persisted", func(t *testing.T) {
		env := newTestEnv(t, nil, entries("a"))

		require.NoError(t, env.controller.AddWord(ctx, entry("b")))

		state := env.controller.Snapshot()
		assert.Equal(t, []string{"a", "b"}, wordsOf(state.Words))
		assert.Equal(t, "b", state.Current.Word)

		reloaded := repository.NewVocabularyRepository(env.store, zap.NewNop())
		assert.Equal(t, []string{"a", "b"}, wordsOf(reloaded.Load(ctx)))
	})

	t.Run("duplicate is rejected", func(t *testing.T) {
		env := newTestEnv(t, nil, entries("a"))

		err := env.controller.AddWord(ctx, entry("A"))

		assert.ErrorIs(t, err, ErrWordExists)
		assert.Len(t, env.controller.Snapshot().Words, 1)
	})
}

func TestSessionController_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("absent word is a no-op", func(t *testing.T) {
		env := newTestEnv(t, nil, entries("a", "b"))
		before := env.controller.Snapshot()

		require.NoError(t, env.controller.DeleteWord(ctx, "zzz"))

		assert.Equal(t, before, env.controller.Snapshot())
	})

	t.Run("removes the case-insensitive match", func(t *testing.T) {
		env := newTestEnv(t, nil, entries("a", "b"))

		require.NoError(t, env.controller.DeleteWord(ctx, " B "))

		assert.Equal(t, []string{"a"}, wordsOf(env.controller.Snapshot().Words))
	})

	t.Run("deleting the current word picks another", func(t *testing.T) {
		env := newTestEnv(t, nil, entries("a", "b"))
		require.NoError(t, env.controller.AddWord(ctx, entry("c")))

		deleted, ok, err := env.controller.DeleteCurrent(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "c", deleted.Word)

		state := env.controller.Snapshot()
		assert.Equal(t, []string{"a", "b"}, wordsOf(state.Words))
		require.NotNil(t, state.Current)
		assert.NotEqual(t, "c", state.Current.Word)
	})

	t.Run("deleting the last word clears current", func(t *testing.T) {
		env := newTestEnv(t, nil, entries("a"))

		_, ok, err := env.controller.DeleteCurrent(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		state := env.controller.Snapshot()
		assert.Empty(t, state.Words)
		assert.Nil(t, state.Current)

		_, ok, err = env.controller.DeleteCurrent(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSessionController_StartStudy(t *testing.T) {
	env := newTestEnv(t, nil, entries("a", "b", "c"))

	_, err := env.controller.StartStudy()
	assert.ErrorIs(t, err, ErrInsufficientWords)

	require.NoError(t, env.controller.AddWord(context.Background(), entry("d")))

	session, err := env.controller.StartStudy()
	require.NoError(t, err)
	assert.Equal(t, 4, session.Total())
}

func TestSessionController_Subscribe(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil, nil)

	var (
		mu     sync.Mutex
		states []State
	)
	unsubscribe := env.controller.Subscribe(func(s State) {
		mu.Lock()
		states = append(states, s)
		mu.Unlock()
	})

	require.NoError(t, env.controller.AddWord(ctx, entry("a")))
	require.NoError(t, env.controller.DeleteWord(ctx, "a"))

	unsubscribe()
	require.NoError(t, env.controller.AddWord(ctx, entry("b")))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, states, 2)
	assert.Equal(t, []string{"a"}, wordsOf(states[0].Words))
	assert.Empty(t, states[1].Words)
}
