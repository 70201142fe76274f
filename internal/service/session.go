package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
)

var (
	ErrLoading    = errors.New("collection is still loading")
	ErrWordExists = errors.New("word is already in the collection")
)

// State is a snapshot of what the user currently sees.
type State struct {
	Current *entities.Entry  // entry on display, nil when the collection is empty
	Words   []entities.Entry // the collection in insertion order
	Loading bool             // true until the initial load has finished
}

// SessionController is the single entry point for delivery code. It
// coordinates the collection, explore and study flows and publishes a
// State after every change.
type SessionController struct {
	vocab   VocabularyRepository
	explore *ExploreService
	quiz    *QuizService
	sampler *Sampler
	logger  *zap.Logger

	mu        sync.Mutex
	loading   bool
	current   *entities.Entry
	words     []entities.Entry
	listeners map[int]func(State)
	nextID    int

	startOnce sync.Once
	ready     chan struct{}
}

// NewSessionController creates a controller in the loading state.
func NewSessionController(
	vocab VocabularyRepository,
	explore *ExploreService,
	quiz *QuizService,
	sampler *Sampler,
	logger *zap.Logger,
) *SessionController {
	return &SessionController{
		vocab:     vocab,
		explore:   explore,
		quiz:      quiz,
		sampler:   sampler,
		logger:    logger,
		loading:   true,
		listeners: make(map[int]func(State)),
		ready:     make(chan struct{}),
	}
}

// Start loads the collection in the background. Until the load completes
// every operation returns ErrLoading. Calling Start more than once has no effect.
func (c *SessionController) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		go c.load(ctx)
	})
}

// Ready is closed once the initial load has finished.
func (c *SessionController) Ready() <-chan struct{} {
	return c.ready
}

func (c *SessionController) load(ctx context.Context) {
	words := c.vocab.Load(ctx)

	c.mu.Lock()
	c.words = words
	c.current = c.pickLocked()
	c.loading = false
	c.mu.Unlock()

	c.logger.Info("collection loaded", zap.Int("words", len(words)))

	close(c.ready)
	c.publish()
}

// Snapshot returns the current state.
func (c *SessionController) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Subscribe registers fn to be called with the new state after every
// change. The returned function removes the subscription.
func (c *SessionController) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Shuffle puts a random word of the collection on display. It returns
// false when the collection is empty.
func (c *SessionController) Shuffle() (entities.Entry, bool, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return entities.Entry{}, false, ErrLoading
	}
	if len(c.words) == 0 {
		c.mu.Unlock()
		return entities.Entry{}, false, nil
	}

	c.current = c.pickLocked()
	e := *c.current
	c.mu.Unlock()

	c.publish()
	return e, true, nil
}

// StartStudy builds a fresh study session from the collection.
func (c *SessionController) StartStudy() (*entities.StudySession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loading {
		return nil, ErrLoading
	}
	return c.quiz.GenerateQuiz(c.words)
}

// StartExplore builds a fresh explore session against the current
// collection and hidden words.
func (c *SessionController) StartExplore(ctx context.Context) (*entities.ExploreSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loading {
		return nil, ErrLoading
	}
	return c.explore.Start(ctx, c.words), nil
}

// Skip moves an explore session to its next candidate.
func (c *SessionController) Skip(session *entities.ExploreSession) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.explore.Skip(session)
}

// Adopt adds the presented explore candidate to the collection.
func (c *SessionController) Adopt(ctx context.Context, session *entities.ExploreSession) (entities.Entry, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return entities.Entry{}, ErrLoading
	}

	e, err := c.explore.Adopt(session, func(e entities.Entry) error {
		return c.addLocked(ctx, e)
	})
	c.mu.Unlock()
	if err != nil {
		return entities.Entry{}, err
	}

	c.publish()
	return e, nil
}

// Hide dismisses the presented explore candidate for good.
func (c *SessionController) Hide(ctx context.Context, session *entities.ExploreSession) (entities.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loading {
		return entities.Entry{}, ErrLoading
	}
	return c.explore.Hide(ctx, session)
}

// AddWord adds an entry and puts it on display. A word already in the
// collection is rejected with ErrWordExists.
func (c *SessionController) AddWord(ctx context.Context, e entities.Entry) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrLoading
	}

	err := c.addLocked(ctx, e)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	c.publish()
	return nil
}

// DeleteWord removes a word from the collection. Deleting an absent word
// is a no-op. When the displayed word is deleted another one is picked.
func (c *SessionController) DeleteWord(ctx context.Context, word string) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrLoading
	}

	key := entities.NormalizeWord(word)
	if !c.vocab.Contains(key) {
		c.mu.Unlock()
		return nil
	}

	c.words = c.vocab.Remove(ctx, key)
	if c.current == nil || c.current.Key() == key {
		c.current = c.pickLocked()
	}
	c.mu.Unlock()

	c.logger.Info("word deleted", zap.String("word", key))

	c.publish()
	return nil
}

// DeleteCurrent removes the displayed word and returns it.
func (c *SessionController) DeleteCurrent(ctx context.Context) (entities.Entry, bool, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return entities.Entry{}, false, ErrLoading
	}
	if c.current == nil {
		c.mu.Unlock()
		return entities.Entry{}, false, nil
	}
	e := *c.current
	c.mu.Unlock()

	if err := c.DeleteWord(ctx, e.Word); err != nil {
		return entities.Entry{}, false, err
	}
	return e, true, nil
}

func (c *SessionController) addLocked(ctx context.Context, e entities.Entry) error {
	if c.vocab.Contains(e.Word) {
		return ErrWordExists
	}

	c.words = c.vocab.Add(ctx, e)
	c.current = &e

	c.logger.Info("word added",
		zap.String("word", e.Key()),
		zap.Int("total", len(c.words)),
	)

	return nil
}

func (c *SessionController) pickLocked() *entities.Entry {
	e, ok := c.sampler.PickRandom(c.words)
	if !ok {
		return nil
	}
	return &e
}

func (c *SessionController) snapshotLocked() State {
	st := State{
		Words:   append([]entities.Entry(nil), c.words...),
		Loading: c.loading,
	}
	if c.current != nil {
		cur := *c.current
		st.Current = &cur
	}
	return st
}

// publish notifies listeners outside the lock so they may call back into the controller.
func (c *SessionController) publish() {
	c.mu.Lock()
	st := c.snapshotLocked()
	listeners := make([]func(State), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(st)
	}
}
