package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
)

// ExploreService drives explore sessions over the catalog.
type ExploreService struct {
	catalog CatalogRepository
	hidden  HiddenWordRepository
	logger  *zap.Logger
}

// NewExploreService creates a new ExploreService.
func NewExploreService(catalog CatalogRepository, hidden HiddenWordRepository, logger *zap.Logger) *ExploreService {
	return &ExploreService{
		catalog: catalog,
		hidden:  hidden,
		logger:  logger,
	}
}

// Start creates a session over the catalog words that are neither in the
// collection nor hidden, in catalog order. The hidden set is re-read on
// every call; the candidates are not refreshed afterwards.
func (s *ExploreService) Start(ctx context.Context, collection []entities.Entry) *entities.ExploreSession {
	owned := lo.SliceToMap(collection, func(e entities.Entry) (string, struct{}) {
		return e.Key(), struct{}{}
	})
	hidden := s.hidden.Load(ctx)

	candidates := lo.Filter(s.catalog.All(), func(e entities.Entry, _ int) bool {
		key := e.Key()
		_, isOwned := owned[key]
		_, isHidden := hidden[key]
		return !isOwned && !isHidden
	})

	s.logger.Debug("explore session started",
		zap.Int("candidates", len(candidates)),
		zap.Int("owned", len(owned)),
		zap.Int("hidden", len(hidden)),
	)

	return entities.NewExploreSession(uuid.NewString(), candidates)
}

// Skip moves the session to the next candidate.
func (s *ExploreService) Skip(session *entities.ExploreSession) {
	session.Skip()
}

// Adopt hands the presented candidate to adopt and, when it succeeds,
// removes the candidate from the session.
func (s *ExploreService) Adopt(session *entities.ExploreSession, adopt func(entities.Entry) error) (entities.Entry, error) {
	e, ok := session.Current()
	if !ok {
		return entities.Entry{}, entities.ErrExploreExhausted
	}

	if err := adopt(e); err != nil {
		return entities.Entry{}, err
	}

	return session.Take()
}

// Hide records the presented candidate as hidden and removes it from the session.
func (s *ExploreService) Hide(ctx context.Context, session *entities.ExploreSession) (entities.Entry, error) {
	e, err := session.Take()
	if err != nil {
		return entities.Entry{}, err
	}

	s.hidden.Add(ctx, e.Word)
	s.logger.Debug("word hidden", zap.String("word", e.Key()))

	return e, nil
}
