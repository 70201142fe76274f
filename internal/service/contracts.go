package service

import (
	"context"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
)

type VocabularyRepository interface {
	Load(ctx context.Context) []entities.Entry
	Add(ctx context.Context, e entities.Entry) []entities.Entry
	Remove(ctx context.Context, word string) []entities.Entry
	List() []entities.Entry
	Contains(word string) bool
}

type HiddenWordRepository interface {
	Load(ctx context.Context) map[string]struct{}
	Add(ctx context.Context, word string)
}

type CatalogRepository interface {
	All() []entities.Entry
}

// WidgetNotifier delivers the widget word to its surface.
type WidgetNotifier interface {
	SendWidgetWord(ctx context.Context, e entities.Entry) error
}
