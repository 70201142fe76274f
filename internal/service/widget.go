package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
	"github.com/aliskhannn/lexicon-bot/internal/storage"
)

const (
	DefaultWidgetSchedule = "@every 5m"
	DefaultWidgetInterval = 5 * time.Minute
	widgetTimelineSpan    = 2 * time.Hour
)

// DefaultWidgetEntry is shown when the collection is empty or unreadable.
var DefaultWidgetEntry = entities.Entry{
	Word:       "lexicon",
	Function:   entities.FunctionNoun,
	Definition: "The vocabulary of a person, language, or branch of knowledge.",
	Example:    "Add words to your vocabulary to see them here.",
}

// TimelineItem is a widget entry scheduled for display at a given time.
type TimelineItem struct {
	At    time.Time      `json:"at"`
	Entry entities.Entry `json:"entry"`
}

// WidgetService picks the word shown by the widget surfaces. It only reads
// the persisted collection and never writes.
type WidgetService struct {
	store    storage.KVStore
	sampler  *Sampler
	notifier WidgetNotifier
	schedule string
	interval time.Duration
	logger   *zap.Logger
}

// NewWidgetService creates a new widget service. schedule is a cron spec
// for pushes, interval is the spacing of timeline entries.
func NewWidgetService(
	store storage.KVStore,
	sampler *Sampler,
	schedule string,
	interval time.Duration,
	logger *zap.Logger,
) *WidgetService {
	if schedule == "" {
		schedule = DefaultWidgetSchedule
	}
	if interval <= 0 {
		interval = DefaultWidgetInterval
	}

	return &WidgetService{
		store:    store,
		sampler:  sampler,
		schedule: schedule,
		interval: interval,
		logger:   logger,
	}
}

// SetNotifier sets the notifier (called after the delivery layer is created).
func (s *WidgetService) SetNotifier(notifier WidgetNotifier) {
	s.notifier = notifier
}

// Interval returns the refresh interval of the widget.
func (s *WidgetService) Interval() time.Duration {
	return s.interval
}

// Pick returns a random word of the persisted collection or DefaultWidgetEntry.
func (s *WidgetService) Pick(ctx context.Context) entities.Entry {
	e, ok := s.sampler.PickRandom(s.loadWords(ctx))
	if !ok {
		return DefaultWidgetEntry
	}
	return e
}

// Timeline returns the entries for the next two hours, one per interval, starting at now.
func (s *WidgetService) Timeline(ctx context.Context, now time.Time) []TimelineItem {
	words := s.loadWords(ctx)

	items := make([]TimelineItem, 0, int(widgetTimelineSpan/s.interval))
	for offset := time.Duration(0); offset < widgetTimelineSpan; offset += s.interval {
		e, ok := s.sampler.PickRandom(words)
		if !ok {
			e = DefaultWidgetEntry
		}
		items = append(items, TimelineItem{At: now.Add(offset), Entry: e})
	}

	return items
}

// Start pushes a widget word on every schedule tick until ctx is done.
func (s *WidgetService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.schedule, func() {
		if err := s.Push(ctx); err != nil {
			s.logger.Error("failed to push widget word", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("add widget cron job: %w", err)
	}

	c.Start()
	s.logger.Info("widget scheduler started", zap.String("schedule", s.schedule))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("widget scheduler stopped")

	return nil
}

// Push sends one widget word through the notifier.
func (s *WidgetService) Push(ctx context.Context) error {
	if s.notifier == nil {
		return errors.New("widget notifier not initialized")
	}

	e := s.Pick(ctx)
	if err := s.notifier.SendWidgetWord(ctx, e); err != nil {
		return fmt.Errorf("send widget word: %w", err)
	}

	s.logger.Debug("widget word pushed", zap.String("word", e.Word))
	return nil
}

func (s *WidgetService) loadWords(ctx context.Context) []entities.Entry {
	data, err := s.store.Get(ctx, storage.KeyUserWords)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("widget failed to read user words", zap.Error(err))
		}
		return nil
	}

	var words []entities.Entry
	if err := json.Unmarshal(data, &words); err != nil {
		s.logger.Warn("widget failed to decode user words", zap.Error(err))
		return nil
	}

	return words
}
