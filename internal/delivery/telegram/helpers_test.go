package telegram

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
	"github.com/aliskhannn/lexicon-bot/internal/repository"
	"github.com/aliskhannn/lexicon-bot/internal/service"
	"github.com/aliskhannn/lexicon-bot/internal/storage"
)

const ownerID = int64(1001)

type fakeBot struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	nextID   int
	updates  chan tgbotapi.Update
}

func newFakeBot() *fakeBot {
	return &fakeBot{updates: make(chan tgbotapi.Update)}
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.sent = append(b.sent, c)
	return tgbotapi.Message{MessageID: b.nextID}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) StopReceivingUpdates() {}

// last returns the text and inline keyboard of the last sent message or edit.
func (b *fakeBot) last(t *testing.T) (string, *tgbotapi.InlineKeyboardMarkup) {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	require.NotEmpty(t, b.sent)
	switch c := b.sent[len(b.sent)-1].(type) {
	case tgbotapi.MessageConfig:
		if kb, ok := c.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup); ok {
			return c.Text, &kb
		}
		return c.Text, nil
	case tgbotapi.EditMessageTextConfig:
		return c.Text, c.ReplyMarkup
	default:
		t.Fatalf("unexpected chattable %T", c)
		return "", nil
	}
}

// lastNotice returns the text of the last callback answer.
func (b *fakeBot) lastNotice(t *testing.T) string {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := len(b.requests) - 1; i >= 0; i-- {
		if cb, ok := b.requests[i].(tgbotapi.CallbackConfig); ok {
			return cb.Text
		}
	}
	t.Fatal("no callback answered")
	return ""
}

func (b *fakeBot) sentCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sent)
}

type testEnv struct {
	bot        *fakeBot
	handler    *Handler
	controller *service.SessionController
	sessions   *storage.SessionStorage
	hidden     *repository.HiddenWordRepository
}

func newTestEnv(t *testing.T, catalog []entities.Entry, collection ...entities.Entry) *testEnv {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()

	store := storage.NewMemoryStore()
	seed := repository.NewVocabularyRepository(store, logger)
	for _, e := range collection {
		seed.Add(ctx, e)
	}

	sampler := service.NewSampler(rand.NewSource(7))
	hidden := repository.NewHiddenWordRepository(store, logger)
	explore := service.NewExploreService(repository.NewCatalogFromEntries(catalog), hidden, logger)
	controller := service.NewSessionController(
		repository.NewVocabularyRepository(store, logger),
		explore,
		service.NewQuizService(sampler),
		sampler,
		logger,
	)
	controller.Start(ctx)
	<-controller.Ready()

	bot := newFakeBot()
	sessions := storage.NewSessionStorage()

	return &testEnv{
		bot:        bot,
		handler:    NewHandler(bot, logger, ownerID, controller, sessions),
		controller: controller,
		sessions:   sessions,
		hidden:     hidden,
	}
}

func (env *testEnv) command(text string) {
	env.handler.handleUpdate(context.Background(), commandUpdate(ownerID, text))
}

func (env *testEnv) press(data string) {
	env.handler.handleUpdate(context.Background(), callbackUpdate(ownerID, 1, data))
}

func commandUpdate(chatID int64, text string) tgbotapi.Update {
	cmd := strings.SplitN(text, " ", 2)[0]
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat:     &tgbotapi.Chat{ID: chatID},
			Text:     text,
			Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}},
		},
	}
}

func callbackUpdate(chatID int64, messageID int, data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb",
			Data: data,
			Message: &tgbotapi.Message{
				MessageID: messageID,
				Chat:      &tgbotapi.Chat{ID: chatID},
			},
		},
	}
}

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

// buttons flattens the callback data of a keyboard.
func buttons(kb *tgbotapi.InlineKeyboardMarkup) []string {
	if kb == nil {
		return nil
	}
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			if b.CallbackData != nil {
				out = append(out, *b.CallbackData)
			}
		}
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
