package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
	"github.com/aliskhannn/lexicon-bot/internal/service"
	"github.com/aliskhannn/lexicon-bot/internal/storage"
)

// Bot is the part of the Telegram Bot API the handler relies on.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type SessionController interface {
	Snapshot() service.State
	Shuffle() (entities.Entry, bool, error)
	StartStudy() (*entities.StudySession, error)
	StartExplore(ctx context.Context) (*entities.ExploreSession, error)
	Skip(session *entities.ExploreSession)
	Adopt(ctx context.Context, session *entities.ExploreSession) (entities.Entry, error)
	Hide(ctx context.Context, session *entities.ExploreSession) (entities.Entry, error)
	AddWord(ctx context.Context, e entities.Entry) error
	DeleteWord(ctx context.Context, word string) error
	DeleteCurrent(ctx context.Context) (entities.Entry, bool, error)
}

type SessionStorage interface {
	StoreStudy(chatID int64, session *entities.StudySession)
	Study(chatID int64, id string) (*entities.StudySession, bool)
	DeleteStudy(chatID int64)
	StoreExplore(chatID int64, session *entities.ExploreSession)
	Explore(chatID int64, id string) (*entities.ExploreSession, bool)
	DeleteExplore(chatID int64)
}

type MessageStorage interface {
	UpsertAndGetPrev(chatID int64, messageID int) (prev storage.WidgetMessage, hadPrev bool)
}
