package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
)

// WidgetNotifier posts the widget word to the owner chat. Each push
// replaces the previous widget message so the chat keeps a single one.
type WidgetNotifier struct {
	bot      Bot
	chatID   int64
	messages MessageStorage
	logger   *zap.Logger
}

// NewWidgetNotifier creates a new WidgetNotifier.
func NewWidgetNotifier(bot Bot, chatID int64, messages MessageStorage, logger *zap.Logger) *WidgetNotifier {
	return &WidgetNotifier{
		bot:      bot,
		chatID:   chatID,
		messages: messages,
		logger:   logger,
	}
}

// SendWidgetWord sends e and deletes the widget message it replaces.
func (n *WidgetNotifier) SendWidgetWord(_ context.Context, e entities.Entry) error {
	msg := newMessage(n.chatID, renderWidget(e))
	msg.DisableNotification = true

	sent, err := n.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send widget message: %w", err)
	}

	prev, hadPrev := n.messages.UpsertAndGetPrev(n.chatID, sent.MessageID)
	if !hadPrev {
		return nil
	}

	if _, err := n.bot.Request(tgbotapi.NewDeleteMessage(n.chatID, prev.MessageID)); err != nil {
		n.logger.Warn("failed to delete previous widget message",
			zap.Int("message_id", prev.MessageID),
			zap.Error(err),
		)
	}

	return nil
}
