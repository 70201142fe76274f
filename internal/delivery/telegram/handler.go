package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot        Bot
	logger     *zap.Logger
	ownerID    int64
	controller SessionController
	sessions   SessionStorage
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	ownerID int64,
	controller SessionController,
	sessions SessionStorage,
) *Handler {
	return &Handler{
		bot:        bot,
		logger:     logger,
		ownerID:    ownerID,
		controller: controller,
		sessions:   sessions,
	}
}

// Run processes updates until ctx is done. Updates are handled one at a
// time, so session state is never touched concurrently from this side.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		cb := update.CallbackQuery
		if cb.Message == nil || !h.allowed(cb.Message.Chat.ID) {
			return
		}

		h.logger.Debug("callback received",
			zap.Int64("chat_id", cb.Message.Chat.ID),
			zap.String("data", cb.Data),
		)
		h.handleCallback(ctx, cb)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID
	if !h.allowed(chatID) {
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if !update.Message.IsCommand() {
		_ = h.send(newMessage(chatID, md(msgUnknownCommand)))
		return
	}

	args := update.Message.CommandArguments()

	switch update.Message.Command() {
	case "start":
		_ = h.withErrorHandling(h.startHandler())(ctx, chatID)

	case "help":
		_ = h.send(newMessage(chatID, md(msgHelp)))

	case "word":
		_ = h.withErrorHandling(h.wordHandler())(ctx, chatID)

	case "study":
		_ = h.withErrorHandling(h.studyHandler())(ctx, chatID)

	case "explore":
		_ = h.withErrorHandling(h.exploreHandler())(ctx, chatID)

	case "add":
		_ = h.withErrorHandling(h.addHandler(args))(ctx, chatID)

	case "delete":
		_ = h.withErrorHandling(h.deleteHandler(args))(ctx, chatID)

	case "list":
		_ = h.withErrorHandling(h.listHandler())(ctx, chatID)

	default:
		_ = h.send(newMessage(chatID, md(msgUnknownCommand)))
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newMessage(chatID, md(text)))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
