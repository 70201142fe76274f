package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
	"github.com/aliskhannn/lexicon-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			text, expected := userMessage(err)
			if !expected {
				h.logger.Error("handle error",
					zap.Int64("chat_id", chatID),
					zap.Error(err),
				)
			}
			h.sendError(chatID, text)
			return nil
		}
		return nil
	}
}

// allowed reports whether the bot talks to the chat. Only the owner chat is served.
func (h *Handler) allowed(chatID int64) bool {
	if chatID == h.ownerID {
		return true
	}

	h.logger.Debug("ignoring update from foreign chat", zap.Int64("chat_id", chatID))
	return false
}

// userMessage maps an error to the text shown to the user. expected is
// false for errors the user cannot act on.
func userMessage(err error) (text string, expected bool) {
	switch {
	case errors.Is(err, service.ErrLoading):
		return msgLoading, true
	case errors.Is(err, service.ErrWordExists):
		return msgWordExists, true
	case errors.Is(err, service.ErrInsufficientWords):
		return msgNeedMoreWords, true
	case errors.Is(err, errAddUsage):
		return msgAddUsage, true
	case errors.Is(err, entities.ErrEmptyWord):
		return msgEmptyWord, true
	case errors.Is(err, entities.ErrEmptyDefinition):
		return msgEmptyDefinition, true
	case errors.Is(err, entities.ErrEmptyExample):
		return msgEmptyExample, true
	case errors.Is(err, entities.ErrUnknownFunction):
		return msgUnknownFunction, true
	case errors.Is(err, entities.ErrExploreExhausted):
		return msgExploreDone, true
	case errors.Is(err, entities.ErrAlreadyAnswered):
		return msgAlreadyAnswered, true
	case errors.Is(err, entities.ErrSessionComplete), errors.Is(err, errStaleSession):
		return msgSessionExpired, true
	default:
		return msgInternalError, false
	}
}
