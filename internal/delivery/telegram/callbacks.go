package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexicon-bot/internal/service"
)

var errStaleSession = errors.New("stale session")

// callbackResult is the screen a callback switches the message to. An
// empty text leaves the message untouched. notice is shown as a toast.
type callbackResult struct {
	text   string
	kb     *tgbotapi.InlineKeyboardMarkup
	notice string
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	var (
		res callbackResult
		err error
	)

	switch data.Action {
	case actionWord:
		res, err = h.handleWordCallback(ctx, chatID, data)
	case actionStudy:
		res, err = h.handleStudyCallback(chatID, data)
	case actionExplore:
		res, err = h.handleExploreCallback(ctx, chatID, data)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
	}

	notice := res.notice
	if err != nil {
		text, expected := userMessage(err)
		if !expected {
			h.logger.Error("callback error",
				zap.Int64("chat_id", chatID),
				zap.String("data", cb.Data),
				zap.Error(err),
			)
		}
		notice = text
	} else if res.text != "" {
		_ = h.send(newEdit(chatID, cb.Message.MessageID, res.text, res.kb))
	}

	// Remove the user's "clock".
	if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, notice)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

func (h *Handler) handleWordCallback(ctx context.Context, chatID int64, data callbackData) (callbackResult, error) {
	switch data.param(0) {
	case wordShuffle:
		if _, _, err := h.controller.Shuffle(); err != nil {
			return callbackResult{}, err
		}
		return wordCardResult(h.controller.Snapshot(), ""), nil

	case wordDelete:
		_, ok, err := h.controller.DeleteCurrent(ctx)
		if err != nil {
			return callbackResult{}, err
		}
		notice := ""
		if ok {
			notice = msgWordDeleted
		}
		return wordCardResult(h.controller.Snapshot(), notice), nil

	case wordStudy:
		session, err := h.controller.StartStudy()
		if err != nil {
			return callbackResult{}, err
		}
		h.sessions.StoreStudy(chatID, session)

		text, kb := renderQuestion(session)
		return callbackResult{text: text, kb: &kb}, nil

	case wordExplore:
		session, err := h.controller.StartExplore(ctx)
		if err != nil {
			return callbackResult{}, err
		}
		if !session.Exhausted() {
			h.sessions.StoreExplore(chatID, session)
		}

		text, kb := renderExplore(session)
		return callbackResult{text: text, kb: kb}, nil

	default:
		h.logger.Warn("unknown word callback", zap.String("data", data.Raw))
		return callbackResult{}, nil
	}
}

func (h *Handler) handleStudyCallback(chatID int64, data callbackData) (callbackResult, error) {
	session, ok := h.sessions.Study(chatID, data.param(1))
	if !ok {
		return callbackResult{}, errStaleSession
	}

	index, ok := data.intParam(2)
	if !ok || index != session.Index() {
		return callbackResult{}, errStaleSession
	}

	switch data.param(0) {
	case studyAnswer:
		option, ok := data.intParam(3)
		if !ok {
			return callbackResult{}, errStaleSession
		}

		correct, err := session.AnswerOption(option)
		if err != nil {
			return callbackResult{}, err
		}

		text, kb := renderQuestion(session)
		notice := "❌ Wrong"
		if correct {
			notice = "✅ Correct"
		}
		return callbackResult{text: text, kb: &kb, notice: notice}, nil

	case studyNext:
		if session.Advance() {
			text, kb := renderQuestion(session)
			return callbackResult{text: text, kb: &kb}, nil
		}

		h.sessions.DeleteStudy(chatID)
		text, kb := renderStudyResult(session)
		return callbackResult{text: text, kb: &kb}, nil

	default:
		h.logger.Warn("unknown study callback", zap.String("data", data.Raw))
		return callbackResult{}, nil
	}
}

func (h *Handler) handleExploreCallback(ctx context.Context, chatID int64, data callbackData) (callbackResult, error) {
	session, ok := h.sessions.Explore(chatID, data.param(1))
	if !ok {
		return callbackResult{}, errStaleSession
	}

	var notice string

	switch data.param(0) {
	case exploreSkip:
		h.controller.Skip(session)

	case exploreHide:
		if _, err := h.controller.Hide(ctx, session); err != nil {
			return callbackResult{}, err
		}
		notice = msgWordHidden

	case exploreLearn:
		if _, err := h.controller.Adopt(ctx, session); err != nil {
			return callbackResult{}, err
		}
		notice = msgWordAdded

	default:
		h.logger.Warn("unknown explore callback", zap.String("data", data.Raw))
		return callbackResult{}, nil
	}

	if session.Exhausted() {
		h.sessions.DeleteExplore(chatID)
	}

	text, kb := renderExplore(session)
	return callbackResult{text: text, kb: kb, notice: notice}, nil
}

func wordCardResult(st service.State, notice string) callbackResult {
	text, kb := renderWordCard(st)
	return callbackResult{text: text, kb: &kb, notice: notice}
}
