package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
	"github.com/aliskhannn/lexicon-bot/internal/service"
)

var errAddUsage = errors.New("malformed add arguments")

// Commands lists the bot commands shown in the Telegram menu.
var Commands = []tgbotapi.BotCommand{
	{Command: "word", Description: "Show a random word"},
	{Command: "add", Description: "Add a word: word | function | definition | example"},
	{Command: "delete", Description: "Delete a word"},
	{Command: "list", Description: "List your vocabulary"},
	{Command: "explore", Description: "Discover new words"},
	{Command: "study", Description: "Quiz yourself"},
	{Command: "help", Description: "Help"},
}

func (h *Handler) startHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.send(newMessage(chatID, md(msgWelcome))); err != nil {
			return err
		}

		st := h.controller.Snapshot()
		if st.Loading {
			return nil
		}
		return h.sendWordCard(chatID, "", st)
	}
}

func (h *Handler) wordHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if _, _, err := h.controller.Shuffle(); err != nil {
			return err
		}
		return h.sendWordCard(chatID, "", h.controller.Snapshot())
	}
}

func (h *Handler) studyHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.controller.StartStudy()
		if err != nil {
			return err
		}
		h.sessions.StoreStudy(chatID, session)

		text, kb := renderQuestion(session)
		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) exploreHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.controller.StartExplore(ctx)
		if err != nil {
			return err
		}
		if !session.Exhausted() {
			h.sessions.StoreExplore(chatID, session)
		}

		text, kb := renderExplore(session)
		msg := newMessage(chatID, text)
		if kb != nil {
			msg.ReplyMarkup = *kb
		}
		return h.send(msg)
	}
}

func (h *Handler) addHandler(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		e, err := parseAddArgs(args)
		if err != nil {
			return err
		}

		if err := h.controller.AddWord(ctx, e); err != nil {
			return err
		}

		return h.sendWordCard(chatID, md(msgWordAdded), h.controller.Snapshot())
	}
}

func (h *Handler) deleteHandler(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		word := entities.NormalizeWord(args)
		if word == "" {
			deleted, ok, err := h.controller.DeleteCurrent(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return h.send(newMessage(chatID, md(msgEmptyCollection)))
			}
			return h.sendDeleted(chatID, deleted.Word)
		}

		st := h.controller.Snapshot()
		if st.Loading {
			return service.ErrLoading
		}
		if !lo.ContainsBy(st.Words, func(e entities.Entry) bool { return e.Key() == word }) {
			return h.send(newMessage(chatID, md(msgWordNotFound)))
		}

		if err := h.controller.DeleteWord(ctx, word); err != nil {
			return err
		}
		return h.sendDeleted(chatID, word)
	}
}

func (h *Handler) listHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		st := h.controller.Snapshot()
		if st.Loading {
			return service.ErrLoading
		}
		return h.send(newMessage(chatID, renderList(st.Words)))
	}
}

func (h *Handler) sendDeleted(chatID int64, word string) error {
	return h.sendWordCard(chatID, md("🗑 Deleted ")+bold(word), h.controller.Snapshot())
}

// sendWordCard sends the word on display, optionally preceded by a header
// already formatted as MarkdownV2.
func (h *Handler) sendWordCard(chatID int64, header string, st service.State) error {
	text, kb := renderWordCard(st)
	if header != "" {
		text = header + "\n\n" + text
	}

	msg := newMessage(chatID, text)
	msg.ReplyMarkup = kb
	return h.send(msg)
}

// parseAddArgs parses "word | function | definition | example". The
// function may be left out entirely, in which case it defaults to noun.
func parseAddArgs(args string) (entities.Entry, error) {
	parts := strings.Split(args, "|")

	switch len(parts) {
	case 4:
		return entities.NewEntry(parts[0], parts[1], parts[2], parts[3])
	case 3:
		return entities.NewEntry(parts[0], "", parts[1], parts[2])
	default:
		return entities.Entry{}, errAddUsage
	}
}
