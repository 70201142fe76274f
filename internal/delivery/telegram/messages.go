// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
)

// Error messages.
const (
	msgLoading         = "Your vocabulary is still loading. Try again in a moment."
	msgWordExists      = "This word is already in your vocabulary."
	msgNeedMoreWords   = "Add at least 4 words to start studying."
	msgEmptyWord       = "The word must not be empty."
	msgEmptyDefinition = "The definition must not be empty."
	msgEmptyExample    = "The example must not be empty."
	msgWordNotFound    = "This word is not in your vocabulary."
	msgAlreadyAnswered = "You have already answered this question."
	msgSessionExpired  = "This session has expired. Start a new one."
	msgInternalError   = "Something went wrong. Please try again later."
	msgUnknownCommand  = "Unknown command. Send /help to see what I can do."
)

var msgUnknownFunction = "Unknown part of speech. Use one of: " + strings.Join(entities.Functions, ", ") + "."

// Informational messages.
const (
	msgWelcome = "Welcome to Lexicon! Build your own vocabulary, explore new words and quiz yourself.\n\n" +
		"Send /add to add your first word or /explore to pick some from the catalog."
	msgHelp = "/word - show a random word from your vocabulary\n" +
		"/add word | function | definition | example - add a word\n" +
		"/delete [word] - delete a word, the one on display when no word is given\n" +
		"/list - list your vocabulary\n" +
		"/explore - discover new words from the catalog\n" +
		"/study - quiz yourself on your vocabulary\n" +
		"/help - show this message"
	msgAddUsage = "Usage: /add word | function | definition | example\n\n" +
		"Example: /add serendipity | noun | The occurrence of events by chance in a happy way. | Finding that book was pure serendipity."
	msgEmptyCollection = "Your vocabulary is empty. Send /add to add a word or /explore to discover new ones."
	msgExploreDone     = "You have seen every word in the catalog. Come back after the catalog grows."
	msgWordAdded       = "Added to your vocabulary."
	msgWordDeleted     = "Deleted from your vocabulary."
	msgWordHidden      = "Hidden, you won't see it again."
)

// Button labels.
const (
	btnShuffle    = "🔀 Shuffle"
	btnDelete     = "🗑 Delete"
	btnStudy      = "📝 Study"
	btnExplore    = "🧭 Explore"
	btnSkip       = "⏭ Skip"
	btnHide       = "🙈 Hide"
	btnLearn      = "✅ Learn"
	btnNext       = "Next ▶️"
	btnFinish     = "🏁 Finish"
	btnStudyAgain = "🔄 Study again"
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newEdit replaces the text and keyboard of a message sent earlier.
func newEdit(chatID int64, messageID int, text string, kb *tgbotapi.InlineKeyboardMarkup) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	edit.ReplyMarkup = kb
	return edit
}
