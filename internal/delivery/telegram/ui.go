package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
)

// buildWordKeyboard builds keyboard for the word card.
func buildWordKeyboard(hasWord bool) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 2)
	if hasWord {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnShuffle, buildWordCallback(wordShuffle)),
			tgbotapi.NewInlineKeyboardButtonData(btnDelete, buildWordCallback(wordDelete)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnStudy, buildWordCallback(wordStudy)),
		tgbotapi.NewInlineKeyboardButtonData(btnExplore, buildWordCallback(wordExplore)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuestionKeyboard builds keyboard for a study question: one button
// per option until the question is answered, then a single button to move on.
func buildQuestionKeyboard(session *entities.StudySession) tgbotapi.InlineKeyboardMarkup {
	q, _ := session.Current()

	if _, answered := session.Selected(); answered {
		label := btnNext
		if session.IsLast() {
			label = btnFinish
		}
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label, buildStudyNextCallback(session.ID, session.Index())),
			),
		)
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
	for i, option := range q.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, buildStudyAnswerCallback(session.ID, session.Index(), i)),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildStudyResultKeyboard builds keyboard for the study results screen.
func buildStudyResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnStudyAgain, buildWordCallback(wordStudy)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnShuffle, buildWordCallback(wordShuffle)),
		),
	)
}

// buildExploreKeyboard builds keyboard for an explore candidate.
func buildExploreKeyboard(sessionID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnSkip, buildExploreCallback(exploreSkip, sessionID)),
			tgbotapi.NewInlineKeyboardButtonData(btnHide, buildExploreCallback(exploreHide, sessionID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnLearn, buildExploreCallback(exploreLearn, sessionID)),
		),
	)
}
