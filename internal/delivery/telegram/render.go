package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
	"github.com/aliskhannn/lexicon-bot/internal/service"
)

// renderEntry formats an entry as a card.
func renderEntry(e entities.Entry) string {
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		renderHeadword(e),
		md(e.Definition),
		italic("“"+e.Example+"”"),
	)
}

// renderHeadword formats the word followed by its part of speech, if any.
func renderHeadword(e entities.Entry) string {
	if e.Function == "" {
		return bold(e.Word)
	}
	return bold(e.Word) + "  " + italic(e.Function)
}

// renderWordCard renders the word on display along with its keyboard.
func renderWordCard(st service.State) (string, tgbotapi.InlineKeyboardMarkup) {
	if st.Current == nil {
		return md(msgEmptyCollection), buildWordKeyboard(false)
	}
	return renderEntry(*st.Current), buildWordKeyboard(true)
}

// renderQuestion renders the current question of a study session. Once the
// question is answered the feedback is shown below the definition.
func renderQuestion(session *entities.StudySession) (string, tgbotapi.InlineKeyboardMarkup) {
	q, _ := session.Current()

	var b strings.Builder
	b.WriteString(md(fmt.Sprintf("📝 Question %d of %d", session.Index()+1, session.Total())))
	b.WriteString("\n\n")
	b.WriteString(bold("Which word matches this definition?"))
	b.WriteString("\n\n")
	b.WriteString(md(q.Definition))

	if selected, ok := session.Selected(); ok {
		b.WriteString("\n\n")
		if q.IsCorrect(selected) {
			b.WriteString(md("✅ Correct! It is ") + bold(q.CorrectAnswer) + md("."))
		} else {
			b.WriteString(md("❌ You chose ") + bold(selected) + md(". The answer is ") + bold(q.CorrectAnswer) + md("."))
		}
	}

	return b.String(), buildQuestionKeyboard(session)
}

// renderStudyResult renders the summary of a finished study session.
func renderStudyResult(session *entities.StudySession) (string, tgbotapi.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"%s\n\n%s",
		bold("🏁 Study session complete"),
		md(fmt.Sprintf("Score: %d / %d (%.0f%%)", session.Score(), session.Total(), session.Result()*100)),
	)
	return text, buildStudyResultKeyboard()
}

// renderExplore renders the presented candidate of an explore session.
// An exhausted session renders a closing message without keyboard.
func renderExplore(session *entities.ExploreSession) (string, *tgbotapi.InlineKeyboardMarkup) {
	e, ok := session.Current()
	if !ok {
		return md(msgExploreDone), nil
	}

	cursor, total := session.Position()
	text := fmt.Sprintf(
		"%s\n\n%s",
		md(fmt.Sprintf("🧭 Word %d of %d", cursor+1, total)),
		renderEntry(e),
	)

	kb := buildExploreKeyboard(session.ID)
	return text, &kb
}

// renderList renders the whole collection as a numbered list.
func renderList(words []entities.Entry) string {
	if len(words) == 0 {
		return md(msgEmptyCollection)
	}

	var b strings.Builder
	b.WriteString(bold(fmt.Sprintf("📚 Your vocabulary (%d)", len(words))))
	b.WriteString("\n")
	for i, e := range words {
		b.WriteString("\n")
		b.WriteString(md(fmt.Sprintf("%d. ", i+1)))
		b.WriteString(renderHeadword(e))
	}

	return b.String()
}

// renderWidget formats the widget word pushed to the chat.
func renderWidget(e entities.Entry) string {
	return md("🔤 Word of the moment") + "\n\n" + renderEntry(e)
}
