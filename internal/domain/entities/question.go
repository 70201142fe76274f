package entities

// Question is a single multiple choice question of a study session:
// the user sees a definition and picks the matching word.
type Question struct {
	Definition    string   // definition shown to the user
	CorrectAnswer string   // the word the definition belongs to
	Options       []string // shuffled options, the correct answer included exactly once
}

// IsCorrect reports whether answer matches the correct word exactly.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}
