package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionWord    = "word"
	actionStudy   = "study"
	actionExplore = "explore"
)

// Word card sub-actions.
const (
	wordShuffle = "shuffle"
	wordDelete  = "delete"
	wordStudy   = "study"
	wordExplore = "explore"
)

// Study sub-actions.
const (
	studyAnswer = "ans"
	studyNext   = "next"
)

// Explore sub-actions.
const (
	exploreSkip  = "skip"
	exploreHide  = "hide"
	exploreLearn = "learn"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildWordCallback builds callback data for the word card buttons.
func buildWordCallback(subAction string) string {
	return callbackData{
		Action: actionWord,
		Params: []string{subAction},
	}.encode()
}

// buildStudyAnswerCallback builds callback data for answering a study question.
func buildStudyAnswerCallback(sessionID string, questionIndex, optionIndex int) string {
	return callbackData{
		Action: actionStudy,
		Params: []string{
			studyAnswer,
			sessionID,
			strconv.Itoa(questionIndex),
			strconv.Itoa(optionIndex),
		},
	}.encode()
}

// buildStudyNextCallback builds callback data for moving past an answered question.
func buildStudyNextCallback(sessionID string, questionIndex int) string {
	return callbackData{
		Action: actionStudy,
		Params: []string{
			studyNext,
			sessionID,
			strconv.Itoa(questionIndex),
		},
	}.encode()
}

// buildExploreCallback builds callback data for the explore buttons.
func buildExploreCallback(subAction, sessionID string) string {
	return callbackData{
		Action: actionExplore,
		Params: []string{subAction, sessionID},
	}.encode()
}
