// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrEmptyWord       = errors.New("word must not be empty")
	ErrEmptyDefinition = errors.New("definition must not be empty")
	ErrEmptyExample    = errors.New("example must not be empty")
	ErrUnknownFunction = errors.New("unknown part of speech")
)

// Parts of speech accepted by the add-word form.
const (
	FunctionNoun         = "noun"
	FunctionVerb         = "verb"
	FunctionAdjective    = "adjective"
	FunctionAdverb       = "adverb"
	FunctionPronoun      = "pronoun"
	FunctionPreposition  = "preposition"
	FunctionConjunction  = "conjunction"
	FunctionInterjection = "interjection"
)

// Functions lists the parts of speech in the order they are offered to the user.
var Functions = []string{
	FunctionNoun,
	FunctionVerb,
	FunctionAdjective,
	FunctionAdverb,
	FunctionPronoun,
	FunctionPreposition,
	FunctionConjunction,
	FunctionInterjection,
}

// Entry represents a vocabulary item with its grammatical function,
// definition and usage example. Entries are identified by their word,
// compared case-insensitively.
type Entry struct {
	Word       string `json:"word"`       // the word itself, stored lowercase when added by the user
	Function   string `json:"function"`   // part of speech; free text is tolerated for catalog data
	Definition string `json:"definition"` // meaning of the word
	Example    string `json:"example"`    // sentence that uses the word
}

// NewEntry builds an entry from user input. All fields are trimmed and the
// word is lowercased. An empty function falls back to noun.
func NewEntry(word, function, definition, example string) (Entry, error) {
	e := Entry{
		Word:       NormalizeWord(word),
		Function:   strings.ToLower(strings.TrimSpace(function)),
		Definition: strings.TrimSpace(definition),
		Example:    strings.TrimSpace(example),
	}

	if e.Function == "" {
		e.Function = FunctionNoun
	}

	switch {
	case e.Word == "":
		return Entry{}, ErrEmptyWord
	case e.Definition == "":
		return Entry{}, ErrEmptyDefinition
	case e.Example == "":
		return Entry{}, ErrEmptyExample
	case !IsKnownFunction(e.Function):
		return Entry{}, ErrUnknownFunction
	}

	return e, nil
}

// Key returns the identity of the entry within a collection.
func (e Entry) Key() string {
	return NormalizeWord(e.Word)
}

// NormalizeWord converts a word to its canonical lowercase form.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// IsKnownFunction reports whether function is one of the supported parts of speech.
func IsKnownFunction(function string) bool {
	return slices.Contains(Functions, function)
}
