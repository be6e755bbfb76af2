package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxDeckSize is the most flashcards a deck may hold.
const MaxDeckSize = 150

// Flashcard is a single question/answer pair.
type Flashcard struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// NewFlashcard creates a Flashcard without validating it.
func NewFlashcard(question, answer string) Flashcard {
	return Flashcard{Question: question, Answer: answer}
}

// String renders the card as a single deck listing line.
func (f Flashcard) String() string {
	return fmt.Sprintf("Q: %s - A: %s", f.Question, f.Answer)
}

// Validate applies the full rule set used when a single card is added:
// neither side may be blank or whitespace-only.
func (f Flashcard) Validate() error {
	if IsWhitespaceOnly(f.Question) || IsWhitespaceOnly(f.Answer) {
		return NewInvalidInputError("Invalid question and answer pairing")
	}
	if f.Question == "" || f.Answer == "" {
		return NewInvalidInputError("No question or answer entered")
	}
	return nil
}

// IsWhitespaceOnly reports whether s is non-empty and made only of white space.
// An empty string is not whitespace-only.
func IsWhitespaceOnly(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) == -1
}

// IsBlank reports whether s is empty or whitespace-only.
func IsBlank(s string) bool {
	return s == "" || IsWhitespaceOnly(s)
}

// AnswersMatch compares two answers ignoring letter case only.
func AnswersMatch(expected, given string) bool {
	return strings.ToLower(given) == strings.ToLower(expected)
}
