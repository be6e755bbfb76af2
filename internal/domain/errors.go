package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Deck specific errors
	ErrAlreadyExists     ErrorCode = "ALREADY_EXISTS"
	ErrDeckFull          ErrorCode = "DECK_FULL"
	ErrEmptyDeck         ErrorCode = "EMPTY_DECK"
	ErrInsufficientCards ErrorCode = "INSUFFICIENT_CARDS"

	// Import specific errors
	ErrFileNotFound    ErrorCode = "FILE_NOT_FOUND"
	ErrMalformedFormat ErrorCode = "MALFORMED_FORMAT"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf returns the ErrorCode carried by err, or "" if err is not a DomainError.
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsCode reports whether err is a DomainError with the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewAlreadyExistsError(question string) *DomainError {
	return NewError(ErrAlreadyExists, fmt.Sprintf("Flashcard with question '%s' already exists.", question), nil)
}

func NewCardNotFoundError(question string) *DomainError {
	return NewNotFoundError(fmt.Sprintf("Flashcard '%s' not found in deck", question))
}

func NewDeckFullError(limit int) *DomainError {
	return NewError(ErrDeckFull, fmt.Sprintf("Deck size cannot exceed %d flashcards.", limit), nil)
}

func NewEmptyDeckError() *DomainError {
	return NewError(ErrEmptyDeck, "Deck empty!", nil)
}

func NewInsufficientCardsError(level QuizLevel, have int) *DomainError {
	return NewError(ErrInsufficientCards,
		fmt.Sprintf("Error: Not enough flashcards for %s level quiz (need %d, have %d).", level, level.QuestionCount(), have), nil)
}

func NewFileNotFoundError(path string, err error) *DomainError {
	return NewError(ErrFileNotFound, fmt.Sprintf("File not found: %s. Please check the file path and try again.", path), err)
}

func NewMalformedFormatError(message string, err error) *DomainError {
	return NewError(ErrMalformedFormat, message, err)
}
