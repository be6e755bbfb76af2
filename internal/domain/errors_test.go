package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_Error(t *testing.T) {
	assert.Equal(t, "Deck empty!", NewEmptyDeckError().Error())

	cause := errors.New("unexpected EOF")
	err := NewMalformedFormatError("Invalid JSON format.", cause)
	assert.Equal(t, "Invalid JSON format.: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestIsCode(t *testing.T) {
	wrapped := fmt.Errorf("upload: %w", NewFileNotFoundError("deck.json", os.ErrNotExist))

	assert.True(t, IsCode(wrapped, ErrFileNotFound))
	assert.ErrorIs(t, wrapped, os.ErrNotExist)
	assert.False(t, IsCode(wrapped, ErrMalformedFormat))
	assert.False(t, IsCode(errors.New("plain"), ErrInternal))
	assert.False(t, IsCode(nil, ""))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
}

func TestDomainError_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewDeckFullError(MaxDeckSize))
	require.NoError(t, err)

	assert.JSONEq(t, `{"code":"DECK_FULL","message":"Deck size cannot exceed 150 flashcards."}`, string(data))
}

func TestNewInsufficientCardsError(t *testing.T) {
	err := NewInsufficientCardsError(LevelMid, 7)

	assert.Equal(t, ErrInsufficientCards, err.Code)
	assert.Contains(t, err.Message, "Not enough flashcards for mid level quiz")
	assert.Contains(t, err.Message, "need 10, have 7")
}
