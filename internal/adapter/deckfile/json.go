package deckfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/anandita-3217/FlashcardApp-CLI/internal/domain"
)

const invalidJSONMessage = "Invalid JSON format. Please check the file content."

// decodeJSON walks the token stream so that key order survives decoding.
func decodeJSON(r io.Reader) ([]domain.Flashcard, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, malformedJSON(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, domain.NewMalformedFormatError(invalidJSONMessage, fmt.Errorf("expected an object at top level, got %v", tok))
	}

	deck := newOrderedDeck()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, malformedJSON(err)
		}
		question, ok := keyTok.(string)
		if !ok {
			return nil, domain.NewMalformedFormatError(invalidJSONMessage, fmt.Errorf("unexpected key %v", keyTok))
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, malformedJSON(err)
		}
		answer, ok := valTok.(string)
		if !ok {
			return nil, domain.NewMalformedFormatError(invalidJSONMessage,
				fmt.Errorf("answer for %q must be a string, got %v", question, valTok))
		}
		deck.put(question, answer)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, malformedJSON(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, domain.NewMalformedFormatError(invalidJSONMessage, errors.New("unexpected data after top-level object"))
	}

	return deck.cards, nil
}

func malformedJSON(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return domain.NewMalformedFormatError(invalidJSONMessage, err)
}
