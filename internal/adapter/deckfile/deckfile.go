// Package deckfile reads flashcard decks from JSON or YAML files. A deck file
// is a single object mapping each question to its answer:
//
//	{"Capital of France": "Paris", "H2O": "Water"}
//
// Cards are returned in the order they appear in the file.
package deckfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/anandita-3217/FlashcardApp-CLI/internal/domain"
)

// Format identifies the encoding of a deck file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load opens path and decodes it according to its extension.
func Load(path string) ([]domain.Flashcard, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewFileNotFoundError(path, err)
		}
		return nil, domain.NewInternalError(fmt.Sprintf("Failed to open deck file %s", path), err)
	}
	defer f.Close()

	return Decode(f, FormatFromPath(path))
}

// Decode reads a deck from r in the given format.
func Decode(r io.Reader, format Format) ([]domain.Flashcard, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	default:
		return nil, domain.NewInvalidInputError(fmt.Sprintf("Unsupported deck file format: %q", string(format)))
	}
}

// orderedDeck collects cards keeping the first position of each question.
// A repeated question overwrites the earlier answer.
type orderedDeck struct {
	cards []domain.Flashcard
	index map[string]int
}

func newOrderedDeck() *orderedDeck {
	return &orderedDeck{index: make(map[string]int)}
}

func (d *orderedDeck) put(question, answer string) {
	if i, ok := d.index[question]; ok {
		d.cards[i].Answer = answer
		return
	}
	d.index[question] = len(d.cards)
	d.cards = append(d.cards, domain.NewFlashcard(question, answer))
}
