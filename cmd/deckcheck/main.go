// Command deckcheck loads a deck file and reports whether it would import
// cleanly: card count, capacity, and cards that a single add would reject.
//
//	deckcheck deck.json [more.yaml ...]
package main

import (
	"fmt" // For initial error printing before logger is up
	"io"
	"os"

	"github.com/anandita-3217/FlashcardApp-CLI/internal/adapter/deckfile"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/config"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/domain"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(2)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: deckcheck FILE [FILE ...]")
		os.Exit(2)
	}

	failed := false
	for _, path := range os.Args[1:] {
		if !checkFile(os.Stdout, path) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// checkFile prints a report for one deck file and reports whether it passed.
func checkFile(w io.Writer, path string) bool {
	log := logger.Get().With(zap.String("path", path))

	cards, err := deckfile.Load(path)
	if err != nil {
		log.Warn("Deck file could not be loaded", zap.Error(err))
		fmt.Fprintf(w, "%s: %v\n", path, err)
		return false
	}

	ok := true
	fmt.Fprintf(w, "%s: %d flashcards\n", path, len(cards))
	if len(cards) > domain.MaxDeckSize {
		ok = false
		fmt.Fprintf(w, "  exceeds the deck limit of %d; only the first %d would be imported into an empty deck\n",
			domain.MaxDeckSize, domain.MaxDeckSize)
	}
	for i, card := range cards {
		if err := card.Validate(); err != nil {
			ok = false
			fmt.Fprintf(w, "  card %d %q: %v\n", i+1, card.Question, err)
		}
	}
	for _, level := range domain.Levels {
		if len(cards) < level.QuestionCount() {
			fmt.Fprintf(w, "  too small for a %s quiz (needs %d)\n", level, level.QuestionCount())
		}
	}

	log.Info("Deck file checked", zap.Int("cards", len(cards)), zap.Bool("ok", ok))
	return ok
}
