// Package shell implements the interactive, line-based flashcard menu.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/anandita-3217/FlashcardApp-CLI/internal/adapter/deckfile"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/domain"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/logger"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/service"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// Prompt modes accepted by ShouldPrompt.
const (
	PromptsAuto   = "auto"
	PromptsAlways = "always"
	PromptsNever  = "never"
)

const menu = `
Flashcard App
1. Add Flashcard
2. Update Flashcard
3. Delete Flashcard
4. View Deck
5. Upload Deck (from JSON or YAML)
6. Delete Deck
7. Take Quiz
8. View Deck Size
9. Exit`

// ShouldPrompt resolves a prompt mode. In auto mode prompts are shown only
// when fd is a terminal.
func ShouldPrompt(mode string, fd uintptr) bool {
	switch mode {
	case PromptsAlways:
		return true
	case PromptsNever:
		return false
	default:
		return term.IsTerminal(int(fd))
	}
}

// LoadFunc reads a deck file into cards.
type LoadFunc func(path string) ([]domain.Flashcard, error)

// Options configures a Shell. Zero values fall back to sensible defaults,
// except In and Out which are required.
type Options struct {
	In       io.Reader
	Out      io.Writer
	Recorder service.ResultRecorder
	Load     LoadFunc
	Prompts  bool
	Shuffle  bool
	Logger   *zap.Logger
}

// Shell drives a DeckService from line-based text input.
type Shell struct {
	deck     service.DeckService
	recorder service.ResultRecorder
	load     LoadFunc
	in       *bufio.Scanner
	out      io.Writer
	prompts  bool
	shuffle  bool
	log      *zap.Logger
}

// New creates a shell over deck.
func New(deck service.DeckService, opts Options) *Shell {
	s := &Shell{
		deck:     deck,
		recorder: opts.Recorder,
		load:     opts.Load,
		in:       bufio.NewScanner(opts.In),
		out:      opts.Out,
		prompts:  opts.Prompts,
		shuffle:  opts.Shuffle,
		log:      opts.Logger,
	}
	if s.recorder == nil {
		s.recorder = service.NewNopResultRecorder()
	}
	if s.load == nil {
		s.load = deckfile.Load
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	return s
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.prompts {
			s.println(menu)
		}
		choice, err := s.ask("Choose an option: ")
		if err != nil {
			return endOfInput(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.addFlashcard()
		case "2":
			err = s.updateFlashcard()
		case "3":
			err = s.deleteFlashcard()
		case "4":
			s.println(s.deck.Render())
		case "5":
			err = s.uploadDeck()
		case "6":
			s.report(s.deck.DeleteAll(), "Deck deleted!")
		case "7":
			err = s.takeQuiz(ctx)
		case "8":
			s.printf("Deck size: %d\n", s.deck.Size())
		case "9":
			s.println("Exiting the app.")
			return nil
		default:
			s.println("Invalid choice, please try again.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func (s *Shell) addFlashcard() error {
	question, err := s.ask("Enter the question: ")
	if err != nil {
		return err
	}
	answer, err := s.ask("Enter the answer: ")
	if err != nil {
		return err
	}
	s.report(s.deck.Add(question, answer), fmt.Sprintf("Flashcard '%s' added", question))
	return nil
}

func (s *Shell) updateFlashcard() error {
	question, err := s.ask("Enter the question to update: ")
	if err != nil {
		return err
	}
	answer, err := s.ask("Enter the new answer: ")
	if err != nil {
		return err
	}
	s.report(s.deck.Update(question, answer), fmt.Sprintf("Flashcard '%s' updated!", question))
	return nil
}

func (s *Shell) deleteFlashcard() error {
	question, err := s.ask("Enter the question to delete: ")
	if err != nil {
		return err
	}
	s.report(s.deck.Delete(question), fmt.Sprintf("Flashcard '%s' deleted", question))
	return nil
}

func (s *Shell) uploadDeck() error {
	path, err := s.ask("Enter the deck file path (.json, .yaml): ")
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)

	cards, err := s.load(path)
	if err != nil {
		s.log.Warn("Deck upload failed", zap.String("path", path), zap.Error(err))
		s.println(message(err))
		return nil
	}

	result, err := s.deck.AddBulk(cards)
	if err != nil {
		s.println(message(err))
		if result != nil && len(result.Added) > 0 {
			s.printf("%d flashcards were added before the limit was reached.\n", len(result.Added))
		}
		return nil
	}
	s.println("Deck added!")
	if len(result.Skipped) > 0 {
		s.printf("%d flashcards skipped because they already exist.\n", len(result.Skipped))
	}
	return nil
}

func (s *Shell) takeQuiz(ctx context.Context) error {
	input, err := s.ask("Enter quiz level (beginner, mid, pro): ")
	if err != nil {
		return err
	}
	level, err := domain.ParseQuizLevel(input)
	if err != nil {
		s.println(message(err))
		return nil
	}
	set, err := s.deck.BuildQuiz(level, s.shuffle)
	if err != nil {
		s.println(message(err))
		return nil
	}

	session := service.NewQuizSession(s.deck, set)
	s.printf("%s quiz: %d questions, time limit %s\n", level, session.Total(), session.TimeLimit())
	for {
		index, card, ok := session.Current()
		if !ok {
			break
		}
		answer, err := s.ask(fmt.Sprintf("Question %d: %s\nYour answer: ", index+1, card.Question))
		if err != nil {
			return err
		}
		outcome, err := session.Submit(answer)
		if err != nil {
			s.println(message(err))
			return nil
		}
		if outcome.Correct {
			s.println("Correct!")
		} else {
			s.printf("Wrong! The correct answer was: %s\n", outcome.CorrectAnswer)
		}
	}

	result := session.Result()
	s.println(result.Summary())
	if result.OverTime() {
		s.printf("Time limit of %s exceeded (took %s).\n", result.TimeLimit, result.Elapsed().Round(time.Second))
	}
	if err := s.recorder.Record(ctx, result); err != nil {
		s.log.Warn("Failed to record quiz result", zap.String("attemptID", result.ID), zap.Error(err))
	}
	return nil
}

// ask prints prompt when prompts are enabled and reads one line of input.
// A question in the quiz is always printed, only the trailing prompt is optional.
func (s *Shell) ask(prompt string) (string, error) {
	if s.prompts {
		fmt.Fprint(s.out, prompt)
	} else if i := strings.LastIndex(prompt, "\n"); i >= 0 {
		fmt.Fprintln(s.out, prompt[:i])
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

func (s *Shell) report(err error, success string) {
	if err != nil {
		s.println(message(err))
		return
	}
	s.println(success)
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// message is the text shown to the user for err. Domain errors show only
// their message; wrapped causes go to the log.
func message(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// endOfInput treats running out of input as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
