package service

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/anandita-3217/FlashcardApp-CLI/internal/domain"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/logger"

	"go.uber.org/zap"
)

// emptyDeckMessage is rendered in place of the listing when the deck has no cards.
const emptyDeckMessage = "No cards to show"

// RandSource is the randomness used to sample quiz questions.
// *rand.Rand satisfies it.
type RandSource interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// BulkResult reports what AddBulk did with each card it was given.
type BulkResult struct {
	Added   []string
	Skipped []string
}

// DeckService defines the operations on a single user's flashcard deck
type DeckService interface {
	Add(question, answer string) error
	Update(question, newAnswer string) error
	Delete(question string) error
	DeleteAll() error
	AddBulk(cards []domain.Flashcard) (*BulkResult, error)
	Size() int
	Render() string
	Cards() []domain.Flashcard
	BuildQuiz(level domain.QuizLevel, shuffle bool) (*domain.QuestionSet, error)
	CheckAnswer(set *domain.QuestionSet, index int, userAnswer string) (bool, error)
}

// deckService implements DeckService. Cards are kept in insertion order in
// questions, with answers looked up by question.
type deckService struct {
	questions []string
	answers   map[string]string
	rng       RandSource
	log       *zap.Logger
}

// DeckOption configures a deck created by NewDeckService.
type DeckOption func(*deckService)

// WithRandSource replaces the time-seeded source used for shuffled quizzes.
func WithRandSource(rng RandSource) DeckOption {
	return func(d *deckService) {
		if rng != nil {
			d.rng = rng
		}
	}
}

// WithLogger sets the logger used by the deck.
func WithLogger(log *zap.Logger) DeckOption {
	return func(d *deckService) {
		if log != nil {
			d.log = log
		}
	}
}

// NewDeckService creates an empty deck
func NewDeckService(opts ...DeckOption) DeckService {
	d := &deckService{
		answers: make(map[string]string),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		log:     logger.Get(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *deckService) exists(question string) bool {
	_, ok := d.answers[question]
	return ok
}

func (d *deckService) full() bool {
	return len(d.questions) >= domain.MaxDeckSize
}

func (d *deckService) insert(question, answer string) {
	d.questions = append(d.questions, question)
	d.answers[question] = answer
}

// Add implements DeckService
func (d *deckService) Add(question, answer string) error {
	if d.exists(question) {
		return domain.NewAlreadyExistsError(question)
	}
	if d.full() {
		return domain.NewDeckFullError(domain.MaxDeckSize)
	}
	if err := domain.NewFlashcard(question, answer).Validate(); err != nil {
		return err
	}

	d.insert(question, answer)
	d.log.Debug("Flashcard added", zap.String("question", question), zap.Int("size", len(d.questions)))
	return nil
}

// Update implements DeckService. Empty answers are accepted here even though
// Add rejects them; only whitespace-only text is refused.
func (d *deckService) Update(question, newAnswer string) error {
	if !d.exists(question) {
		return domain.NewNotFoundError(fmt.Sprintf("Flashcard '%s' does not exist", question))
	}
	if domain.IsWhitespaceOnly(question) || domain.IsWhitespaceOnly(newAnswer) {
		return domain.NewInvalidInputError("Invalid question and answer pairing")
	}

	d.answers[question] = newAnswer
	d.log.Debug("Flashcard updated", zap.String("question", question))
	return nil
}

// Delete implements DeckService
func (d *deckService) Delete(question string) error {
	if d.exists(question) {
		delete(d.answers, question)
		for i, q := range d.questions {
			if q == question {
				d.questions = append(d.questions[:i], d.questions[i+1:]...)
				break
			}
		}
		d.log.Debug("Flashcard deleted", zap.String("question", question), zap.Int("size", len(d.questions)))
		return nil
	}
	if domain.IsBlank(question) {
		return domain.NewInvalidInputError("Invalid question format")
	}
	return domain.NewCardNotFoundError(question)
}

// DeleteAll implements DeckService
func (d *deckService) DeleteAll() error {
	if len(d.questions) == 0 {
		return domain.NewEmptyDeckError()
	}
	count := len(d.questions)
	d.questions = nil
	d.answers = make(map[string]string)
	d.log.Info("Deck cleared", zap.Int("removed", count))
	return nil
}

// AddBulk implements DeckService. Cards are not validated individually.
// Hitting the capacity stops processing and keeps whatever was already inserted.
func (d *deckService) AddBulk(cards []domain.Flashcard) (*BulkResult, error) {
	result := &BulkResult{}
	for _, card := range cards {
		if d.exists(card.Question) {
			d.log.Warn("Skipping flashcard during bulk add",
				zap.String("question", card.Question),
				zap.String("reason", domain.NewAlreadyExistsError(card.Question).Error()))
			result.Skipped = append(result.Skipped, card.Question)
			continue
		}
		if d.full() {
			d.log.Warn("Bulk add stopped at deck capacity",
				zap.Int("added", len(result.Added)),
				zap.Int("remaining", len(cards)-len(result.Added)-len(result.Skipped)))
			return result, domain.NewDeckFullError(domain.MaxDeckSize)
		}
		d.insert(card.Question, card.Answer)
		result.Added = append(result.Added, card.Question)
	}

	d.log.Info("Bulk add completed",
		zap.Int("added", len(result.Added)),
		zap.Int("skipped", len(result.Skipped)),
		zap.Int("size", len(d.questions)))
	return result, nil
}

// Size implements DeckService
func (d *deckService) Size() int {
	return len(d.questions)
}

// Render implements DeckService
func (d *deckService) Render() string {
	if len(d.questions) == 0 {
		return emptyDeckMessage
	}
	lines := make([]string, 0, len(d.questions))
	for _, card := range d.Cards() {
		lines = append(lines, card.String())
	}
	return strings.Join(lines, "\n")
}

// Cards implements DeckService
func (d *deckService) Cards() []domain.Flashcard {
	cards := make([]domain.Flashcard, 0, len(d.questions))
	for _, q := range d.questions {
		cards = append(cards, domain.NewFlashcard(q, d.answers[q]))
	}
	return cards
}

// BuildQuiz implements DeckService
func (d *deckService) BuildQuiz(level domain.QuizLevel, shuffle bool) (*domain.QuestionSet, error) {
	if !level.Valid() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("Unknown quiz level: %q", string(level)))
	}
	n := level.QuestionCount()
	if len(d.questions) < n {
		return nil, domain.NewInsufficientCardsError(level, len(d.questions))
	}

	cards := d.Cards()
	if shuffle {
		cards = sample(cards, n, d.rng)
	} else {
		cards = cards[:n]
	}

	d.log.Debug("Quiz built",
		zap.String("level", level.String()),
		zap.Int("questions", n),
		zap.Bool("shuffle", shuffle))
	return &domain.QuestionSet{
		Level:     level,
		Questions: cards,
		TimeLimit: domain.QuizTimeLimit,
	}, nil
}

// CheckAnswer implements DeckService
func (d *deckService) CheckAnswer(set *domain.QuestionSet, index int, userAnswer string) (bool, error) {
	card, err := set.At(index)
	if err != nil {
		return false, err
	}
	return domain.AnswersMatch(card.Answer, userAnswer), nil
}

// sample draws n distinct cards uniformly without replacement using a partial
// Fisher-Yates shuffle. cards is reordered in place.
func sample(cards []domain.Flashcard, n int, rng RandSource) []domain.Flashcard {
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards[:n]
}
