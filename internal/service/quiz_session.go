package service

import (
	"time"

	"github.com/anandita-3217/FlashcardApp-CLI/internal/domain"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/logger"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/util"

	"go.uber.org/zap"
)

// QuizSession walks a QuestionSet one question at a time, checking each
// submitted answer against the deck and keeping a running score.
// The set's time limit is informational; nothing is cut short when it passes.
type QuizSession struct {
	id       string
	deck     DeckService
	set      *domain.QuestionSet
	next     int
	score    int
	outcomes []domain.Outcome
	started  time.Time
	finished time.Time
	now      func() time.Time
	log      *zap.Logger
}

// NewQuizSession starts an attempt over set. The attempt ID is a ULID so
// attempts sort by start time.
func NewQuizSession(deck DeckService, set *domain.QuestionSet) *QuizSession {
	return newQuizSession(deck, set, time.Now)
}

func newQuizSession(deck DeckService, set *domain.QuestionSet, now func() time.Time) *QuizSession {
	started := now()
	s := &QuizSession{
		id:       util.NewULIDAt(started),
		deck:     deck,
		set:      set,
		outcomes: make([]domain.Outcome, 0, set.Len()),
		started:  started,
		now:      now,
	}
	s.log = logger.Get().With(zap.String("attemptID", s.id))
	s.log.Info("Quiz started",
		zap.String("level", set.Level.String()),
		zap.Int("questions", set.Len()),
		zap.Duration("timeLimit", set.TimeLimit))
	return s
}

// ID returns the attempt identifier.
func (s *QuizSession) ID() string { return s.id }

// Total returns the number of questions in the attempt.
func (s *QuizSession) Total() int { return s.set.Len() }

// Score returns the number of correct answers so far.
func (s *QuizSession) Score() int { return s.score }

// Done reports whether every question has been answered.
func (s *QuizSession) Done() bool { return s.next >= s.set.Len() }

// TimeLimit returns the declared time limit of the attempt.
func (s *QuizSession) TimeLimit() time.Duration { return s.set.TimeLimit }

// Current returns the next unanswered question and its zero-based index.
// ok is false once the session is done.
func (s *QuizSession) Current() (index int, card domain.Flashcard, ok bool) {
	if s.Done() {
		return s.next, domain.Flashcard{}, false
	}
	return s.next, s.set.Questions[s.next], true
}

// Submit checks userAnswer against the current question and advances.
func (s *QuizSession) Submit(userAnswer string) (domain.Outcome, error) {
	if s.Done() {
		return domain.Outcome{}, domain.NewInvalidInputError("Quiz already completed")
	}

	index := s.next
	card := s.set.Questions[index]
	correct, err := s.deck.CheckAnswer(s.set, index, userAnswer)
	if err != nil {
		return domain.Outcome{}, err
	}

	if correct {
		s.score++
	}
	s.next++

	outcome := domain.Outcome{
		Index:         index,
		Question:      card.Question,
		GivenAnswer:   userAnswer,
		CorrectAnswer: card.Answer,
		Correct:       correct,
	}
	s.outcomes = append(s.outcomes, outcome)
	s.log.Debug("Answer checked", zap.Int("index", index), zap.Bool("correct", correct))

	if s.Done() {
		s.finished = s.now()
		s.log.Info("Quiz finished",
			zap.Int("score", s.score),
			zap.Int("total", s.set.Len()),
			zap.Duration("elapsed", s.finished.Sub(s.started)))
	}
	return outcome, nil
}

// Result summarises the attempt. For an unfinished attempt FinishedAt is zero.
func (s *QuizSession) Result() *domain.QuizResult {
	outcomes := make([]domain.Outcome, len(s.outcomes))
	copy(outcomes, s.outcomes)
	return &domain.QuizResult{
		ID:         s.id,
		Level:      s.set.Level,
		Score:      s.score,
		Total:      s.set.Len(),
		TimeLimit:  s.set.TimeLimit,
		StartedAt:  s.started,
		FinishedAt: s.finished,
		Outcomes:   outcomes,
	}
}
