package domain

import (
	"fmt"
	"strings"
	"time"
)

// QuizTimeLimit is the declared time limit of every quiz. It is not enforced.
const QuizTimeLimit = 60 * time.Second

// QuizLevel is a named difficulty tier.
type QuizLevel string

const (
	LevelBeginner QuizLevel = "beginner"
	LevelMid      QuizLevel = "mid"
	LevelPro      QuizLevel = "pro"
)

// Levels lists the known levels from easiest to hardest.
var Levels = []QuizLevel{LevelBeginner, LevelMid, LevelPro}

// ParseQuizLevel converts user input such as " Beginner" into a QuizLevel.
func ParseQuizLevel(s string) (QuizLevel, error) {
	level := QuizLevel(strings.ToLower(strings.TrimSpace(s)))
	if !level.Valid() {
		return "", NewInvalidInputError(fmt.Sprintf("Unknown quiz level: %q (expected beginner, mid or pro)", s))
	}
	return level, nil
}

// Valid reports whether l is one of the known levels.
func (l QuizLevel) Valid() bool {
	return l.QuestionCount() > 0
}

// QuestionCount is both the number of questions drawn for the level and the
// minimum deck size it requires. It is 0 for unknown levels.
func (l QuizLevel) QuestionCount() int {
	switch l {
	case LevelBeginner:
		return 5
	case LevelMid:
		return 10
	case LevelPro:
		return 15
	default:
		return 0
	}
}

func (l QuizLevel) String() string {
	return string(l)
}

// QuestionSet is the ordered list of cards selected for one quiz attempt.
type QuestionSet struct {
	Level     QuizLevel     `json:"level"`
	Questions []Flashcard   `json:"questions"`
	TimeLimit time.Duration `json:"time_limit"`
}

// Len returns the number of questions in the set.
func (qs *QuestionSet) Len() int {
	if qs == nil {
		return 0
	}
	return len(qs.Questions)
}

// At returns the card at index i.
func (qs *QuestionSet) At(i int) (Flashcard, error) {
	if i < 0 || i >= qs.Len() {
		return Flashcard{}, NewInvalidInputError(fmt.Sprintf("Question index %d out of range [0, %d)", i, qs.Len()))
	}
	return qs.Questions[i], nil
}

// Outcome describes the checking of a single answer.
type Outcome struct {
	Index         int    `json:"index"`
	Question      string `json:"question"`
	GivenAnswer   string `json:"given_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}

// QuizResult is the summary of a finished quiz attempt.
type QuizResult struct {
	ID         string        `json:"id"`
	Level      QuizLevel     `json:"level"`
	Score      int           `json:"score"`
	Total      int           `json:"total"`
	TimeLimit  time.Duration `json:"time_limit"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Outcomes   []Outcome     `json:"outcomes,omitempty"`
}

// Elapsed is the wall time between the first question and the last answer.
func (r *QuizResult) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// OverTime reports whether the attempt took longer than its declared limit.
func (r *QuizResult) OverTime() bool {
	return r.TimeLimit > 0 && r.Elapsed() > r.TimeLimit
}

// Summary is the one-line score report printed at the end of a quiz.
func (r *QuizResult) Summary() string {
	return fmt.Sprintf("Quiz completed! Your score: %d/%d", r.Score, r.Total)
}
