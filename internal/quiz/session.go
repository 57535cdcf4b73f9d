package quiz

import (
	"fmt"
	"math"
)

// DefaultDuration is the quiz countdown in seconds (10 minutes).
const DefaultDuration = 600

// Summary reports the outcome of a submitted session.
type Summary struct {
	Score      int
	Total      int
	Percentage int
}

// Session is the runtime state of one quiz attempt: the current
// question index, the answer map and the countdown. All mutation goes
// through methods, and every mutator is a no-op once the session is
// submitted.
type Session struct {
	quiz        Quiz
	index       int
	answers     map[int]int // question id -> selected option index
	secondsLeft int
	submitted   bool
	expireFired bool
}

// NewSession starts a session over quiz with the given countdown in
// seconds. A non-positive duration falls back to DefaultDuration.
func NewSession(quiz Quiz, seconds int) *Session {
	if seconds <= 0 {
		seconds = DefaultDuration
	}
	return &Session{
		quiz:        quiz,
		answers:     make(map[int]int),
		secondsLeft: seconds,
	}
}

// Quiz returns the quiz under test. The session never mutates it.
func (s *Session) Quiz() Quiz {
	return s.quiz
}

// Index returns the 0-based current question index.
func (s *Session) Index() int {
	return s.index
}

// Current returns the question at the current index.
func (s *Session) Current() Question {
	return s.quiz.Questions[s.index]
}

// Answer returns the selected option index for a question id, or
// (0, false) if the question is unanswered.
func (s *Session) Answer(questionID int) (int, bool) {
	opt, ok := s.answers[questionID]
	return opt, ok
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *Session) AnsweredCount() int {
	return len(s.answers)
}

// SecondsRemaining returns the countdown value.
func (s *Session) SecondsRemaining() int {
	return s.secondsLeft
}

// Submitted reports whether the session has reached its terminal state.
func (s *Session) Submitted() bool {
	return s.submitted
}

// SelectAnswer records option as the answer to the current question,
// overwriting any previous selection. It does not advance the index.
// Returns false when the session is already submitted.
func (s *Session) SelectAnswer(option int) bool {
	if s.submitted {
		return false
	}
	q := s.Current()
	if option < 0 || option >= len(q.Options) {
		return false
	}
	s.answers[q.ID] = option
	return true
}

// Next moves to the following question. A no-op at the last index.
func (s *Session) Next() {
	if s.submitted {
		return
	}
	if s.index < len(s.quiz.Questions)-1 {
		s.index++
	}
}

// Previous moves to the preceding question. A no-op at index 0.
func (s *Session) Previous() {
	if s.submitted {
		return
	}
	if s.index > 0 {
		s.index--
	}
}

// JumpTo sets the index directly. Out-of-range targets are ignored.
func (s *Session) JumpTo(i int) {
	if s.submitted {
		return
	}
	if i >= 0 && i < len(s.quiz.Questions) {
		s.index = i
	}
}

// Tick advances the countdown by one second, flooring at zero. It
// returns true exactly once, on the tick that reaches zero: that is
// the signal to auto-submit. Late ticks that fire after expiry (or
// after submission) return false, so a slow teardown cannot trigger a
// second submission.
func (s *Session) Tick() bool {
	if s.submitted || s.expireFired {
		return false
	}
	if s.secondsLeft > 0 {
		s.secondsLeft--
	}
	if s.secondsLeft == 0 {
		s.expireFired = true
		return true
	}
	return false
}

// Expired reports whether the countdown has run out.
func (s *Session) Expired() bool {
	return s.expireFired
}

// Submit scores the session and moves it to its terminal state. Every
// question is counted; an unanswered question is incorrect. Calling
// Submit on an already-submitted session returns an error and does not
// rescore.
func (s *Session) Submit() (Summary, error) {
	if s.submitted {
		return Summary{}, fmt.Errorf("session already submitted")
	}
	s.submitted = true

	score := 0
	for _, q := range s.quiz.Questions {
		if opt, ok := s.answers[q.ID]; ok && opt == q.CorrectAnswer {
			score++
		}
	}

	total := len(s.quiz.Questions)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(score) / float64(total) * 100))
	}

	return Summary{Score: score, Total: total, Percentage: percentage}, nil
}

// FormatClock renders seconds as MM:SS for the countdown display.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
