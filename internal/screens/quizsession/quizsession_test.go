package quizsession

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/anuvat/anuvat/internal/quiz"
	"github.com/anuvat/anuvat/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuiz() quiz.Quiz {
	return quiz.Quiz{
		Title: "Sample",
		Questions: []quiz.Question{
			{ID: 1, Prompt: "One?", Options: []string{"a", "b", "c"}, CorrectAnswer: 1},
			{ID: 2, Prompt: "Two?", Options: []string{"a", "b"}, CorrectAnswer: 0},
			{ID: 3, Prompt: "Three?", Options: []string{"a", "b"}, CorrectAnswer: 1},
		},
	}
}

func TestQuizScreen_Title(t *testing.T) {
	s := New(testQuiz(), 60)
	if s.Title() != "Sample" {
		t.Errorf("Title = %q, want %q", s.Title(), "Sample")
	}
}

func TestQuizScreen_AnswerRecord(t *testing.T) {
	s := New(testQuiz(), 60)

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))

	opt, ok := s.session.Answer(1)
	if !ok || opt != 1 {
		t.Fatalf("Answer(1) = (%d, %v), want (1, true)", opt, ok)
	}
	if s.session.Index() != 0 {
		t.Errorf("recording an answer must not advance, index = %d", s.session.Index())
	}
}

func TestQuizScreen_Navigation(t *testing.T) {
	s := New(testQuiz(), 60)

	s.Update(specialKey(tea.KeyRight))
	if s.session.Index() != 1 {
		t.Fatalf("index after right = %d, want 1", s.session.Index())
	}
	s.Update(specialKey(tea.KeyLeft))
	if s.session.Index() != 0 {
		t.Fatalf("index after left = %d, want 0", s.session.Index())
	}

	s.Update(keyPress('3'))
	if s.session.Index() != 2 {
		t.Fatalf("index after jump = %d, want 2", s.session.Index())
	}

	// Out-of-range jump is ignored.
	s.Update(keyPress('9'))
	if s.session.Index() != 2 {
		t.Errorf("index after bad jump = %d, want 2", s.session.Index())
	}
}

func TestQuizScreen_CursorFollowsRecordedAnswer(t *testing.T) {
	s := New(testQuiz(), 60)

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyLeft))

	if s.options.Answered != 1 || s.options.Cursor != 1 {
		t.Errorf("options after return = (answered %d, cursor %d), want (1, 1)", s.options.Answered, s.options.Cursor)
	}
}

func TestQuizScreen_SubmitConfirm(t *testing.T) {
	s := New(testQuiz(), 60)

	s.Update(keyPress('s'))
	if !s.confirming {
		t.Fatal("expected submit confirmation")
	}

	s.Update(keyPress('n'))
	if s.confirming {
		t.Fatal("expected confirmation to be dismissed")
	}
	if s.summary != nil {
		t.Fatal("dismissing the confirmation must not submit")
	}

	s.Update(keyPress('s'))
	s.Update(keyPress('y'))
	if s.summary == nil {
		t.Fatal("expected a summary after confirmed submit")
	}
	if s.summary.Total != 3 {
		t.Errorf("summary total = %d, want 3", s.summary.Total)
	}
}

func TestQuizScreen_LeaveConfirm(t *testing.T) {
	s := New(testQuiz(), 60)

	if !s.InterceptEsc() {
		t.Fatal("a live attempt must intercept esc")
	}

	s.Update(specialKey(tea.KeyEscape))
	if !s.leaving {
		t.Fatal("expected leave confirmation")
	}

	s.Update(keyPress('n'))
	if s.leaving {
		t.Fatal("expected leave confirmation to be dismissed")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirmed leave")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop message after confirmed leave")
	}
}

func TestQuizScreen_ExpiryAutoSubmits(t *testing.T) {
	s := New(testQuiz(), 2)

	_, cmd := s.Update(timerTickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected the timer to keep ticking")
	}
	if s.summary != nil {
		t.Fatal("submitted before expiry")
	}

	s.Update(timerTickMsg(time.Now()))
	if s.summary == nil {
		t.Fatal("expected auto-submit at expiry")
	}
	if !s.session.Expired() {
		t.Error("session should report expiry")
	}
	if s.InterceptEsc() {
		t.Error("summary view must not intercept esc")
	}

	// Ticks after submission are inert.
	_, cmd = s.Update(timerTickMsg(time.Now()))
	if cmd != nil {
		t.Error("timer must stop after submission")
	}
}

func TestQuizScreen_SummaryDone(t *testing.T) {
	s := New(testQuiz(), 60)
	s.Update(keyPress('s'))
	s.Update(keyPress('y'))

	// Answer keys are dead after submission.
	s.Update(specialKey(tea.KeyRight))
	if s.session.Index() != 0 {
		t.Error("navigation after submit must be a no-op")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from the summary view")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop message from the summary view")
	}
}

func TestQuizScreen_View(t *testing.T) {
	s := New(testQuiz(), 60)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}

	s.Update(keyPress('s'))
	if s.View(80, 24) == "" {
		t.Error("expected non-empty confirmation view")
	}

	s.Update(keyPress('y'))
	if s.View(80, 24) == "" {
		t.Error("expected non-empty summary view")
	}
}
