// Package quizsession drives a timed quiz attempt: a countdown, one
// question at a time, a two-step submit confirmation and a score
// summary. When the countdown hits zero the attempt is submitted
// without confirmation.
package quizsession

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anuvat/anuvat/internal/quiz"
	"github.com/anuvat/anuvat/internal/router"
	"github.com/anuvat/anuvat/internal/screen"
	"github.com/anuvat/anuvat/internal/ui/components"
	"github.com/anuvat/anuvat/internal/ui/layout"
	"github.com/anuvat/anuvat/internal/ui/theme"
)

// lowTimeThreshold is when the clock turns into a warning, in seconds.
const lowTimeThreshold = 60

// timerTickMsg fires once a second while the session is live.
type timerTickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// QuizScreen renders one quiz attempt.
type QuizScreen struct {
	session    *quiz.Session
	options    components.OptionList
	confirming bool
	leaving    bool
	summary    *quiz.Summary
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscInterceptor = (*QuizScreen)(nil)

// New starts a screen over a fresh session for the given quiz.
func New(q quiz.Quiz, seconds int) *QuizScreen {
	s := &QuizScreen{session: quiz.NewSession(q, seconds)}
	s.syncOptions()
	return s
}

func (s *QuizScreen) Title() string {
	return s.session.Quiz().Title
}

func (s *QuizScreen) Init() tea.Cmd {
	return tickCmd()
}

// InterceptEsc keeps the router from popping this screen while the
// attempt is live; esc raises the leave confirmation instead.
func (s *QuizScreen) InterceptEsc() bool {
	return s.summary == nil
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.summary != nil {
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	if s.confirming || s.leaving {
		return []layout.KeyHint{
			{Key: "y", Description: "Yes"},
			{Key: "n", Description: "No"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←/→", Description: "Question"},
		{Key: "s", Description: "Submit"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.summary != nil {
			return s, nil
		}
		if s.session.Tick() {
			s.submit()
			return s, nil
		}
		return s, tickCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.summary != nil {
		if key == "enter" || key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.confirming {
		switch key {
		case "y":
			s.confirming = false
			s.submit()
		case "n", "esc":
			s.confirming = false
		}
		return s, nil
	}

	if s.leaving {
		switch key {
		case "y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "esc":
			s.leaving = false
		}
		return s, nil
	}

	switch key {
	case "enter", "space", " ":
		s.session.SelectAnswer(s.options.Cursor)
		s.syncOptions()
		return s, nil
	case "left":
		s.session.Previous()
		s.syncOptions()
		return s, nil
	case "right":
		s.session.Next()
		s.syncOptions()
		return s, nil
	case "s":
		s.confirming = true
		return s, nil
	case "esc":
		s.leaving = true
		return s, nil
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		s.session.JumpTo(int(key[0]-'1'))
		s.syncOptions()
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

// syncOptions rebuilds the option list for the current question. The
// cursor lands on the recorded answer when there is one.
func (s *QuizScreen) syncOptions() {
	q := s.session.Current()
	s.options = components.NewOptionList(q.Options)
	if opt, ok := s.session.Answer(q.ID); ok {
		s.options.Answered = opt
		s.options.Cursor = opt
	}
}

func (s *QuizScreen) submit() {
	summary, err := s.session.Submit()
	if err != nil {
		return
	}
	s.summary = &summary
}

func (s *QuizScreen) View(width, height int) string {
	if s.summary != nil {
		return s.renderSummary(width, height)
	}

	var body string
	switch {
	case s.confirming:
		body = s.renderConfirm("Submit the quiz now?")
	case s.leaving:
		body = s.renderConfirm("Leave the quiz? Your answers will be lost.")
	default:
		body = s.renderQuestion()
	}

	card := theme.Card.Width(min(width-4, 64)).Render(body)
	return layout.Center(card, width, height)
}

func (s *QuizScreen) renderQuestion() string {
	total := len(s.session.Quiz().Questions)
	q := s.session.Current()

	clockStyle := theme.Hint
	if s.session.SecondsRemaining() <= lowTimeThreshold {
		clockStyle = theme.Warning
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", s.session.Index()+1, total)),
			"   ",
			clockStyle.Render("⏱ "+quiz.FormatClock(s.session.SecondsRemaining())),
		),
		"",
		theme.Body.Render(q.Prompt),
		"",
		s.options.View(),
		theme.Hint.Render(fmt.Sprintf("%d of %d answered", s.session.AnsweredCount(), total)),
	)
}

func (s *QuizScreen) renderConfirm(prompt string) string {
	total := len(s.session.Quiz().Questions)
	unanswered := total - s.session.AnsweredCount()

	lines := []string{theme.Title.Render(prompt)}
	if unanswered > 0 {
		lines = append(lines, "", theme.Warning.Render(fmt.Sprintf("%d question(s) are still unanswered.", unanswered)))
	}
	lines = append(lines, "", theme.Hint.Render("y to confirm, n to go back"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (s *QuizScreen) renderSummary(width, height int) string {
	sum := s.summary
	headline := theme.Correct.Render("Quiz complete!")
	if s.session.Expired() {
		headline = theme.Warning.Render("Time's up!")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		headline,
		"",
		theme.Body.Render(fmt.Sprintf("Score        %d / %d", sum.Score, sum.Total)),
		theme.Body.Render(fmt.Sprintf("Percentage   %d%%", sum.Percentage)),
		"",
		theme.Hint.Render("Press Enter to go back."),
	)
	card := theme.Card.Width(44).Render(body)
	return layout.Center(card, width, height)
}
