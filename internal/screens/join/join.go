// Package join implements the join-classroom screen: a six-character
// class code is redeemed against the server and the returned classroom
// id becomes the selected classroom.
package join

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anuvat/anuvat/internal/classroom"
	"github.com/anuvat/anuvat/internal/router"
	"github.com/anuvat/anuvat/internal/screen"
	"github.com/anuvat/anuvat/internal/ui/components"
	"github.com/anuvat/anuvat/internal/ui/layout"
	"github.com/anuvat/anuvat/internal/ui/theme"
)

// classCodeLength is the fixed length of class codes.
const classCodeLength = 6

// joinResultMsg carries the outcome of a join attempt.
type joinResultMsg struct {
	ClassroomID string
	Err         error
}

// JoinScreen redeems a class code.
type JoinScreen struct {
	classrooms *classroom.Service
	code       components.TextInput
	busy       bool
	joinedID   string
	errMsg     string
}

var _ screen.Screen = (*JoinScreen)(nil)
var _ screen.KeyHintProvider = (*JoinScreen)(nil)

// New creates the join screen.
func New(classrooms *classroom.Service) *JoinScreen {
	return &JoinScreen{
		classrooms: classrooms,
		code:       components.NewTextInput("e.g. R7H12K", classCodeLength),
	}
}

func (s *JoinScreen) Title() string {
	return "Join Classroom"
}

func (s *JoinScreen) Init() tea.Cmd {
	return s.code.Init()
}

func (s *JoinScreen) KeyHints() []layout.KeyHint {
	if s.joinedID != "" {
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Join"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *JoinScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case joinResultMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.joinedID = msg.ClassroomID
		return s, nil

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		if msg.String() == "enter" {
			if s.joinedID != "" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.code, cmd = s.code.Update(msg)
	return s, cmd
}

func (s *JoinScreen) submit() tea.Cmd {
	code := strings.ToUpper(strings.TrimSpace(s.code.Value()))
	if len(code) != classCodeLength {
		s.errMsg = "Class codes are exactly 6 characters."
		return nil
	}

	s.busy = true
	s.errMsg = ""
	classrooms := s.classrooms
	return func() tea.Msg {
		res := classrooms.Join(context.Background(), code)
		return joinResultMsg{ClassroomID: res.Data, Err: res.Err}
	}
}

func (s *JoinScreen) View(width, height int) string {
	var body string
	switch {
	case s.joinedID != "":
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.Correct.Render("Joined!"),
			"",
			theme.Body.Render("You are now a member of classroom "+s.joinedID+"."),
			theme.Hint.Render("Press Enter to go back."),
		)
	default:
		status := ""
		if s.busy {
			status = theme.Hint.Render("Joining...")
		} else if s.errMsg != "" {
			status = theme.Warning.Render(s.errMsg)
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.Title.Render("Join a Classroom"),
			theme.Subtitle.Render("Ask your teacher for the class code"),
			"",
			s.code.View(),
			"",
			status,
		)
	}

	card := theme.Card.Width(44).Render(body)
	return layout.Center(card, width, height)
}
