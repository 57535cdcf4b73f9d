// Package home implements the landing screen after sign-in: a menu
// into the classroom view, joining, practice quizzes and sign-out.
package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anuvat/anuvat/internal/auth"
	"github.com/anuvat/anuvat/internal/classroom"
	"github.com/anuvat/anuvat/internal/quiz"
	"github.com/anuvat/anuvat/internal/router"
	"github.com/anuvat/anuvat/internal/screen"
	classroomscreen "github.com/anuvat/anuvat/internal/screens/classroom"
	"github.com/anuvat/anuvat/internal/screens/join"
	"github.com/anuvat/anuvat/internal/screens/quizsession"
	"github.com/anuvat/anuvat/internal/ui/components"
	"github.com/anuvat/anuvat/internal/ui/layout"
	"github.com/anuvat/anuvat/internal/ui/theme"
)

// SignedOutMsg tells the app model to clear credentials and return to
// the sign-in screen.
type SignedOutMsg struct{}

// ClassroomIDSource reads the currently selected classroom id.
type ClassroomIDSource interface {
	ClassroomID() (string, bool, error)
}

// HomeScreen is the post-login menu.
type HomeScreen struct {
	classrooms *classroom.Service
	classID    ClassroomIDSource
	user       *auth.User
	menu       components.Menu
	errMsg     string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen for the signed-in user.
func New(classrooms *classroom.Service, classID ClassroomIDSource, user *auth.User) *HomeScreen {
	s := &HomeScreen{classrooms: classrooms, classID: classID, user: user}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "My Classroom", Action: s.openClassroom},
		{Label: "Join a Classroom", Action: s.openJoin},
		{Label: "Practice Quiz", Action: s.openQuiz},
		{Label: "Sign Out", Action: s.signOut},
	})
	return s
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *HomeScreen) openClassroom() tea.Cmd {
	id, ok, err := s.classID.ClassroomID()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	if !ok {
		s.errMsg = "You haven't joined a classroom yet."
		return nil
	}
	s.errMsg = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: classroomscreen.New(s.classrooms, id)}
	}
}

func (s *HomeScreen) openJoin() tea.Cmd {
	s.errMsg = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: join.New(s.classrooms)}
	}
}

func (s *HomeScreen) openQuiz() tea.Cmd {
	s.errMsg = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quizsession.New(quiz.SampleQuiz(), quiz.DefaultDuration)}
	}
}

func (s *HomeScreen) signOut() tea.Cmd {
	return func() tea.Msg { return SignedOutMsg{} }
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	greeting := "Welcome back"
	if s.user != nil && s.user.Name != "" {
		greeting = "Welcome back, " + s.user.Name
	}

	status := ""
	if s.errMsg != "" {
		status = theme.Warning.Render(s.errMsg)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(greeting),
		theme.Subtitle.Render("What would you like to do?"),
		"",
		s.menu.View(),
		status,
	)
	card := theme.Card.Width(44).Render(body)
	return layout.Center(card, width, height)
}
