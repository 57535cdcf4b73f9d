// Package login implements the sign-in screen: email and password
// fields backed by the auth service, mirroring the portal's sign-in
// form.
package login

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anuvat/anuvat/internal/auth"
	"github.com/anuvat/anuvat/internal/screen"
	"github.com/anuvat/anuvat/internal/ui/components"
	"github.com/anuvat/anuvat/internal/ui/layout"
	"github.com/anuvat/anuvat/internal/ui/theme"
)

// SignedInMsg is emitted when login succeeds. The app model swaps the
// login screen for the home screen when it sees one.
type SignedInMsg struct {
	User *auth.User
}

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	User *auth.User
	Err  error
}

const (
	fieldEmail = iota
	fieldPassword
)

// LoginScreen collects credentials and signs the student in.
type LoginScreen struct {
	auth     *auth.Service
	email    components.TextInput
	password components.TextInput
	focused  int
	busy     bool
	errMsg   string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login screen.
func New(authSvc *auth.Service) *LoginScreen {
	s := &LoginScreen{
		auth:     authSvc,
		email:    components.NewTextInput("Email address", 0),
		password: components.NewPasswordInput("Password"),
	}
	s.password.Blur()
	return s
}

func (s *LoginScreen) Title() string {
	return "Sign In"
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.email.Init()
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return SignedInMsg{User: msg.User} }

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "tab", "shift+tab":
			return s, s.toggleFocus()
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	if s.focused == fieldEmail {
		s.email, cmd = s.email.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) toggleFocus() tea.Cmd {
	if s.focused == fieldEmail {
		s.focused = fieldPassword
		s.email.Blur()
		return s.password.Focus()
	}
	s.focused = fieldEmail
	s.password.Blur()
	return s.email.Focus()
}

func (s *LoginScreen) submit() tea.Cmd {
	email, password := s.email.Value(), s.password.Value()
	if email == "" || password == "" {
		s.errMsg = "Please enter both email and password."
		return nil
	}

	s.busy = true
	s.errMsg = ""
	authSvc := s.auth
	return func() tea.Msg {
		user, err := authSvc.Login(context.Background(), email, password)
		return loginResultMsg{User: user, Err: err}
	}
}

func (s *LoginScreen) View(width, height int) string {
	title := theme.Title.Render("Anuvat Sign In")
	subtitle := theme.Subtitle.Render("Access your learning portal")

	emailLabel := theme.Hint.Render("Email")
	passwordLabel := theme.Hint.Render("Password")

	status := ""
	if s.busy {
		status = theme.Hint.Render("Signing in...")
	} else if s.errMsg != "" {
		status = theme.Warning.Render(s.errMsg)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		emailLabel,
		s.email.View(),
		"",
		passwordLabel,
		s.password.View(),
		"",
		status,
	)

	card := theme.Card.Width(48).Render(form)
	return layout.Center(card, width, height)
}
