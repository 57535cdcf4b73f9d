// Package app wires the services into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anuvat/anuvat/internal/auth"
	"github.com/anuvat/anuvat/internal/classroom"
	"github.com/anuvat/anuvat/internal/quiz"
	"github.com/anuvat/anuvat/internal/router"
	"github.com/anuvat/anuvat/internal/screen"
	"github.com/anuvat/anuvat/internal/screens/home"
	"github.com/anuvat/anuvat/internal/screens/login"
	"github.com/anuvat/anuvat/internal/screens/quizsession"
	"github.com/anuvat/anuvat/internal/store"
	"github.com/anuvat/anuvat/internal/ui/layout"
)

// startupTimeout bounds the token check at launch.
const startupTimeout = 10 * time.Second

// Deps are the services the app runs on.
type Deps struct {
	Auth       *auth.Service
	Classrooms *classroom.Service
	Store      *store.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	user   *auth.User
	width  int
	height int
}

func newAppModel(deps Deps, user *auth.User, initial screen.Screen) AppModel {
	if initial == nil {
		if user != nil {
			initial = home.New(deps.Classrooms, deps.Store, user)
		} else {
			initial = login.New(deps.Auth)
		}
	}
	return AppModel{
		deps:   deps,
		router: router.New(initial),
		user:   user,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case login.SignedInMsg:
		m.user = msg.User
		homeScreen := home.New(m.deps.Classrooms, m.deps.Store, m.user)
		return m, func() tea.Msg { return router.ReplaceScreenMsg{Screen: homeScreen} }

	case home.SignedOutMsg:
		if err := m.deps.Auth.Logout(); err != nil {
			fmt.Fprintln(os.Stderr, "warning: sign-out cleanup failed:", err)
		}
		m.user = nil
		return m, func() tea.Msg { return router.ReplaceScreenMsg{Screen: login.New(m.deps.Auth)} }

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// A screen with its own esc handling (a mid-quiz confirm,
			// say) gets the key instead of being popped.
			if ei, ok := m.router.Active().(screen.EscInterceptor); ok && ei.InterceptEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	studentName := ""
	if m.user != nil {
		studentName = m.user.Name
	}
	header := layout.RenderHeader(title, studentName, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run validates any stored session and starts the Bubble Tea program.
// A stale token is cleared during the check, so the app simply lands on
// the sign-in screen.
func Run(deps Deps) error {
	return run(deps, nil)
}

// RunQuiz starts the program directly on a quiz attempt, skipping the
// menu.
func RunQuiz(deps Deps, q quiz.Quiz, seconds int) error {
	return run(deps, quizsession.New(q, seconds))
}

func run(deps Deps, initial screen.Screen) error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	user, err := deps.Auth.CurrentUser(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: session check failed:", err)
	}

	p := tea.NewProgram(newAppModel(deps, user, initial))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
