// Package classroomscreen renders the classroom detail view: the
// course snapshot plus tabs for materials, practice assignments and
// submission assignments.
package classroomscreen

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anuvat/anuvat/internal/classroom"
	"github.com/anuvat/anuvat/internal/screen"
	"github.com/anuvat/anuvat/internal/ui/layout"
	"github.com/anuvat/anuvat/internal/ui/theme"
)

type tab int

const (
	tabOverview tab = iota
	tabMaterials
	tabPractice
	tabSubmissions
	tabCount
)

var tabLabels = [tabCount]string{"Overview", "Materials", "Practice", "Submissions"}

type detailsMsg classroom.Result[*classroom.Classroom]
type materialsMsg classroom.Result[[]classroom.Material]
type practiceMsg classroom.Result[[]classroom.Assignment]
type submissionsMsg classroom.Result[[]classroom.Assignment]

// DetailScreen shows one classroom. All four sections load on entry;
// each lands independently so a slow materials call never blocks the
// overview.
type DetailScreen struct {
	classrooms *classroom.Service
	classID    string

	active      tab
	details     *classroom.Classroom
	materials   []classroom.Material
	practice    []classroom.Assignment
	submissions []classroom.Assignment
	loaded      [tabCount]bool
	errs        [tabCount]error
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates the detail screen for the given classroom id.
func New(classrooms *classroom.Service, classID string) *DetailScreen {
	return &DetailScreen{classrooms: classrooms, classID: classID}
}

func (s *DetailScreen) Title() string {
	if s.details != nil {
		return s.details.Name
	}
	return "Classroom"
}

func (s *DetailScreen) Init() tea.Cmd {
	svc, id := s.classrooms, s.classID
	return tea.Batch(
		func() tea.Msg { return detailsMsg(svc.Details(context.Background(), id)) },
		func() tea.Msg { return materialsMsg(svc.Materials(context.Background(), id)) },
		func() tea.Msg { return practiceMsg(svc.PracticeAssignments(context.Background(), id)) },
		func() tea.Msg { return submissionsMsg(svc.SubmissionAssignments(context.Background(), id)) },
	)
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next section"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailsMsg:
		s.loaded[tabOverview], s.details, s.errs[tabOverview] = true, msg.Data, msg.Err
	case materialsMsg:
		s.loaded[tabMaterials], s.materials, s.errs[tabMaterials] = true, msg.Data, msg.Err
	case practiceMsg:
		s.loaded[tabPractice], s.practice, s.errs[tabPractice] = true, msg.Data, msg.Err
	case submissionsMsg:
		s.loaded[tabSubmissions], s.submissions, s.errs[tabSubmissions] = true, msg.Data, msg.Err

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right", "l":
			s.active = (s.active + 1) % tabCount
		case "shift+tab", "left", "h":
			s.active = (s.active + tabCount - 1) % tabCount
		}
	}
	return s, nil
}

func (s *DetailScreen) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.renderTabs(),
		"",
		s.renderSection(),
	)
	card := theme.Card.Width(min(width-4, 64)).Render(body)
	return layout.Center(card, width, height)
}

func (s *DetailScreen) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		label := " " + tabLabels[t] + " "
		if t == s.active {
			parts = append(parts, theme.Selected.Render(label))
		} else {
			parts = append(parts, theme.Unselected.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (s *DetailScreen) renderSection() string {
	if !s.loaded[s.active] {
		return theme.Hint.Render("Loading...")
	}
	if err := s.errs[s.active]; err != nil {
		return theme.Warning.Render(err.Error())
	}

	switch s.active {
	case tabOverview:
		return s.renderOverview()
	case tabMaterials:
		return s.renderMaterials()
	case tabPractice:
		return renderAssignments(s.practice, "No practice assignments yet.")
	default:
		return renderAssignments(s.submissions, "No submission assignments yet.")
	}
}

func (s *DetailScreen) renderOverview() string {
	c := s.details
	if c == nil {
		return theme.Hint.Render("No classroom data.")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(c.Name),
		theme.Subtitle.Render("Taught by "+c.TeacherName),
		"",
		theme.Body.Render(fmt.Sprintf("Class code   %s", c.ClassCode)),
		theme.Body.Render(fmt.Sprintf("Students     %d", c.StudentCount)),
	)
}

func (s *DetailScreen) renderMaterials() string {
	if len(s.materials) == 0 {
		return theme.Hint.Render("No materials published yet.")
	}
	lines := make([]string, 0, len(s.materials)*2)
	for _, m := range s.materials {
		lines = append(lines,
			theme.Body.Render(fmt.Sprintf("%s  (%s)", m.Title, m.Type)),
			theme.Hint.Render("  "+m.URL),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAssignments(items []classroom.Assignment, empty string) string {
	if len(items) == 0 {
		return theme.Hint.Render(empty)
	}
	lines := make([]string, 0, len(items))
	for _, a := range items {
		line := a.Title
		if a.DueDate != "" {
			line += "  due " + a.DueDate
		}
		if a.Points > 0 {
			line += fmt.Sprintf("  (%d pts)", a.Points)
		}
		lines = append(lines, theme.Body.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
