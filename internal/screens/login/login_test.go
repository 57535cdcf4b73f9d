package login

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestLoginScreen_EmptyFieldsRejected(t *testing.T) {
	s := New(nil)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Fatal("expected no command for empty fields")
	}
	if s.errMsg == "" {
		t.Fatal("expected a validation message")
	}
	if s.busy {
		t.Error("validation failure must not mark the screen busy")
	}
}

func TestLoginScreen_FailedAttemptShowsError(t *testing.T) {
	s := New(nil)
	s.busy = true

	s.Update(loginResultMsg{Err: errors.New("login failed: Invalid credentials.")})
	if s.busy {
		t.Error("screen should be interactive again after a failure")
	}
	if !strings.Contains(s.errMsg, "Invalid credentials.") {
		t.Errorf("errMsg = %q, want the server message", s.errMsg)
	}
}

func TestLoginScreen_SuccessEmitsSignedIn(t *testing.T) {
	s := New(nil)
	s.busy = true

	_, cmd := s.Update(loginResultMsg{User: nil})
	if cmd == nil {
		t.Fatal("expected a command on success")
	}
	if _, ok := cmd().(SignedInMsg); !ok {
		t.Error("expected a SignedInMsg on success")
	}
}

func TestLoginScreen_TabTogglesFocus(t *testing.T) {
	s := New(nil)

	s.Update(specialKey(tea.KeyTab))
	if s.focused != fieldPassword {
		t.Fatal("tab should move focus to the password field")
	}
	s.Update(specialKey(tea.KeyTab))
	if s.focused != fieldEmail {
		t.Fatal("tab should move focus back to the email field")
	}
}

func TestLoginScreen_View(t *testing.T) {
	s := New(nil)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}
