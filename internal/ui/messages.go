package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristosalva/cristosalva/internal/gallery"
)

// Messages

type frameMsg time.Time

// dragSettledMsg fires after the trailing delay of a drag gesture. ctrl
// identifies the gallery instance that issued token; a remounted gallery
// ignores it.
type dragSettledMsg struct {
	ctrl  *gallery.Controller
	token uint64
}

type shareResultMsg struct {
	source string
	err    error
}

// Commands

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func settleCmd(d time.Duration, ctrl *gallery.Controller, token uint64) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg {
			return dragSettledMsg{ctrl: ctrl, token: token}
		}
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return dragSettledMsg{ctrl: ctrl, token: token}
	})
}

func shareCmd(write func(string) error, source string) tea.Cmd {
	return func() tea.Msg {
		return shareResultMsg{source: source, err: write(source)}
	}
}
