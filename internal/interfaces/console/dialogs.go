package console

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// DialogRequest is a confirm or alert raised by a screen while a command runs
type DialogRequest struct {
	Message string
	Confirm bool
	reply   chan bool
}

// Dialogs bridges the blocking Confirmer/Alerter calls a list screen makes
// from a command goroutine to modal dialogs drawn by the model. Confirm blocks
// until the user answers; Alert returns once the dialog is queued.
type Dialogs struct {
	requests chan *DialogRequest
}

// NewDialogs creates the bridge
func NewDialogs() *Dialogs {
	return &Dialogs{requests: make(chan *DialogRequest, 16)}
}

// Confirm asks a yes/no question. A cancelled context counts as no.
func (d *Dialogs) Confirm(ctx context.Context, message string) bool {
	req := &DialogRequest{Message: message, Confirm: true, reply: make(chan bool, 1)}
	select {
	case d.requests <- req:
	case <-ctx.Done():
		return false
	}
	select {
	case ok := <-req.reply:
		return ok
	case <-ctx.Done():
		return false
	}
}

// Alert queues a message
func (d *Dialogs) Alert(ctx context.Context, message string) {
	req := &DialogRequest{Message: message}
	select {
	case d.requests <- req:
	case <-ctx.Done():
	}
}

// Answer replies to a confirm request. It is a no-op for alerts.
func (r *DialogRequest) Answer(ok bool) {
	if r.reply != nil {
		r.reply <- ok
	}
}

// wait returns a command that delivers the next dialog request
func (d *Dialogs) wait(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case req := <-d.requests:
			return req
		case <-ctx.Done():
			return nil
		}
	}
}
