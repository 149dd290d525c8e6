package store

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// TermAnnouncer writes announcements to a terminal. Messages replace
// each other: only the most recent one matters to the reader, matching
// the single-slot contract.
type TermAnnouncer struct {
	mu   sync.Mutex
	w    io.Writer
	last string
}

// NewTermAnnouncer creates an announcer writing to w.
func NewTermAnnouncer(w io.Writer) *TermAnnouncer {
	return &TermAnnouncer{w: w}
}

func (a *TermAnnouncer) Announce(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last = msg
	fmt.Fprintln(a.w, color.CyanString("»"), msg)
}

// Last returns the most recent announcement, or "".
func (a *TermAnnouncer) Last() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

// CollectAnnouncer records every announcement for assertions in tests.
type CollectAnnouncer struct {
	Messages []string
}

func (a *CollectAnnouncer) Announce(msg string) {
	a.Messages = append(a.Messages, msg)
}

// Last returns the most recent announcement, or "".
func (a *CollectAnnouncer) Last() string {
	if len(a.Messages) == 0 {
		return ""
	}
	return a.Messages[len(a.Messages)-1]
}
