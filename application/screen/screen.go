// Package screen holds the per-session context handed to screen controllers:
// toast notifications, the loading signal and navigation.
package screen

import (
	"sync"
	"time"

	"github.com/muhammadheryan/shop-console/model"
)

type Notifier interface {
	Notify(severity model.Severity, message string)
}

// Loading is a counter-based busy signal; every Start must be paired with a Done.
type Loading interface {
	Start()
	Done()
}

type Navigator interface {
	Navigate(path string)
}

// Context bundles what a controller needs from its surrounding screen.
type Context struct {
	Notifier  Notifier
	Loading   Loading
	Navigator Navigator
}

// Snapshot is the drained state of a Session.
type Snapshot struct {
	Toasts     []model.Toast `json:"toasts"`
	Loading    bool          `json:"loading"`
	NavigateTo string        `json:"navigateTo,omitempty"`
}

// Session implements Notifier, Loading and Navigator for one admin session.
type Session struct {
	mu         sync.Mutex
	toasts     []model.Toast
	loading    int
	navigateTo string
	now        func() time.Time
}

func NewSession() *Session {
	return &Session{now: time.Now}
}

// Context returns a Context backed by s.
func (s *Session) Context() Context {
	return Context{Notifier: s, Loading: s, Navigator: s}
}

func (s *Session) Notify(severity model.Severity, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toasts = append(s.toasts, model.Toast{Severity: severity, Message: message, At: s.now()})
}

func (s *Session) Start() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
}

func (s *Session) Done() {
	s.mu.Lock()
	if s.loading > 0 {
		s.loading--
	}
	s.mu.Unlock()
}

func (s *Session) Navigate(path string) {
	s.mu.Lock()
	s.navigateTo = path
	s.mu.Unlock()
}

func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

// Drain returns pending toasts and navigation, then clears them. The loading
// flag is reported but left untouched.
func (s *Session) Drain() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Toasts:     s.toasts,
		Loading:    s.loading > 0,
		NavigateTo: s.navigateTo,
	}
	if snap.Toasts == nil {
		snap.Toasts = []model.Toast{}
	}
	s.toasts = nil
	s.navigateTo = ""
	return snap
}
