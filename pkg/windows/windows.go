// Package windows keeps track of the open windows of the application.
//
// There is at most one home window, which lists the notebooks,
// and any number of notebook windows, each with its own Session.
package windows

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/akeil/inkbook"
	"github.com/akeil/inkbook/internal/errors"
	"github.com/akeil/inkbook/internal/logging"
	"github.com/akeil/inkbook/pkg/canvas"
)

// Kind tells what a window shows.
type Kind int

const (
	Home Kind = iota
	Notebook
)

func (k Kind) String() string {
	switch k {
	case Home:
		return "home"
	case Notebook:
		return "notebook"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Window is a single open window.
//
// Notebook windows carry the session for their notebook and the canvas
// the session draws on. Both are nil for the home window.
type Window struct {
	ID      string
	Kind    Kind
	Dir     string
	Session *inkbook.Session
	Canvas  *canvas.Canvas
}

// Options for new notebook windows.
type Options struct {
	// Width and Height of the page canvas in pixels.
	Width  int
	Height int
	// VersionCheck enables version-checked metadata updates for sessions.
	VersionCheck bool
}

// Manager is the process-wide registry of open windows.
// It is safe for concurrent use.
type Manager struct {
	mx      sync.Mutex
	repo    inkbook.Repository
	opts    Options
	windows map[string]*Window
	order   []string
	home    string
}

// NewManager creates a window manager whose notebook sessions use the
// given repository.
func NewManager(repo inkbook.Repository, opts Options) *Manager {
	if opts.Width <= 0 {
		opts.Width = inkbook.DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = inkbook.DefaultHeight
	}
	return &Manager{
		repo:    repo,
		opts:    opts,
		windows: make(map[string]*Window),
	}
}

// ShowHome returns the home window, creating it if none is open.
// The second return value tells whether a new window was created.
func (m *Manager) ShowHome() (*Window, bool) {
	m.mx.Lock()
	defer m.mx.Unlock()

	if w, ok := m.windows[m.home]; ok {
		logging.Debug("Focus existing home window %v", w.ID)
		return w, false
	}

	w := &Window{ID: uuid.New().String(), Kind: Home}
	m.add(w)
	m.home = w.ID
	logging.Info("Created home window %v", w.ID)

	return w, true
}

// OpenNotebook opens a new notebook window for the notebook in dir.
func (m *Manager) OpenNotebook(dir string) (*Window, error) {
	c := canvas.New(m.opts.Width, m.opts.Height)
	s := inkbook.NewSession(m.repo, c)
	s.VersionCheck = m.opts.VersionCheck

	err := s.Open(dir)
	if err != nil {
		return nil, err
	}

	w := &Window{
		ID:      uuid.New().String(),
		Kind:    Notebook,
		Dir:     dir,
		Session: s,
		Canvas:  c,
	}

	m.mx.Lock()
	defer m.mx.Unlock()
	for _, other := range m.windows {
		if other.Kind == Notebook && other.Dir == dir {
			logging.Warning("Notebook %q is already open in window %v", dir, other.ID)
		}
	}
	m.add(w)
	logging.Info("Opened notebook window %v for %q", w.ID, dir)

	return w, nil
}

// Get returns the window with the given ID.
func (m *Manager) Get(id string) (*Window, error) {
	m.mx.Lock()
	defer m.mx.Unlock()

	w, ok := m.windows[id]
	if !ok {
		return nil, errors.NewNotFound("no window with id %q", id)
	}
	return w, nil
}

// Windows returns all open windows in the order they were opened.
func (m *Manager) Windows() []*Window {
	m.mx.Lock()
	defer m.mx.Unlock()

	l := make([]*Window, len(m.order))
	for i, id := range m.order {
		l[i] = m.windows[id]
	}
	return l
}

// Close closes the window with the given ID.
//
// For notebook windows, the session is saved first.
// If saving fails, the window stays open and the error is returned.
func (m *Manager) Close(id string) error {
	w, err := m.Get(id)
	if err != nil {
		return err
	}

	if w.Session != nil {
		err = w.Session.Close()
		if err != nil {
			return errors.Wrap(err, "close window %v", id)
		}
	}

	m.mx.Lock()
	defer m.mx.Unlock()
	m.remove(id)
	logging.Info("Closed %v window %v", w.Kind, id)

	return nil
}

// CloseAll closes all windows and returns the first error.
// Windows that fail to close remain open.
func (m *Manager) CloseAll() error {
	var first error
	for _, w := range m.Windows() {
		err := m.Close(w.ID)
		if err != nil {
			logging.Error("Failed to close window %v: %v", w.ID, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

func (m *Manager) add(w *Window) {
	m.windows[w.ID] = w
	m.order = append(m.order, w.ID)
}

func (m *Manager) remove(id string) {
	if _, ok := m.windows[id]; !ok {
		return
	}
	delete(m.windows, id)
	for i, other := range m.order {
		if other == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.home == id {
		m.home = ""
	}
}
