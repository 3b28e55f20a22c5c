package inkbook

import (
	"fmt"
	"io"
	"sync"

	"github.com/akeil/inkbook/internal/errors"
	"github.com/akeil/inkbook/internal/logging"
)

// A Session is the in-memory state of one open notebook.
//
// It tracks the page currently shown on the canvas and buffers page edits
// until they are written back with Save, AddPage or Close.
// A Session starts out closed; use Open to load a notebook.
type Session struct {
	// VersionCheck makes the session use version-checked metadata updates.
	// Must be set before Open.
	VersionCheck bool

	mx      sync.Mutex
	repo    Repository
	canvas  Canvas
	open    bool
	dir     string
	meta    Metadata
	current int
	buffer  map[int][]byte
}

// NewSession creates a closed session that persists to repo
// and renders pages on the given canvas.
func NewSession(repo Repository, c Canvas) *Session {
	return &Session{
		repo:   repo,
		canvas: c,
	}
}

// Open loads the notebook in dir and shows its first page.
func (s *Session) Open(dir string) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.open {
		return fmt.Errorf("session already has notebook %q open", s.dir)
	}

	logging.Debug("Open notebook %q", dir)
	m, err := s.repo.ReadMetadata(dir)
	if err != nil {
		return errors.Wrap(err, "open notebook %q", dir)
	}

	s.dir = dir
	s.meta = m
	s.current = 1
	s.buffer = make(map[int][]byte)
	s.open = true

	err = s.render(1)
	if err != nil {
		s.open = false
		return err
	}

	return nil
}

// IsOpen tells whether the session currently holds an open notebook.
func (s *Session) IsOpen() bool {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.open
}

// Dir is the directory of the open notebook.
func (s *Session) Dir() string {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.dir
}

// Metadata returns a copy of the in-memory metadata.
func (s *Session) Metadata() Metadata {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.meta
}

// CurrentPage is the index of the page shown on the canvas.
func (s *Session) CurrentPage() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.current
}

// PageCount is the number of pages in the open notebook.
func (s *Session) PageCount() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.meta.Pages
}

// SelectPage shows the page with the given index.
//
// The content of the current page is buffered before switching,
// so navigating away never discards an edit.
// A page that was never written is shown as a blank canvas.
func (s *Session) SelectPage(index int) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	err := s.checkOpen()
	if err != nil {
		return err
	}
	if index < 1 || index > s.meta.Pages {
		return errors.NewValidationError("page %d out of range 1..%d", index, s.meta.Pages)
	}

	err = s.flush()
	if err != nil {
		return err
	}

	err = s.render(index)
	if err != nil {
		return err
	}
	s.current = index

	return nil
}

// AddPage appends a blank page, persists the notebook
// and makes the new page the current one.
func (s *Session) AddPage() error {
	s.mx.Lock()
	defer s.mx.Unlock()

	err := s.checkOpen()
	if err != nil {
		return err
	}

	err = s.flush()
	if err != nil {
		return err
	}

	prev := s.meta
	s.meta.Pages++
	index := s.meta.Pages
	logging.Debug("Add page %d to %q", index, s.dir)

	// once the metadata is stored, the new page count stays
	err = s.writeMetadata()
	if err != nil {
		s.meta = prev
		return err
	}

	err = s.writePages()
	if err != nil {
		return err
	}

	// new pages are created empty
	err = s.repo.WritePage(s.dir, index, []byte{})
	if err != nil {
		return errors.Wrap(err, "create page %d in %q", index, s.dir)
	}

	delete(s.buffer, index)
	s.canvas.Clear()
	s.current = index

	return nil
}

// Save writes the metadata and all buffered pages.
//
// Pages without buffered content are left untouched on disk.
// Note that this means a page which was not visited in this session
// keeps whatever content it had before.
func (s *Session) Save() error {
	s.mx.Lock()
	defer s.mx.Unlock()

	err := s.checkOpen()
	if err != nil {
		return err
	}

	return s.save()
}

// Sources returns the image source for each page in order.
//
// Buffered pages are returned with their in-memory data,
// all others refer to their storage path.
func (s *Session) Sources() ([]PageSource, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	err := s.checkOpen()
	if err != nil {
		return nil, err
	}

	return s.sources()
}

// Export writes the complete notebook to w using the given export function.
//
// Unsaved edits are included in the export but not saved.
func (s *Session) Export(w io.Writer, export ExportFunc) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	err := s.checkOpen()
	if err != nil {
		return err
	}

	src, err := s.sources()
	if err != nil {
		return err
	}

	logging.Info("Export %d pages from %q", len(src), s.dir)
	err = export(w, s.meta.Name, src)
	if err != nil {
		return errors.Wrap(err, "export notebook %q", s.meta.Name)
	}
	return nil
}

// Close saves the notebook and closes the session.
//
// If saving fails, the session remains open.
func (s *Session) Close() error {
	s.mx.Lock()
	defer s.mx.Unlock()

	err := s.checkOpen()
	if err != nil {
		return err
	}

	err = s.save()
	if err != nil {
		return err
	}

	logging.Debug("Close notebook %q", s.dir)
	s.open = false
	s.buffer = nil
	s.current = 0

	return nil
}

func (s *Session) checkOpen() error {
	if !s.open {
		return fmt.Errorf("no notebook open")
	}
	return nil
}

func (s *Session) save() error {
	err := s.flush()
	if err != nil {
		return err
	}

	logging.Debug("Save notebook %q", s.dir)
	return s.persist()
}

// flush copies the canvas content into the edit buffer for the current page.
func (s *Session) flush() error {
	data, err := s.canvas.Snapshot()
	if err != nil {
		return errors.Wrap(err, "snapshot page %d", s.current)
	}
	s.buffer[s.current] = data
	return nil
}

// persist writes metadata and all non-empty buffered pages.
func (s *Session) persist() error {
	err := s.writeMetadata()
	if err != nil {
		return err
	}
	return s.writePages()
}

// writeMetadata stores the in-memory metadata. With VersionCheck,
// the in-memory record takes the new version.
func (s *Session) writeMetadata() error {
	if s.VersionCheck {
		m, err := s.repo.UpdateMetadata(s.dir, s.meta)
		if err != nil {
			return errors.Wrap(err, "save metadata for %q", s.dir)
		}
		s.meta = m
		return nil
	}

	err := s.repo.WriteMetadata(s.dir, s.meta)
	if err != nil {
		return errors.Wrap(err, "save metadata for %q", s.dir)
	}
	return nil
}

// writePages stores all non-empty buffered pages.
func (s *Session) writePages() error {
	for i := 1; i <= s.meta.Pages; i++ {
		data := s.buffer[i]
		if len(data) == 0 {
			continue
		}
		err := s.repo.WritePage(s.dir, i, data)
		if err != nil {
			return errors.Wrap(err, "save page %d in %q", i, s.dir)
		}
	}

	return nil
}

// render shows the page with the given index on the canvas,
// preferring buffered content over the stored page.
func (s *Session) render(index int) error {
	data := s.buffer[index]
	if len(data) == 0 {
		var err error
		data, err = s.repo.ReadPage(s.dir, index)
		if errors.IsNotFound(err) {
			logging.Debug("Page %d not found in %q, show blank page", index, s.dir)
			s.canvas.Clear()
			return nil
		} else if err != nil {
			return errors.Wrap(err, "load page %d from %q", index, s.dir)
		}
	}

	err := s.canvas.Load(data)
	if err != nil {
		return errors.Wrap(err, "load page %d from %q", index, s.dir)
	}
	return nil
}

func (s *Session) sources() ([]PageSource, error) {
	err := s.flush()
	if err != nil {
		return nil, err
	}

	src := make([]PageSource, s.meta.Pages)
	for i := 1; i <= s.meta.Pages; i++ {
		p := PageSource{Index: i}
		if data := s.buffer[i]; len(data) != 0 {
			p.Data = data
		} else {
			p.Path = s.repo.PagePath(s.dir, i)
		}
		src[i-1] = p
	}

	return src, nil
}
