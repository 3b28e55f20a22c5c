package inkbook

import (
	"io"
)

// Repository is the interface for the storage backend of a notebook.
//
// Notebooks are addressed by their directory.
// Pages are addressed by directory and index, starting at 1.
type Repository interface {
	// ReadMetadata reads the metadata record for the notebook in dir.
	// Returns a "not found" error if there is no record
	// and a validation error if the record is malformed.
	ReadMetadata(dir string) (Metadata, error)

	// WriteMetadata replaces the metadata record. Last writer wins.
	WriteMetadata(dir string, m Metadata) error

	// UpdateMetadata replaces the metadata record only if the stored version
	// matches m.Version and returns the record with the new version.
	UpdateMetadata(dir string, m Metadata) (Metadata, error)

	// ReadPage reads the raw PNG data for a single page.
	// Returns a "not found" error if the page was never written.
	ReadPage(dir string, index int) ([]byte, error)

	// WritePage replaces the raw PNG data for a single page.
	WritePage(dir string, index int, data []byte) error

	// PagePath returns the storage path for the page with the given index.
	PagePath(dir string, index int) string
}

// Canvas is the drawing surface a Session renders pages on.
type Canvas interface {
	// Load replaces the canvas content with the given PNG data.
	// Empty data results in a blank canvas.
	Load(data []byte) error
	// Clear resets the canvas to a blank page.
	Clear()
	// Snapshot returns the current canvas content as PNG data.
	Snapshot() ([]byte, error)
}

// PageSource is the image source for a single page during export.
//
// If Data is set, it holds in-memory PNG data.
// Otherwise the page is read from Path.
type PageSource struct {
	Index int
	Data  []byte
	Path  string
}

// InMemory tells whether this page has buffered image data.
func (p PageSource) InMemory() bool {
	return len(p.Data) != 0
}

// ExportFunc writes a document with the given title and pages to w.
type ExportFunc func(w io.Writer, title string, pages []PageSource) error
