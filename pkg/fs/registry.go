package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/akeil/inkbook"
	"github.com/akeil/inkbook/internal/errors"
	"github.com/akeil/inkbook/internal/logging"
)

// Registry finds and creates notebooks below a root directory.
//
// Each immediate subdirectory with a valid metadata record is a notebook.
type Registry struct {
	root  string
	store *Store
}

// NewRegistry creates a registry for the given root directory.
func NewRegistry(root string, store *Store) *Registry {
	return &Registry{
		root:  root,
		store: store,
	}
}

// Root is the directory that contains the notebooks.
func (r *Registry) Root() string {
	return r.root
}

// Store is the store used for notebooks in this registry.
func (r *Registry) Store() *Store {
	return r.store
}

// Contains tells whether dir is a notebook directory directly below root.
func (r *Registry) Contains(dir string) bool {
	rel, err := filepath.Rel(r.root, filepath.Clean(dir))
	if err != nil {
		return false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return !strings.ContainsRune(rel, filepath.Separator)
}

// Dir returns the directory for the notebook with the given name.
func (r *Registry) Dir(name string) string {
	return filepath.Join(r.root, name)
}

// List returns all notebooks in the root directory.
//
// Subdirectories without metadata are ignored, subdirectories with
// malformed metadata are skipped with a warning.
// The list is in file system order.
func (r *Registry) List() ([]inkbook.Entry, error) {
	logging.Debug("List notebooks in %q", r.root)

	err := os.MkdirAll(r.root, dirMode)
	if err != nil {
		return nil, errors.Wrap(err, "create notebook root %q", r.root)
	}

	files, err := os.ReadDir(r.root)
	if err != nil {
		return nil, errors.Wrap(err, "list notebooks in %q", r.root)
	}

	l := make([]inkbook.Entry, 0)
	for _, f := range files {
		if !f.IsDir() {
			continue
		}

		dir := filepath.Join(r.root, f.Name())
		m, err := r.store.ReadMetadata(dir)
		if errors.IsNotFound(err) {
			logging.Debug("Skip %q without metadata", dir)
			continue
		} else if err != nil {
			logging.Warning("Failed to read metadata for %q: %v", f.Name(), err)
			continue
		}

		l = append(l, inkbook.Entry{Name: m.Name, Dir: dir})
	}

	logging.Debug("Found %d notebooks", len(l))
	return l, nil
}

// Create sets up a new notebook with the given name.
//
// The notebook gets default metadata and a blank first page.
// Returns the notebook directory or an "already exists" error.
func (r *Registry) Create(name string) (string, error) {
	err := inkbook.ValidateName(name)
	if err != nil {
		return "", err
	}

	dir := r.Dir(name)
	logging.Info("Create notebook %q in %q", name, dir)

	_, err = r.store.CreateMetadata(dir, name)
	if err != nil {
		return "", err
	}

	err = r.store.WritePage(dir, 1, []byte{})
	if err != nil {
		return "", err
	}

	return dir, nil
}

// Filter returns the entries whose name contains match, ignoring case.
// An empty match returns all entries.
func Filter(entries []inkbook.Entry, match string) []inkbook.Entry {
	if match == "" {
		return entries
	}

	m := strings.ToLower(match)
	l := make([]inkbook.Entry, 0)
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), m) {
			l = append(l, e)
		}
	}
	return l
}
