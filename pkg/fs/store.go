package fs

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/akeil/inkbook"
	"github.com/akeil/inkbook/internal/errors"
	ifs "github.com/akeil/inkbook/internal/fs"
	"github.com/akeil/inkbook/internal/logging"
)

const (
	dirMode  = 0755
	fileMode = 0644
)

// Store is a Repository that keeps notebooks as plain files on the local
// file system.
//
// Store has no state of its own; every call goes to disk.
type Store struct{}

// NewStore creates a file system backed notebook store.
func NewStore() *Store {
	return &Store{}
}

// CreateMetadata creates the directory for a new notebook
// and writes default metadata with a single page.
//
// Returns an "already exists" error if the directory exists.
func (s *Store) CreateMetadata(dir, name string) (inkbook.Metadata, error) {
	m := inkbook.NewMetadata(name)
	err := m.Validate()
	if err != nil {
		return m, err
	}

	err = os.MkdirAll(filepath.Dir(dir), dirMode)
	if err != nil {
		return m, errors.Wrap(err, "create parent directory for %q", dir)
	}

	err = os.Mkdir(dir, dirMode)
	if err != nil {
		if os.IsExist(err) {
			return m, errors.NewAlreadyExists("notebook directory %q", dir)
		}
		return m, errors.Wrap(err, "create notebook directory %q", dir)
	}

	err = s.WriteMetadata(dir, m)
	return m, err
}

// ReadMetadata reads the metadata record from the notebook directory.
func (s *Store) ReadMetadata(dir string) (inkbook.Metadata, error) {
	var m inkbook.Metadata
	p := metadataPath(dir)
	logging.Debug("Read metadata from %q", p)

	data, err := ioutil.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return m, errors.NewNotFound("no metadata in %q", dir)
		}
		return m, errors.Wrap(err, "read metadata %q", p)
	}

	err = json.Unmarshal(data, &m)
	if err != nil {
		return m, errors.NewValidationError("malformed metadata in %q: %v", p, err)
	}

	err = m.Validate()
	if err != nil {
		return m, errors.Wrap(err, "invalid metadata in %q", p)
	}

	return m, nil
}

// WriteMetadata replaces the metadata record without any version check.
func (s *Store) WriteMetadata(dir string, m inkbook.Metadata) error {
	err := m.Validate()
	if err != nil {
		return err
	}

	data, err := json.Marshal(m)
	if err != nil {
		return err
	}

	p := metadataPath(dir)
	logging.Debug("Write metadata to %q", p)
	err = ioutil.WriteFile(p, data, fileMode)
	if err != nil {
		return errors.Wrap(err, "write metadata %q", p)
	}
	return nil
}

// UpdateMetadata replaces the metadata record if the stored version matches
// the version of m. The returned record carries the incremented version.
//
// The new record is written to a temporary file first and then moved
// into place.
func (s *Store) UpdateMetadata(dir string, m inkbook.Metadata) (inkbook.Metadata, error) {
	err := m.Validate()
	if err != nil {
		return m, err
	}

	o, err := s.ReadMetadata(dir)
	if err != nil {
		return m, err
	}

	if m.Version != o.Version {
		return m, errors.NewConflict("version mismatch %d != %d", m.Version, o.Version)
	}
	m.Version = o.Version + 1

	f, err := ioutil.TempFile(dir, ".metadata-*.json")
	if err != nil {
		return o, err
	}
	tmp := f.Name()

	err = json.NewEncoder(f).Encode(&m)
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return o, err
	}
	err = f.Close()
	if err != nil {
		os.Remove(tmp)
		return o, err
	}

	logging.Debug("Move updated metadata to %q", metadataPath(dir))
	err = ifs.Move(tmp, metadataPath(dir))
	if err != nil {
		os.Remove(tmp)
		return o, errors.Wrap(err, "update metadata in %q", dir)
	}

	return m, nil
}

// ReadPage reads the PNG data for a single page.
//
// Returns a "not found" error if the page file does not exist.
// A page that was created but never drawn returns empty data.
func (s *Store) ReadPage(dir string, index int) ([]byte, error) {
	if index < 1 {
		return nil, errors.NewValidationError("invalid page index %d", index)
	}

	p := s.PagePath(dir, index)
	logging.Debug("Read page from %q", p)
	data, err := ioutil.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("page %d in %q", index, dir)
		}
		return nil, errors.Wrap(err, "read page %q", p)
	}

	return data, nil
}

// WritePage replaces the PNG data for a single page.
// The file is created if it does not exist.
func (s *Store) WritePage(dir string, index int, data []byte) error {
	if index < 1 {
		return errors.NewValidationError("invalid page index %d", index)
	}

	p := s.PagePath(dir, index)
	logging.Debug("Write %d bytes to %q", len(data), p)
	err := ioutil.WriteFile(p, data, fileMode)
	if err != nil {
		return errors.Wrap(err, "write page %q", p)
	}
	return nil
}

// PagePath returns the path of the page file with the given index.
func (s *Store) PagePath(dir string, index int) string {
	return filepath.Join(dir, inkbook.PageFile(index))
}

func metadataPath(dir string) string {
	return filepath.Join(dir, inkbook.MetadataFile)
}
