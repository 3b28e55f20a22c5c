package inkbook

import (
	"fmt"
	"strings"

	"github.com/akeil/inkbook/internal/errors"
)

// MetadataFile is the name of the metadata record within a notebook directory.
const MetadataFile = "metadata.json"

// Metadata holds the persisted description of a notebook.
//
// This maps to the metadata.json file in the notebook directory.
type Metadata struct {
	// Name is the display name of the notebook.
	// It is also used as the name of the notebook directory.
	Name string `json:"name"`
	// Pages is the number of pages, always at least one.
	Pages int `json:"pages"`
	// Version is incremented with each checked update.
	// It is zero for notebooks that were only written without version checks.
	Version uint `json:"version,omitempty"`
}

// NewMetadata creates the metadata for a fresh notebook with a single page.
func NewMetadata(name string) Metadata {
	return Metadata{
		Name:  name,
		Pages: 1,
	}
}

// Validate checks the metadata record for consistency.
func (m Metadata) Validate() error {
	if m.Name == "" {
		return errors.NewValidationError("notebook name must not be empty")
	}
	if m.Pages < 1 {
		return errors.NewValidationError("notebook must have at least one page, found %d", m.Pages)
	}
	return nil
}

// PageFile returns the filename for the page with the given index.
// Page indices start at 1.
func PageFile(index int) string {
	return fmt.Sprintf("page%d.png", index)
}

// ValidateName checks if the given name can be used as a notebook name.
// Names are used as directory names and must not contain path elements.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewValidationError("notebook name must not be empty")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.NewValidationError("invalid notebook name %q", name)
	}
	return nil
}

// Entry is a notebook as found by listing a registry.
type Entry struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
}
