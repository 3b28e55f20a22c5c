package inkbook

import (
	"errors"
	"testing"

	ierrors "github.com/akeil/inkbook/internal/errors"
)

func TestIsNotFound(t *testing.T) {
	err := errors.New("some error")
	if IsNotFound(err) {
		t.Log("custom error type NotFound is wrongly recognized")
		t.Fail()
	}

	err = Wrap(ierrors.NewNotFound("page %d", 3), "select page")
	if !IsNotFound(err) {
		t.Log("wrapped NotFound is not recognized")
		t.Fail()
	}
}

func TestPredicates(t *testing.T) {
	err := Wrap(ierrors.NewValidationError("bad"), "read metadata")
	if !IsMalformed(err) || IsConflict(err) || IsAlreadyExists(err) {
		t.Errorf("wrong classification for %v", err)
	}

	err = Wrap(ierrors.NewConflict("stale"), "save")
	if !IsConflict(err) || IsMalformed(err) {
		t.Errorf("wrong classification for %v", err)
	}

	err = ierrors.NewAlreadyExists("notebook %q", "Trip")
	if !IsAlreadyExists(err) || IsNotFound(err) {
		t.Errorf("wrong classification for %v", err)
	}
}
