package inkbook

import (
	"encoding/json"
	"testing"
)

func TestReadMetadata(t *testing.T) {
	jsonStr := `{"name": "Test", "pages": 3}`

	var m Metadata
	err := json.Unmarshal([]byte(jsonStr), &m)
	if err != nil {
		t.Error(err)
	}

	expectedName := "Test"
	if m.Name != expectedName {
		t.Errorf("unexpected value for name: %q != %q", m.Name, expectedName)
	}

	expectedPages := 3
	if m.Pages != expectedPages {
		t.Errorf("unexpected value for pages: %v != %v", m.Pages, expectedPages)
	}

	if m.Version != 0 {
		t.Errorf("unexpected value for version: %v", m.Version)
	}
}

func TestValidateMetadata(t *testing.T) {
	m := NewMetadata("abc")
	err := m.Validate()
	if err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
	if m.Pages != 1 {
		t.Errorf("new notebooks should have one page, found %d", m.Pages)
	}

	m.Pages = 0
	err = m.Validate()
	if !IsMalformed(err) {
		t.Errorf("Invalid page count not detected")
	}
	m.Pages = 1

	m.Name = ""
	err = m.Validate()
	if !IsMalformed(err) {
		t.Errorf("Empty name not detected")
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"Trip", "Trip 2021", "Notizen über Rom", ".hidden"}
	for _, n := range valid {
		if err := ValidateName(n); err != nil {
			t.Errorf("valid name %q was not accepted: %v", n, err)
		}
	}

	invalid := []string{"", " ", ".", "..", "a/b", `a\b`, "../up"}
	for _, n := range invalid {
		if err := ValidateName(n); err == nil {
			t.Errorf("failed to detect invalid name %q", n)
		}
	}
}

func TestPageFile(t *testing.T) {
	if PageFile(1) != "page1.png" {
		t.Errorf("unexpected page file %q", PageFile(1))
	}
	if PageFile(12) != "page12.png" {
		t.Errorf("unexpected page file %q", PageFile(12))
	}
}
