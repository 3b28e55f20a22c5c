package server

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/akeil/inkbook"
	"github.com/akeil/inkbook/internal/errors"
	"github.com/akeil/inkbook/internal/logging"
)

type createRequest struct {
	Name string `json:"name"`
}

type dirResponse struct {
	Dir string `json:"dir"`
}

type openRequest struct {
	Dir string `json:"dir"`
}

type windowResponse struct {
	Window string `json:"window"`
	Kind   string `json:"kind"`
	Dir    string `json:"dir,omitempty"`
}

type saveRequest struct {
	Dir      string           `json:"dir"`
	Metadata inkbook.Metadata `json:"metadata"`
	// Pages holds one PNG data URL per page, starting with page 1.
	Pages []string `json:"pages"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /notebooks
func (s *Server) handleListNotebooks(w http.ResponseWriter, r *http.Request) {
	entries, err := s.registry.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// POST /notebooks
func (s *Server) handleCreateNotebook(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !readJSON(w, r, &req) {
		return
	}

	dir, err := s.registry.Create(req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dirResponse{Dir: dir})
}

// GET /metadata?dir=
func (s *Server) handleLoadMetadata(w http.ResponseWriter, r *http.Request) {
	dir, err := s.notebookDir(r.URL.Query().Get("dir"))
	if err != nil {
		writeError(w, err)
		return
	}

	m, err := s.registry.Store().ReadMetadata(dir)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// POST /save
//
// The metadata is written first, then each non-empty page.
// Entries beyond the page count are ignored.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if !readJSON(w, r, &req) {
		return
	}

	dir, err := s.notebookDir(req.Dir)
	if err != nil {
		writeError(w, err)
		return
	}

	err = req.Metadata.Validate()
	if err != nil {
		writeError(w, err)
		return
	}

	// only pages 1..Pages belong to the notebook
	n := len(req.Pages)
	if n > req.Metadata.Pages {
		logging.Warning("Ignore %d page(s) beyond page count %d for %q", n-req.Metadata.Pages, req.Metadata.Pages, dir)
		n = req.Metadata.Pages
	}

	// decode everything before writing anything
	pages := make([][]byte, n)
	for i, p := range req.Pages[:n] {
		pages[i], err = inkbook.DecodeDataURL(p)
		if err != nil {
			writeError(w, errors.Wrap(err, "page %d", i+1))
			return
		}
	}

	store := s.registry.Store()
	err = store.WriteMetadata(dir, req.Metadata)
	if err != nil {
		writeError(w, err)
		return
	}

	for i, data := range pages {
		if len(data) == 0 {
			continue
		}
		err = store.WritePage(dir, i+1, data)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /home
func (s *Server) handleShowHome(w http.ResponseWriter, r *http.Request) {
	win, created := s.windows.ShowHome()
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, windowResponse{Window: win.ID, Kind: win.Kind.String()})
}

// GET /windows
func (s *Server) handleListWindows(w http.ResponseWriter, r *http.Request) {
	l := make([]windowResponse, 0)
	for _, win := range s.windows.Windows() {
		l = append(l, windowResponse{Window: win.ID, Kind: win.Kind.String(), Dir: win.Dir})
	}
	writeJSON(w, http.StatusOK, l)
}

// POST /windows
func (s *Server) handleOpenWindow(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if !readJSON(w, r, &req) {
		return
	}

	dir, err := s.notebookDir(req.Dir)
	if err != nil {
		writeError(w, err)
		return
	}

	win, err := s.windows.OpenNotebook(dir)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, windowResponse{Window: win.ID, Kind: win.Kind.String(), Dir: win.Dir})
}

// DELETE /windows/{id}
func (s *Server) handleCloseWindow(w http.ResponseWriter, r *http.Request) {
	err := s.windows.Close(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// notebookDir checks that dir names a notebook in the registry.
func (s *Server) notebookDir(dir string) (string, error) {
	if dir == "" {
		return "", errors.NewValidationError("missing notebook directory")
	}
	if !s.registry.Contains(dir) {
		return "", errors.NewValidationError("%q is not a notebook directory", dir)
	}
	_, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return "", errors.NewNotFound("notebook %q does not exist", dir)
	}
	return dir, nil
}

func readJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error("Request failed: %v", err)
	} else {
		logging.Debug("Request failed with %d: %v", status, err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.IsAlreadyExists(err), errors.IsConflict(err):
		return http.StatusConflict
	case errors.IsValidationError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logging.Warning("Failed to write response: %v", err)
	}
}
