package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/fileexplorer/internal/server/files"
	"github.com/dmitrijs2005/fileexplorer/internal/server/filetypes"
	"github.com/gorilla/mux"
)

type listResponse struct {
	Path  string        `json:"path"`
	Files []files.Entry `json:"files"`
}

type codeReadResponse struct {
	Content   string `json:"content"`
	Extension string `json:"extension"`
	Name      string `json:"name"`
}

type codeSaveRequest struct {
	Content string `json:"content"`
}

func (s *HTTPServer) handleFileTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, filetypes.Tables())
}

func (s *HTTPServer) handleListFiles(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}

	entries, err := s.files.List(r.Context(), path)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Path: path, Files: entries})
}

func (s *HTTPServer) handleServeFile(w http.ResponseWriter, r *http.Request) {
	path := mux.Vars(r)["path"]

	f, info, err := s.files.Open(r.Context(), path)
	if err != nil {
		writeError(w, err)
		return
	}
	defer f.Close()

	if info.IsDir() {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "File not found"})
		return
	}

	// ServeContent picks the content type from the name and handles
	// range requests for streaming viewers.
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func (s *HTTPServer) handleCodeRead(w http.ResponseWriter, r *http.Request) {
	path := mux.Vars(r)["path"]

	content, name, ext, err := s.files.ReadText(r.Context(), path)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, codeReadResponse{Content: content, Extension: ext, Name: name})
}

func (s *HTTPServer) handleCodeSave(w http.ResponseWriter, r *http.Request) {
	path := mux.Vars(r)["path"]

	var req codeSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request"})
		return
	}

	if err := s.files.SaveText(r.Context(), path, req.Content); err != nil {
		writeError(w, err)
		return
	}

	username, _ := usernameFrom(r.Context())
	s.logger.Info(r.Context(), "file saved", "path", path, "username", username)
	writeJSON(w, http.StatusOK, messageResponse{Message: "File saved successfully"})
}
