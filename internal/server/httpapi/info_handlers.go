package httpapi

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/dmitrijs2005/fileexplorer/internal/server/filetypes"
	"github.com/gorilla/mux"
)

type fileInfoResponse struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	Modified  time.Time `json:"modified"`
	Extension string    `json:"extension"`
	IsImage   bool      `json:"isImage,omitempty"`
	Type      string    `json:"type,omitempty"`
}

// statForInfo resolves and stats the requested path for the per-type
// metadata endpoints, writing the error response itself on failure.
func (s *HTTPServer) statForInfo(w http.ResponseWriter, r *http.Request) (name string, info fs.FileInfo, ext string, ok bool) {
	path := mux.Vars(r)["path"]

	name, info, ext, err := s.files.Stat(r.Context(), path)
	if err != nil {
		writeError(w, err)
		return "", nil, "", false
	}
	return name, info, ext, true
}

func (s *HTTPServer) handleImageInfo(w http.ResponseWriter, r *http.Request) {
	name, info, ext, ok := s.statForInfo(w, r)
	if !ok {
		return
	}

	if info.IsDir() || filetypes.Classify(ext) != filetypes.CategoryImage {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Not an image file"})
		return
	}

	writeJSON(w, http.StatusOK, fileInfoResponse{
		Name:      name,
		Size:      info.Size(),
		Modified:  info.ModTime(),
		Extension: ext,
		IsImage:   true,
	})
}

func (s *HTTPServer) handlePDFInfo(w http.ResponseWriter, r *http.Request) {
	name, info, ext, ok := s.statForInfo(w, r)
	if !ok {
		return
	}

	if info.IsDir() || filetypes.Classify(ext) != filetypes.CategoryPDF {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Not a PDF file"})
		return
	}

	writeJSON(w, http.StatusOK, fileInfoResponse{
		Name:      name,
		Size:      info.Size(),
		Modified:  info.ModTime(),
		Extension: ext,
	})
}

func (s *HTTPServer) handleOfficeInfo(w http.ResponseWriter, r *http.Request) {
	name, info, ext, ok := s.statForInfo(w, r)
	if !ok {
		return
	}

	category := filetypes.Classify(ext)
	if info.IsDir() || !filetypes.IsOffice(category) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Not an Office document"})
		return
	}

	writeJSON(w, http.StatusOK, fileInfoResponse{
		Name:      name,
		Size:      info.Size(),
		Modified:  info.ModTime(),
		Extension: ext,
		Type:      string(category),
	})
}
