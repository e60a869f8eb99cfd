package archive

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brayanj4y/code-assist/internal/project"
)

// RegisterRoutes mounts the export and import endpoints.
func RegisterRoutes(r chi.Router, store *project.Store) {
	r.Get("/api/export", handleExportSession(store))
	r.Get("/api/export/{name}", handleExportProject(store))
	r.Post("/api/import", handleImport(store))
}

func handleExportSession(store *project.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := store.Session()
		serveArchive(w, sess.ProjectName, sess.Sources)
	}
}

func handleExportProject(store *project.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		p, err := store.GetProject(r.Context(), name)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if p == nil {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		serveArchive(w, p.Name, p.SourceBundle)
	}
}

func serveArchive(w http.ResponseWriter, name string, b project.SourceBundle) {
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ArchiveFilename(name)+`"`)
	if err := WriteArchive(w, name, b); err != nil {
		// Headers are already out; the truncated body is all we can signal.
		return
	}
}

func handleImport(store *project.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			http.Error(w, `{"error":"invalid multipart body"}`, http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, `{"error":"missing file field"}`, http.StatusBadRequest)
			return
		}
		defer file.Close()

		if err := ImportFile(store, header.Filename, file); err != nil {
			status := http.StatusUnprocessableEntity
			if errors.Is(err, ErrUnsupportedFile) {
				status = http.StatusBadRequest
			}
			http.Error(w, `{"error":"`+err.Error()+`"}`, status)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
