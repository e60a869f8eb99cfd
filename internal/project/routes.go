package project

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the session and project catalog API routes.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/session", func(r chi.Router) {
		r.Get("/", handleGetSession(store))
		r.Put("/buffer", handleUpdateBuffer(store))
		r.Put("/file", handleSetActiveFile(store))
		r.Post("/new", handleNewSession(store))
	})
	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", handleListProjects(store))
		r.Post("/", handleSaveProject(store))
		r.Post("/{name}/load", handleLoadProject(store))
		r.Delete("/{name}", handleDeleteProject(store))
	})
}

type sessionResponse struct {
	Name       string       `json:"name"`
	Sources    SourceBundle `json:"sources"`
	ActiveFile FileID       `json:"activeFile"`
	Language   string       `json:"language"`
}

func handleGetSession(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := store.Session()
		resp := sessionResponse{
			Name:       sess.ProjectName,
			Sources:    sess.Sources,
			ActiveFile: sess.ActiveFile,
			Language:   sess.CurrentLanguage(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

type bufferRequest struct {
	File    FileID `json:"file"`
	Content string `json:"content"`
}

func handleUpdateBuffer(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bufferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if !ValidFile(req.File) {
			http.Error(w, `{"error":"unknown file id"}`, http.StatusBadRequest)
			return
		}

		store.UpdateBuffer(req.File, req.Content)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

type fileRequest struct {
	File FileID `json:"file"`
}

func handleSetActiveFile(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if !ValidFile(req.File) {
			http.Error(w, `{"error":"unknown file id"}`, http.StatusBadRequest)
			return
		}

		store.SetActiveFile(req.File)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func handleNewSession(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.ResetToDefault()

		sess := store.Session()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sessionResponse{
			Name:       sess.ProjectName,
			Sources:    sess.Sources,
			ActiveFile: sess.ActiveFile,
			Language:   sess.CurrentLanguage(),
		})
	}
}

func handleListProjects(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := store.ListProjects(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if projects == nil {
			projects = []Project{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(projects)
	}
}

type saveRequest struct {
	Name string `json:"name"`
}

func handleSaveProject(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		saved, err := store.SaveProject(r.Context(), req.Name)
		if err != nil {
			if errors.Is(err, ErrEmptyName) {
				http.Error(w, `{"error":"please enter a valid project name"}`, http.StatusBadRequest)
				return
			}
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(saved)
	}
}

func handleLoadProject(store *Store) http.HandlerFunc {
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

		store.LoadProject(*p)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}
}

func handleDeleteProject(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if err := store.DeleteProject(r.Context(), name); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
	}
}
