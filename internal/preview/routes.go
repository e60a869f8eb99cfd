package preview

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// sandboxPolicy is the capability set granted to rendered documents. User
// script may run and open modal dialogs; everything else (navigation,
// same-origin access, forms, popups, pointer lock) stays denied.
const sandboxPolicy = "sandbox allow-scripts allow-modals"

// RegisterRoutes mounts the preview API and the one-shot frame endpoint.
func RegisterRoutes(r chi.Router, renderer *Renderer) {
	r.Get("/api/preview", handleSnapshot(renderer))
	r.Post("/api/preview/refresh", handleRefresh(renderer))
	r.Get("/preview/frame/{token}", handleFrame(renderer))
}

func handleSnapshot(renderer *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(renderer.Snapshot())
	}
}

func handleRefresh(renderer *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := renderer.Refresh()
		w.Header().Set("Content-Type", "application/json")
		if snap.State == StateError {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}
		json.NewEncoder(w).Encode(snap)
	}
}

func handleFrame(renderer *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")
		doc, ok := renderer.TakeFrame(token)
		if !ok {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Security-Policy", sandboxPolicy)
		w.Header().Set("Cache-Control", "no-store")
		w.Write([]byte(doc))
	}
}
