package assistant

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/brayanj4y/code-assist/internal/project"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RegisterRoutes mounts the assistant chat websocket and the REST
// history/apply endpoints.
func RegisterRoutes(r chi.Router, bridge *Bridge, store *project.Store) {
	r.Get("/ws/assistant", handleWebSocket(bridge, store))
	r.Get("/api/assistant/history", handleHistory(bridge))
	r.Post("/api/assistant/apply", handleApply(bridge))
}

// chatRequest is the incoming websocket message format.
type chatRequest struct {
	Content string `json:"content"`
}

// chatResponse is the outgoing websocket message format.
type chatResponse struct {
	Type    string       `json:"type"` // "response" or "error"
	Message *ChatMessage `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func handleWebSocket(bridge *Bridge, store *project.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("assistant: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("assistant: websocket read: %v", err)
				}
				return
			}

			var req chatRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendError(conn, "invalid message format")
				continue
			}

			reply, err := bridge.SendTurn(r.Context(), req.Content, store.Session().Sources)
			if err != nil {
				switch {
				case errors.Is(err, ErrEmptyPrompt):
					sendError(conn, "content is required")
				case errors.Is(err, ErrBusy):
					sendError(conn, "a request is already in progress")
				default:
					sendError(conn, err.Error())
				}
				continue
			}

			resp := chatResponse{Type: "response", Message: reply}
			if lastErr := bridge.LastError(); lastErr != "" {
				resp.Error = lastErr
			}
			if err := conn.WriteJSON(resp); err != nil {
				log.Printf("assistant: websocket write: %v", err)
			}
		}
	}
}

func sendError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(chatResponse{Type: "error", Error: message}); err != nil {
		log.Printf("assistant: websocket write error: %v", err)
	}
}

func handleHistory(bridge *Bridge) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"messages": bridge.History(),
			"busy":     bridge.Busy(),
			"error":    bridge.LastError(),
		})
	}
}

type applyRequest struct {
	Code CodeBlocks `json:"code"`
}

func handleApply(bridge *Bridge) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req applyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		applied := bridge.ApplyExtractedCode(req.Code)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"applied": applied})
	}
}
