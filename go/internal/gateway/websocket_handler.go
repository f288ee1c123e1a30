package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/shuttleleague/go/internal/auth"
)

// WebSocketHandler serves the live game day feed
type WebSocketHandler struct {
	connectionManager *ConnectionManager
	verifier          *auth.Verifier // nil allows anonymous spectators only
}

func NewWebSocketHandler(cm *ConnectionManager, verifier *auth.Verifier) *WebSocketHandler {
	return &WebSocketHandler{
		connectionManager: cm,
		verifier:          verifier,
	}
}

// HandleGameDayConnection subscribes the caller to /ws/gamedays/{gameDayID}.
// An optional ?token= identifies the user; an invalid one is rejected.
func (h *WebSocketHandler) HandleGameDayConnection(w http.ResponseWriter, r *http.Request) {
	gameDayID, err := uuid.Parse(chi.URLParam(r, "gameDayID"))
	if err != nil {
		http.Error(w, "invalid game day id", http.StatusBadRequest)
		return
	}

	userID := ""
	if token := r.URL.Query().Get("token"); token != "" {
		if h.verifier == nil {
			http.Error(w, "authentication is not configured", http.StatusUnauthorized)
			return
		}
		id, err := h.verifier.Verify(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		userID = id.String()
	}

	// the upgrader has already written an error response on failure
	if err := h.connectionManager.UpgradeConnection(w, r, userID, gameDayID); err != nil {
		log.Error().
			Err(err).
			Str("game_day_id", gameDayID.String()).
			Str("user_id", userID).
			Msg("failed to upgrade WebSocket connection")
	}
}

func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.connectionManager.Stats()); err != nil {
		log.Error().Err(err).Msg("failed to encode connection stats")
	}
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// NewRouter mounts the gateway routes behind CORS
func NewRouter(h *WebSocketHandler, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Requested-With"},
		MaxAge:         86400,
	}))

	r.Get("/health", HandleHealth)
	r.Get("/stats", h.HandleConnectionStats)
	r.Get("/ws/gamedays/{gameDayID}", h.HandleGameDayConnection)

	return r
}
