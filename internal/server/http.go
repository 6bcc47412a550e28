// Package server wires the HTTP boundary: the two game routes, health and
// metrics. Request transport details stop here; the game engine below it
// only sees session ids and parsed values.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"trivia-backend/internal/config"
	"trivia-backend/internal/game"
	httperrors "trivia-backend/pkg/http/errors"
)

// sessionCookie names the cookie carrying the session id.
const sessionCookie = "tsid"

// Handlers serves the game routes.
type Handlers struct {
	service   *game.Service
	logger    zerolog.Logger
	cookieTTL time.Duration
	secure    bool
}

func NewHandlers(service *game.Service, cookieTTL time.Duration, secure bool, logger zerolog.Logger) *Handlers {
	if cookieTTL <= 0 {
		cookieTTL = 24 * time.Hour
	}
	return &Handlers{
		service:   service,
		logger:    logger.With().Str("component", "http").Logger(),
		cookieTTL: cookieTTL,
		secure:    secure,
	}
}

// NewHTTPServer builds the server with all routes attached.
func NewHTTPServer(cfg *config.App, handlers *Handlers) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewMux(handlers),
	}
}

// NewMux attaches all routes; split out so tests can serve it directly.
func NewMux(handlers *Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("POST /start", handlers.StartGame)
	mux.HandleFunc("POST /verify", handlers.VerifyGuess)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.Respond(w, http.StatusNotFound, httperrors.ReasonNotFound)
	})

	return mux
}

type startRequest struct {
	Categories []string `json:"categories"`
}

type startResponse struct {
	Success      bool              `json:"success"`
	QuestionData game.NextQuestion `json:"questionData"`
}

// StartGame handles POST /start: validates the category selection, builds a
// session and returns the first question.
func (h *Handlers) StartGame(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondReason(w, httperrors.ReasonInvalidCategories)
		return
	}

	sessionID := h.sessionID(w, r)
	first, err := h.service.StartGame(r.Context(), sessionID, req.Categories)
	if err != nil {
		h.respondGameError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, startResponse{Success: true, QuestionData: *first})
}

type verifyRequest struct {
	Guess json.RawMessage `json:"guess"`
}

type verifyResponse struct {
	Success      bool               `json:"success"`
	Results      game.GuessResult   `json:"results"`
	QuestionData *game.NextQuestion `json:"questionData,omitempty"`
}

// VerifyGuess handles POST /verify: checks the guess against the caller's
// session and returns the outcome with the next question, or game over.
func (h *Handlers) VerifyGuess(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		h.respondReason(w, httperrors.ReasonNoSession)
		return
	}

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondReason(w, httperrors.ReasonInvalidIndex)
		return
	}

	result, next, err := h.service.SubmitGuess(r.Context(), cookie.Value, rawGuess(req.Guess))
	if err != nil {
		h.respondGameError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, verifyResponse{Success: true, Results: result, QuestionData: next})
}

// rawGuess normalizes a JSON guess value (string or number) to its text form
// for the engine's parser. Absent or malformed values come out empty and fail
// guess validation downstream.
func rawGuess(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String()
	}
	return ""
}

// sessionID returns the caller's session id, minting a cookie when absent.
func (h *Handlers) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *Handlers) respondReason(w http.ResponseWriter, reason string) {
	httperrors.Respond(w, httperrors.Status(reason), reason)
}

func (h *Handlers) respondGameError(w http.ResponseWriter, r *http.Request, err error) {
	reason := game.Reason(err)
	if httperrors.Status(reason) >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	httperrors.Respond(w, httperrors.Status(reason), reason)
}
