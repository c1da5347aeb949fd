package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/model"
	"github.com/s21platform/stream-hub/internal/service/auth"
)

const maxPayloadSize = 1 << 20

type HealthResponse struct {
	Status  string `json:"status"`
	Pending int    `json:"pending"`
}

type TokenResponse struct {
	ChannelID string `json:"channel_id"`
}

type EnqueueResponse struct {
	Receiver string `json:"receiver"`
	Action   string `json:"action"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	bus       Bus
	tokens    TokenInitializer
	validator Validator
}

func New(bus Bus, tokens TokenInitializer, validator Validator) *Handler {
	return &Handler{
		bus:       bus,
		tokens:    tokens,
		validator: validator,
	}
}

// Mount registers the routes on r. Routes that change state are wrapped with admin.
func Mount(r chi.Router, h *Handler, admin func(next http.Handler) http.Handler) {
	r.Get("/health", h.Health)
	r.Get("/api/connectors", h.GetConnectors)
	r.Get("/api/oauth/joysticktv/callback", h.OAuthCallback)
	r.With(admin).Post("/api/bus/{receiver}/{action}", h.Enqueue)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, HealthResponse{Status: "ok", Pending: h.bus.Pending()}, http.StatusOK)
}

func (h *Handler) GetConnectors(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectors")

	h.writeJSON(w, h.bus.Snapshot(), http.StatusOK)
}

func (h *Handler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("OAuthCallback")

	code := r.URL.Query().Get("code")
	if err := h.validator.ValidateOAuthCode(code); err != nil {
		logger.Error(fmt.Sprintf("oauth code validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("oauth code validation failed: %v", err), http.StatusBadRequest)
		return
	}

	channelID, err := h.tokens.InitAccessToken(r.Context(), code)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init access token: %v", err))
		status := http.StatusInternalServerError
		if errors.Is(err, auth.ErrOAuthInit) {
			status = http.StatusBadGateway
		}
		h.writeError(w, "failed to init access token", status)
		return
	}

	h.writeJSON(w, TokenResponse{ChannelID: channelID}, http.StatusOK)
}

func (h *Handler) Enqueue(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Enqueue")

	receiver := chi.URLParam(r, "receiver")
	action := chi.URLParam(r, "action")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadSize))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var payload json.RawMessage
	if len(body) > 0 {
		payload = body
	}

	if err = h.validator.ValidateBusRequest(receiver, action, payload); err != nil {
		logger.Error(fmt.Sprintf("bus request validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("bus request validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if _, ok := h.bus.Get(receiver); !ok {
		logger.Warn(fmt.Sprintf("unknown receiver %s", receiver))
		h.writeError(w, fmt.Sprintf("unknown receiver %s", receiver), http.StatusNotFound)
		return
	}

	admin, _ := r.Context().Value(config.KeyAdmin).(string)
	h.bus.Enqueue(model.SenderAdmin, receiver, action, payload)
	logger.Info(fmt.Sprintf("%s enqueued %s for %s", admin, action, receiver))

	h.writeJSON(w, EnqueueResponse{Receiver: receiver, Action: action}, http.StatusAccepted)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
