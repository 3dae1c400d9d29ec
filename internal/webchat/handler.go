// Package webchat is the HTTP and WebSocket transport for the chat engine.
// The engine itself is synchronous; this layer owns session loading, the
// per-session busy lock and the typing pacing the widget displays.
package webchat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/smartsites-digital/leadchat/internal/chat"
	"github.com/smartsites-digital/leadchat/pkg/logging"
)

// Handler serves the chat widget API.
type Handler struct {
	engine      *chat.Engine
	store       chat.Store
	typingDelay time.Duration
	logger      *logging.Logger
}

func NewHandler(engine *chat.Engine, store chat.Store, typingDelay time.Duration, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		engine:      engine,
		store:       store,
		typingDelay: typingDelay,
		logger:      logger,
	}
}

// TurnResponse is the reply to any chat action. TypingMS tells the widget
// how long to show the typing indicator before revealing each bot message.
type TurnResponse struct {
	SessionID string         `json:"session_id"`
	Step      chat.Step      `json:"step"`
	Messages  []chat.Message `json:"messages"`
	TypingMS  int64          `json:"typing_ms"`
}

// StateResponse is the full session snapshot.
type StateResponse struct {
	SessionID string          `json:"session_id"`
	Step      chat.Step       `json:"step"`
	Record    json.RawMessage `json:"record"`
	Messages  []chat.Message  `json:"messages"`
	Submitted bool            `json:"submitted"`
}

// HandleStart creates a new conversation.
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Locale string `json:"locale"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req) // empty body means defaults
	}

	s, opening := h.engine.Start(req.Locale)
	if err := h.store.Create(r.Context(), s); err != nil {
		h.logger.Error("webchat: failed to persist new session", "error", err)
		http.Error(w, "failed to start conversation", http.StatusInternalServerError)
		return
	}
	h.respondTurn(w, s, opening)
}

// HandleMessage processes one free-text reply.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
		Text      string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	s, msgs, err := h.runTurn(r.Context(), req.SessionID, func(s *chat.Session) ([]chat.Message, error) {
		return h.engine.HandleAnswer(r.Context(), s, req.Text)
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondTurn(w, s, msgs)
}

// HandleSelect processes a clicked option: a service, timeline or budget.
func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
		Kind      string `json:"kind"`
		Value     string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	s, msgs, err := h.runTurn(r.Context(), req.SessionID, func(s *chat.Session) ([]chat.Message, error) {
		switch req.Kind {
		case "service":
			return h.engine.SelectService(s, req.Value)
		case "timeline":
			return h.engine.SelectTimeline(s, req.Value)
		case "budget":
			return h.engine.SelectBudget(s, req.Value)
		default:
			return nil, chat.ErrUnknownOption
		}
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondTurn(w, s, msgs)
}

// HandleState returns the current session snapshot.
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}
	s, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	record, err := json.Marshal(s.Record)
	if err != nil {
		http.Error(w, "failed to encode session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, StateResponse{
		SessionID: s.ID,
		Step:      s.Step,
		Record:    record,
		Messages:  s.Messages,
		Submitted: s.Submitted,
	})
}

// HandleHistory returns the transcript only.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}
	s, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, map[string][]chat.Message{"messages": s.Messages})
}

// runTurn loads the session under its busy lock, applies one engine action
// and persists the result. The lock rejects a second concurrent action so
// message order is preserved.
func (h *Handler) runTurn(ctx context.Context, sessionID string, fn func(*chat.Session) ([]chat.Message, error)) (*chat.Session, []chat.Message, error) {
	ok, err := h.store.TryLock(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, chat.ErrSessionBusy
	}
	defer func() {
		if err := h.store.Unlock(ctx, sessionID); err != nil {
			h.logger.Error("webchat: failed to unlock session", "error", err, "session_id", sessionID)
		}
	}()

	s, err := h.store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	msgs, err := fn(s)
	if err != nil {
		return nil, nil, err
	}
	if err := h.store.Save(ctx, s); err != nil {
		return nil, nil, err
	}
	return s, msgs, nil
}

func (h *Handler) respondTurn(w http.ResponseWriter, s *chat.Session, msgs []chat.Message) {
	writeJSON(w, TurnResponse{
		SessionID: s.ID,
		Step:      s.Step,
		Messages:  msgs,
		TypingMS:  h.typingDelay.Milliseconds(),
	})
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, chat.ErrSessionBusy):
		http.Error(w, "session is busy, wait for the previous reply", http.StatusConflict)
	case errors.Is(err, chat.ErrConversationDone):
		http.Error(w, "conversation already finished", http.StatusConflict)
	case errors.Is(err, chat.ErrEmptyInput),
		errors.Is(err, chat.ErrWrongStep),
		errors.Is(err, chat.ErrUnknownOption):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("webchat: turn failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
