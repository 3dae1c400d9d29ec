package webchat

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/websocket"

	"github.com/smartsites-digital/leadchat/internal/chat"
)

// InboundEvent is what the widget sends over the socket.
type InboundEvent struct {
	Type  string `json:"type"` // "message", "select", "ping"
	Text  string `json:"text,omitempty"`
	Kind  string `json:"kind,omitempty"`
	Value string `json:"value,omitempty"`
}

// OutboundEvent is what the server pushes to the widget.
type OutboundEvent struct {
	Type      string         `json:"type"` // "session", "message", "typing", "pong", "error"
	SessionID string         `json:"session_id,omitempty"`
	Message   *chat.Message  `json:"message,omitempty"`
	Messages  []chat.Message `json:"messages,omitempty"`
	Text      string         `json:"text,omitempty"`
}

// HandleWebSocket upgrades to WebSocket and drives the conversation with
// typing pacing: each bot message is preceded by a typing event and a delay.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	ctx := r.Context()
	sessionID := r.URL.Query().Get("session")

	var s *chat.Session
	if sessionID != "" {
		existing, err := h.store.Get(ctx, sessionID)
		if err == nil {
			s = existing
		}
	}
	if s == nil {
		var opening []chat.Message
		s, opening = h.engine.Start(r.URL.Query().Get("locale"))
		if err := h.store.Create(ctx, s); err != nil {
			_ = websocket.JSON.Send(conn, OutboundEvent{Type: "error", Text: "failed to start conversation"})
			return
		}
		_ = websocket.JSON.Send(conn, OutboundEvent{Type: "session", SessionID: s.ID})
		h.pushPaced(conn, opening)
	} else {
		_ = websocket.JSON.Send(conn, OutboundEvent{Type: "session", SessionID: s.ID})
		_ = websocket.JSON.Send(conn, OutboundEvent{Type: "message", Messages: s.Messages})
	}
	sessionID = s.ID

	h.logger.Info("webchat: connection opened", "session_id", sessionID)

	for {
		var evt InboundEvent
		if err := websocket.JSON.Receive(conn, &evt); err != nil {
			h.logger.Debug("webchat: connection closed", "session_id", sessionID, "error", err)
			return
		}

		switch evt.Type {
		case "ping":
			_ = websocket.JSON.Send(conn, OutboundEvent{Type: "pong"})
		case "message":
			if strings.TrimSpace(evt.Text) == "" {
				continue
			}
			h.turnOverSocket(ctx, conn, sessionID, func(s *chat.Session) ([]chat.Message, error) {
				return h.engine.HandleAnswer(ctx, s, evt.Text)
			})
		case "select":
			kind, value := evt.Kind, evt.Value
			h.turnOverSocket(ctx, conn, sessionID, func(s *chat.Session) ([]chat.Message, error) {
				switch kind {
				case "service":
					return h.engine.SelectService(s, value)
				case "timeline":
					return h.engine.SelectTimeline(s, value)
				case "budget":
					return h.engine.SelectBudget(s, value)
				default:
					return nil, chat.ErrUnknownOption
				}
			})
		}
	}
}

func (h *Handler) turnOverSocket(ctx context.Context, conn *websocket.Conn, sessionID string, fn func(*chat.Session) ([]chat.Message, error)) {
	_, msgs, err := h.runTurn(ctx, sessionID, fn)
	if err != nil {
		_ = websocket.JSON.Send(conn, OutboundEvent{Type: "error", Text: err.Error()})
		return
	}
	h.pushPaced(conn, msgs)
}

// pushPaced sends a typing event, waits, then reveals each bot message.
// Only one turn runs per session at a time, so the pacing never interleaves.
func (h *Handler) pushPaced(conn *websocket.Conn, msgs []chat.Message) {
	for i := range msgs {
		if h.typingDelay > 0 {
			_ = websocket.JSON.Send(conn, OutboundEvent{Type: "typing"})
			time.Sleep(h.typingDelay)
		}
		_ = websocket.JSON.Send(conn, OutboundEvent{Type: "message", Message: &msgs[i]})
	}
}
