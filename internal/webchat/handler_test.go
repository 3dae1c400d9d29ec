package webchat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsites-digital/leadchat/internal/chat"
	"github.com/smartsites-digital/leadchat/internal/i18n"
	"github.com/smartsites-digital/leadchat/internal/leads"
	"github.com/smartsites-digital/leadchat/internal/persuasion"
)

type fakeSubmitter struct {
	calls int
}

func (f *fakeSubmitter) SubmitChat(_ context.Context, _ *leads.ChatData) (string, error) {
	f.calls++
	return "lead-1", nil
}

func newTestHandler() (*Handler, *chat.MemoryStore) {
	catalog := i18n.NewCatalog("ru")
	engine := chat.NewEngine(
		catalog,
		persuasion.NewGenerator(),
		persuasion.NewUpsellGenerator(30*time.Second,
			persuasion.WithCoin(func() bool { return false })),
		&fakeSubmitter{},
	)
	store := chat.NewMemoryStore()
	return NewHandler(engine, store, 0, nil), store
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func startSession(t *testing.T, h *Handler) TurnResponse {
	t.Helper()
	rec := postJSON(t, h.HandleStart, map[string]string{"locale": "ru"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TurnResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp
}

func TestHandleStart(t *testing.T) {
	h, _ := newTestHandler()
	resp := startSession(t, h)

	assert.Equal(t, chat.StepService, resp.Step)
	require.Len(t, resp.Messages, 2)
	assert.Contains(t, resp.Messages[0].Text, "Здравствуйте")
}

func TestHandleSelectService(t *testing.T) {
	h, _ := newTestHandler()
	started := startSession(t, h)

	rec := postJSON(t, h.HandleSelect, map[string]string{
		"session_id": started.SessionID,
		"kind":       "service",
		"value":      "Интернет-магазин",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TurnResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, chat.StepDetails, resp.Step)
	require.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0].Text, "товаров")
}

func TestHandleMessage(t *testing.T) {
	h, _ := newTestHandler()
	started := startSession(t, h)

	rec := postJSON(t, h.HandleSelect, map[string]string{
		"session_id": started.SessionID, "kind": "service", "value": "Интернет-магазин",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, h.HandleMessage, map[string]string{
		"session_id": started.SessionID,
		"text":       "около 100 товаров",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TurnResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
}

func TestHandleMessage_EmptyText(t *testing.T) {
	h, _ := newTestHandler()
	started := startSession(t, h)

	rec := postJSON(t, h.HandleMessage, map[string]string{
		"session_id": started.SessionID,
		"text":       "   ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMessage_UnknownSession(t *testing.T) {
	h, _ := newTestHandler()

	rec := postJSON(t, h.HandleMessage, map[string]string{
		"session_id": "missing",
		"text":       "привет",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleMessage_BusySession(t *testing.T) {
	h, store := newTestHandler()
	started := startSession(t, h)

	ok, err := store.TryLock(context.Background(), started.SessionID)
	require.NoError(t, err)
	require.True(t, ok)

	rec := postJSON(t, h.HandleMessage, map[string]string{
		"session_id": started.SessionID,
		"text":       "привет",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleSelect_UnknownKind(t *testing.T) {
	h, _ := newTestHandler()
	started := startSession(t, h)

	rec := postJSON(t, h.HandleSelect, map[string]string{
		"session_id": started.SessionID,
		"kind":       "color",
		"value":      "red",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleState(t *testing.T) {
	h, _ := newTestHandler()
	started := startSession(t, h)

	req := httptest.NewRequest(http.MethodGet, "/chat/state?session="+started.SessionID, nil)
	rec := httptest.NewRecorder()
	h.HandleState(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, started.SessionID, resp.SessionID)
	assert.Equal(t, chat.StepService, resp.Step)
	assert.Len(t, resp.Messages, 2)
	assert.False(t, resp.Submitted)
}

func TestHandleHistory_MissingParam(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/chat/history", nil)
	rec := httptest.NewRecorder()
	h.HandleHistory(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTurnPersistsSession(t *testing.T) {
	h, store := newTestHandler()
	started := startSession(t, h)

	rec := postJSON(t, h.HandleSelect, map[string]string{
		"session_id": started.SessionID, "kind": "service", "value": "Лендинг",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	s, err := store.Get(context.Background(), started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, chat.StepDetails, s.Step)
	assert.Equal(t, leads.ServiceLanding, s.ServiceKind)
	assert.Equal(t, "Лендинг", s.Record.Service)
}
