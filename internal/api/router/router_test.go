package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsites-digital/leadchat/internal/chat"
	"github.com/smartsites-digital/leadchat/internal/i18n"
	"github.com/smartsites-digital/leadchat/internal/leads"
	"github.com/smartsites-digital/leadchat/internal/persuasion"
	"github.com/smartsites-digital/leadchat/internal/webchat"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := leads.NewInMemoryRepository()
	leadService := leads.NewService(repo, nil, nil, nil)

	engine := chat.NewEngine(
		i18n.NewCatalog("ru"),
		persuasion.NewGenerator(),
		persuasion.NewUpsellGenerator(30*time.Second),
		leadService,
	)
	chatHandler := webchat.NewHandler(engine, chat.NewMemoryStore(), 0, nil)

	return New(&Config{
		ChatHandler:     chatHandler,
		LeadsHandler:    leads.NewHandler(leadService, nil),
		AdminAuthSecret: testSecret,
	})
}

func adminToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestChatStartRoute(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/chat/start", strings.NewReader(`{"locale":"ru"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "session_id")
}

func TestAdminLeadsRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/leads/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/leads/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebLeadRoute(t *testing.T) {
	r := newTestRouter(t)

	body := `{"data":{"name":"Анна","email":"anna@example.com","service":"Лендинг"}}`
	req := httptest.NewRequest(http.MethodPost, "/leads/web", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
