package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/smartsites-digital/leadchat/pkg/logging"
)

func newTestHandler() (*Handler, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil, logging.Default())
	return NewHandler(service, logging.Default()), repo
}

func TestCreateWebLead_Success(t *testing.T) {
	handler, _ := newTestHandler()

	reqBody := CreateLeadRequest{
		Data: ChatData{
			Name:    "Анна Петрова",
			Email:   "anna@example.com",
			Phone:   "+79990001122",
			Service: "Интернет-магазин",
		},
		Source: "website",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/leads/web", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateWebLead(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var lead Lead
	if err := json.NewDecoder(w.Body).Decode(&lead); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if lead.Name != reqBody.Data.Name {
		t.Errorf("expected name %s, got %s", reqBody.Data.Name, lead.Name)
	}
	if lead.Service != reqBody.Data.Service {
		t.Errorf("expected service %s, got %s", reqBody.Data.Service, lead.Service)
	}
	if lead.ID == "" {
		t.Error("expected generated lead id")
	}
}

func TestCreateWebLead_InvalidRequest(t *testing.T) {
	handler, _ := newTestHandler()

	reqBody := CreateLeadRequest{
		Data: ChatData{Name: ""}, // missing required name
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/leads/web", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateWebLead(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCreateWebLead_MissingContact(t *testing.T) {
	handler, _ := newTestHandler()

	reqBody := CreateLeadRequest{
		Data: ChatData{Name: "Анна Петрова"}, // no email, no phone
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/leads/web", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateWebLead(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestListLeads(t *testing.T) {
	handler, repo := newTestHandler()

	for _, svc := range []string{"Лендинг", "Интернет-магазин", "Лендинг"} {
		_, err := repo.Create(context.Background(), &CreateLeadRequest{
			Data:   ChatData{Name: "Клиент", Phone: "+79990001122", Service: svc},
			Source: "chat",
		})
		if err != nil {
			t.Fatalf("seed lead: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/leads?service=Лендинг", nil)
	w := httptest.NewRecorder()

	handler.ListLeads(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp ListLeadsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("expected 2 leads, got %d", resp.Count)
	}
}

func TestGetLead_NotFound(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/admin/leads/unknown", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("leadID", "unknown")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	handler.GetLead(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestSubmitChat_SingleSubmission(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil, logging.Default())

	data := &ChatData{
		Name:     "Иван",
		Email:    "ivan@example.com",
		Phone:    "+79991112233",
		Service:  "Интернет-магазин",
		Timeline: "1-2 месяца",
		Budget:   "до 200 000 ₽",
	}

	id, err := service.SubmitChat(context.Background(), data)
	if err != nil {
		t.Fatalf("submit chat: %v", err)
	}

	lead, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("load lead: %v", err)
	}
	if lead.Source != "chat" {
		t.Errorf("expected chat source, got %s", lead.Source)
	}
	if lead.Details.Timeline != data.Timeline || lead.Details.Budget != data.Budget {
		t.Errorf("expected chat details preserved, got %+v", lead.Details)
	}
}
