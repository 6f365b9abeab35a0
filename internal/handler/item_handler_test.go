package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/foodlinkai/foodlink-backend/internal/model"
	"github.com/foodlinkai/foodlink-backend/internal/repository"
	"github.com/foodlinkai/foodlink-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type stubItemService struct {
	created   []service.CreateItemInput
	listItems []model.Item
	lastLimit int
	failWith  error
}

func (s *stubItemService) Create(_ context.Context, in service.CreateItemInput) (*model.Item, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, service.ErrInvalidTitle
	}
	s.created = append(s.created, in)
	portions := 1
	if in.Portions != nil {
		portions = *in.Portions
	}
	return &model.Item{ID: uint64(len(s.created)), Title: in.Title, Portions: portions}, nil
}

func (s *stubItemService) Get(_ context.Context, id uint64) (*model.Item, error) {
	for i := range s.listItems {
		if s.listItems[i].ID == id {
			return &s.listItems[i], nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *stubItemService) ListActive(_ context.Context, limit int) ([]model.Item, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	s.lastLimit = limit
	if limit >= 0 && limit < len(s.listItems) {
		return s.listItems[:limit], nil
	}
	return s.listItems, nil
}

func doRequest(h echo.HandlerFunc, req *http.Request, pathParams map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range pathParams {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestItemCreateHandler(t *testing.T) {
	svc := &stubItemService{}
	h := NewItemHandler(svc)

	body := `{"title":"Bread loaves","portions":5,"price_cents":0}`
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := doRequest(h.Create, req, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp CreateItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != 1 {
		t.Fatalf("id=%d want 1", resp.ID)
	}
	if got := svc.created[0]; got.Portions == nil || *got.Portions != 5 {
		t.Fatalf("portions not carried through: %+v", got)
	}
}

func TestItemCreateHandlerValidation(t *testing.T) {
	h := NewItemHandler(&stubItemService{})
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"portions":2}`},
		{"blank title", `{"title":"  "}`},
		{"malformed json", `{"title":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := doRequest(h.Create, req, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("code=%d want 400", rec.Code)
			}
		})
	}
}

func TestItemCreateHandlerStoreDown(t *testing.T) {
	h := NewItemHandler(&stubItemService{failWith: repository.ErrDBNotReady})
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"title":"Bread"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := doRequest(h.Create, req, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("code=%d want 503", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "database not initialized") {
		t.Fatalf("internal cause leaked to caller: %s", rec.Body.String())
	}
}

func TestItemListHandler(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)
	svc := &stubItemService{listItems: []model.Item{
		{ID: 2, Title: "Bread loaves", Portions: 5, Status: model.ItemStatusActive, CreatedAt: now},
		{ID: 1, Title: "Fruit boxes", Portions: 1, Status: model.ItemStatusActive, CreatedAt: earlier},
	}}
	h := NewItemHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/items?limit=10", nil)
	rec := doRequest(h.List, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d", rec.Code)
	}
	if svc.lastLimit != 10 {
		t.Fatalf("limit=%d want 10", svc.lastLimit)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len=%d", len(items))
	}
	if items[0]["title"] != "Bread loaves" || items[0]["portions"] != float64(5) {
		t.Fatalf("first item=%v", items[0])
	}
	a, _ := time.Parse(time.RFC3339, items[0]["created_at"].(string))
	b, _ := time.Parse(time.RFC3339, items[1]["created_at"].(string))
	if a.Before(b) {
		t.Fatalf("not ordered newest first")
	}
}

func TestItemListHandlerLimits(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantLimit int
	}{
		{"absent uses default", "", http.StatusOK, -1},
		{"zero", "?limit=0", http.StatusOK, 0},
		{"negative", "?limit=-5", http.StatusBadRequest, 0},
		{"non-numeric", "?limit=abc", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubItemService{}
			h := NewItemHandler(svc)
			req := httptest.NewRequest(http.MethodGet, "/items"+tt.query, nil)
			rec := doRequest(h.List, req, nil)
			if rec.Code != tt.wantCode {
				t.Fatalf("code=%d want %d", rec.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusOK && svc.lastLimit != tt.wantLimit {
				t.Fatalf("limit=%d want %d", svc.lastLimit, tt.wantLimit)
			}
		})
	}
}

func TestItemGetHandler(t *testing.T) {
	svc := &stubItemService{listItems: []model.Item{{ID: 1, Title: "Bread loaves", Portions: 5}}}
	h := NewItemHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
	rec := doRequest(h.Get, req, map[string]string{"id": "1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/items/99", nil)
	rec = doRequest(h.Get, req, map[string]string{"id": "99"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code=%d want 404", rec.Code)
	}
}
