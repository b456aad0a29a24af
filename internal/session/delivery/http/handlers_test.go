package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"listing-directory/internal/draft"
	"listing-directory/internal/listing"
	"listing-directory/internal/listing/repository"
	"listing-directory/internal/middleware"
	"listing-directory/internal/model"
	"listing-directory/internal/session"
	sessionHTTP "listing-directory/internal/session/delivery/http"
	"listing-directory/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockSession struct {
	snapshot      session.Snapshot
	setFilters    func(in session.FilterInput) session.Snapshot
	updateDraft   func(fields map[string]string) error
	resetCalls    int
	submit        func(ctx context.Context) (model.Listing, error)
	remove        func(ctx context.Context, id string) error
	reload        func(ctx context.Context) error
	detail        func(ctx context.Context, id string) (model.Listing, error)
	subscriptions chan session.Snapshot
}

func (m *mockSession) Snapshot() session.Snapshot { return m.snapshot }

func (m *mockSession) SetFilters(in session.FilterInput) session.Snapshot {
	if m.setFilters != nil {
		return m.setFilters(in)
	}
	return m.snapshot
}

func (m *mockSession) UpdateDraft(fields map[string]string) error {
	if m.updateDraft != nil {
		return m.updateDraft(fields)
	}
	return nil
}

func (m *mockSession) ResetDraft() { m.resetCalls++ }

func (m *mockSession) Submit(ctx context.Context) (model.Listing, error) {
	if m.submit != nil {
		return m.submit(ctx)
	}
	return model.Listing{}, nil
}

func (m *mockSession) Remove(ctx context.Context, id string) error {
	if m.remove != nil {
		return m.remove(ctx, id)
	}
	return nil
}

func (m *mockSession) Reload(ctx context.Context) error {
	if m.reload != nil {
		return m.reload(ctx)
	}
	return nil
}

func (m *mockSession) Detail(ctx context.Context, id string) (model.Listing, error) {
	if m.detail != nil {
		return m.detail(ctx, id)
	}
	return model.Listing{}, nil
}

func (m *mockSession) Subscribe() (<-chan session.Snapshot, func()) {
	return m.subscriptions, func() {}
}

// ── Helpers ────────────────────────────────────────────────────────────────

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Errors    []string        `json:"errors"`
}

func newRouter(s *mockSession) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	h := sessionHTTP.New(l, s)
	sessionHTTP.RegisterRoutes(r.Group("/api/v1/session"), h, middleware.New(l, middleware.Config{}))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return w.Code, env
}

func baseSnapshot() session.Snapshot {
	minPrice := 100.0
	return session.Snapshot{
		Version:      3,
		Listings:     []model.Listing{{ID: "a1", Title: "Loft", Price: 250, City: "Paris"}},
		ReadStatus:   model.Idle(),
		ActionStatus: model.Idle(),
		Filters:      model.FilterCriteria{City: "Paris", MinPrice: &minPrice},
	}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestGet(t *testing.T) {
	r := newRouter(&mockSession{snapshot: baseSnapshot()})

	code, env := do(t, r, http.MethodGet, "/api/v1/session", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	var data struct {
		Version    uint64 `json:"version"`
		Listings   []struct{ ID string } `json:"listings"`
		ReadStatus struct {
			State string `json:"state"`
		} `json:"read_status"`
		Filters struct {
			City     string `json:"city"`
			MinPrice string `json:"min_price"`
			MaxPrice string `json:"max_price"`
		} `json:"filters"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Version != 3 || len(data.Listings) != 1 || data.Listings[0].ID != "a1" {
		t.Errorf("unexpected snapshot: %+v", data)
	}
	if data.ReadStatus.State != "idle" {
		t.Errorf("read state = %q, want idle", data.ReadStatus.State)
	}
	if data.Filters.MinPrice != "100" || data.Filters.MaxPrice != "" {
		t.Errorf("filters = %+v, want min 100 and no max", data.Filters)
	}
}

func TestSetFilters(t *testing.T) {
	t.Run("StringsAndNumbers", func(t *testing.T) {
		var got session.FilterInput
		s := &mockSession{snapshot: baseSnapshot()}
		s.setFilters = func(in session.FilterInput) session.Snapshot {
			got = in
			return s.snapshot
		}
		r := newRouter(s)

		code, _ := do(t, r, http.MethodPut, "/api/v1/session/filters", `{"city":"Lyon","min_price":150000,"max_price":null}`)
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		want := session.FilterInput{City: "Lyon", MinPrice: "150000"}
		if got != want {
			t.Errorf("input = %+v, want %+v", got, want)
		}
	})

	t.Run("MalformedBody", func(t *testing.T) {
		r := newRouter(&mockSession{snapshot: baseSnapshot()})
		code, _ := do(t, r, http.MethodPut, "/api/v1/session/filters", `{"city":`)
		if code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", code)
		}
	})
}

func TestUpdateDraft(t *testing.T) {
	t.Run("Applied", func(t *testing.T) {
		var got map[string]string
		r := newRouter(&mockSession{
			snapshot: baseSnapshot(),
			updateDraft: func(fields map[string]string) error {
				got = fields
				return nil
			},
		})

		code, _ := do(t, r, http.MethodPatch, "/api/v1/session/draft", `{"title":"Loft","price":"12abc"}`)
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if got["title"] != "Loft" || got["price"] != "12abc" {
			t.Errorf("fields = %v", got)
		}
	})

	t.Run("UnknownField", func(t *testing.T) {
		r := newRouter(&mockSession{
			snapshot: baseSnapshot(),
			updateDraft: func(fields map[string]string) error {
				return fmt.Errorf("%w: %q", draft.ErrUnknownField, "colour")
			},
		})

		code, _ := do(t, r, http.MethodPatch, "/api/v1/session/draft", `{"colour":"red"}`)
		if code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", code)
		}
	})
}

func TestResetDraft(t *testing.T) {
	s := &mockSession{snapshot: baseSnapshot()}
	r := newRouter(s)

	code, _ := do(t, r, http.MethodDelete, "/api/v1/session/draft", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if s.resetCalls != 1 {
		t.Errorf("reset calls = %d, want 1", s.resetCalls)
	}
}

func TestSubmit(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		r := newRouter(&mockSession{
			snapshot: baseSnapshot(),
			submit: func(ctx context.Context) (model.Listing, error) {
				return model.Listing{ID: "srv-1", Title: "Loft"}, nil
			},
		})

		code, env := do(t, r, http.MethodPost, "/api/v1/session/draft/submit", "")
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		var data struct {
			Listing struct{ ID string } `json:"listing"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if data.Listing.ID != "srv-1" {
			t.Errorf("listing id = %q, want srv-1", data.Listing.ID)
		}
	})

	t.Run("InvalidDraft", func(t *testing.T) {
		r := newRouter(&mockSession{
			snapshot: baseSnapshot(),
			submit: func(ctx context.Context) (model.Listing, error) {
				return model.Listing{}, &listing.ValidationError{Fields: []string{model.FieldTitle, model.FieldCity}}
			},
		})

		code, env := do(t, r, http.MethodPost, "/api/v1/session/draft/submit", "")
		if code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", code)
		}
		if len(env.Errors) != 2 || env.Errors[0] != model.FieldTitle {
			t.Errorf("errors = %v", env.Errors)
		}
	})

	t.Run("Rejected", func(t *testing.T) {
		s := &mockSession{snapshot: baseSnapshot()}
		s.snapshot.ActionStatus = model.Failed("price must be positive")
		s.submit = func(ctx context.Context) (model.Listing, error) {
			return model.Listing{}, fmt.Errorf("%w: 422", repository.ErrService)
		}
		r := newRouter(s)

		code, env := do(t, r, http.MethodPost, "/api/v1/session/draft/submit", "")
		if code != http.StatusBadGateway {
			t.Fatalf("status = %d, want 502", code)
		}
		if env.Message != "price must be positive" {
			t.Errorf("message = %q, want the action status message", env.Message)
		}
	})
}

func TestRefresh(t *testing.T) {
	t.Run("Superseded", func(t *testing.T) {
		r := newRouter(&mockSession{
			snapshot: baseSnapshot(),
			reload:   func(ctx context.Context) error { return listing.ErrSuperseded },
		})

		if code, _ := do(t, r, http.MethodPost, "/api/v1/session/refresh", ""); code != http.StatusOK {
			t.Errorf("status = %d, want 200", code)
		}
	})

	t.Run("Unreachable", func(t *testing.T) {
		s := &mockSession{snapshot: baseSnapshot()}
		s.snapshot.ReadStatus = model.Failed(listing.MsgFetchFailed)
		s.reload = func(ctx context.Context) error {
			return fmt.Errorf("%w: connection refused", repository.ErrTransport)
		}
		r := newRouter(s)

		code, env := do(t, r, http.MethodPost, "/api/v1/session/refresh", "")
		if code != http.StatusBadGateway {
			t.Fatalf("status = %d, want 502", code)
		}
		if env.Message != listing.MsgFetchFailed {
			t.Errorf("message = %q, want %q", env.Message, listing.MsgFetchFailed)
		}
	})
}

func TestDetail(t *testing.T) {
	r := newRouter(&mockSession{
		snapshot: baseSnapshot(),
		detail: func(ctx context.Context, id string) (model.Listing, error) {
			if id == "a1" {
				return model.Listing{ID: "a1", Title: "Loft"}, nil
			}
			return model.Listing{}, fmt.Errorf("get %s: %w", id, listing.ErrNotFound)
		},
	})

	t.Run("Found", func(t *testing.T) {
		code, env := do(t, r, http.MethodGet, "/api/v1/session/listings/a1", "")
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if !strings.Contains(string(env.Data), `"title":"Loft"`) {
			t.Errorf("data = %s", env.Data)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		if code, _ := do(t, r, http.MethodGet, "/api/v1/session/listings/zz", ""); code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", code)
		}
	})
}

func TestDelete(t *testing.T) {
	var removed string
	r := newRouter(&mockSession{
		snapshot: baseSnapshot(),
		remove: func(ctx context.Context, id string) error {
			removed = id
			return nil
		},
	})

	code, _ := do(t, r, http.MethodDelete, "/api/v1/session/listings/a1", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if removed != "a1" {
		t.Errorf("removed = %q, want a1", removed)
	}
}

func TestStream(t *testing.T) {
	updates := make(chan session.Snapshot, 2)
	r := newRouter(&mockSession{snapshot: baseSnapshot(), subscriptions: updates})
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/session/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	snap := baseSnapshot()
	snap.Version = 7
	updates <- snap

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got struct {
		Version uint64 `json:"version"`
	}
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Version != 7 {
		t.Errorf("version = %d, want 7", got.Version)
	}

	close(updates)
	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("err = %v, want going-away close", err)
	}
}
