package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type testItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/items" {
			t.Errorf("expected /items, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]testItem{{ID: 1, Name: "Widget"}, {ID: 2, Name: "Gadget"}})
	}))
	defer srv.Close()

	a, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := Get[[]testItem](a, context.Background(), Request{Path: "/items", Resource: "items"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if len(resp.Data) != 2 || resp.Data[1].Name != "Gadget" {
		t.Errorf("unexpected data %+v", resp.Data)
	}
}

func TestGet_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"server error", http.StatusInternalServerError, `[]`, IsServerError},
		{"not found", http.StatusNotFound, `[]`, IsNotFound},
		{"no content", http.StatusNoContent, ``, func(err error) bool { return StatusCodeOf(err) == http.StatusNoContent }},
		{"invalid json", http.StatusOK, `{not json`, IsDecode},
		{"empty body", http.StatusOK, ``, IsDecode},
		{"wrong shape", http.StatusOK, `{"id":1}`, IsDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a, err := New(Config{BaseURL: srv.URL})
			if err != nil {
				t.Fatal(err)
			}

			_, err = Get[[]testItem](a, context.Background(), Request{Path: "/items"})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("unexpected error classification: %v", err)
			}
		})
	}
}
