package exporter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/calebmartins/exportq/internal/common"
)

func TestHTTPEngine_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if r.Header.Get("X-Export-Job-ID") == "" {
			t.Error("missing X-Export-Job-ID header")
		}
		w.Write([]byte(`{"artifact":"s3://bucket/doc.xlsx"}`))
	}))
	defer srv.Close()

	e := NewHTTPEngine(srv.URL, 5*time.Second)
	ctx := common.WithJobID(context.Background(), "job-1")
	out, err := e.Execute(ctx, json.RawMessage(`{"document_id":"abc"}`))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(string(out), "artifact") {
		t.Errorf("unexpected body: %s", out)
	}
}

func TestHTTPEngine_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		code   string
	}{
		{http.StatusRequestTimeout, "TIMEOUT"},
		{http.StatusTooManyRequests, "RATE_LIMITED"},
		{http.StatusInternalServerError, "UNAVAILABLE"},
		{http.StatusBadGateway, "UNAVAILABLE"},
		{http.StatusBadRequest, ""},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tc.status)
		}))
		e := NewHTTPEngine(srv.URL, 5*time.Second)
		_, err := e.Execute(context.Background(), json.RawMessage(`{}`))
		srv.Close()
		if err == nil {
			t.Errorf("status %d: want error", tc.status)
			continue
		}
		if tc.code != "" && !strings.Contains(err.Error(), tc.code) {
			t.Errorf("status %d: error %q missing code %s", tc.status, err, tc.code)
		}
		if tc.code == "" {
			for _, c := range []string{"TIMEOUT", "RATE_LIMITED", "UNAVAILABLE"} {
				if strings.Contains(err.Error(), c) {
					t.Errorf("status %d: error %q carries retryable code %s", tc.status, err, c)
				}
			}
		}
	}
}

func TestHTTPEngine_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	e := NewHTTPEngine(srv.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := e.Execute(ctx, json.RawMessage(`{}`)); err == nil {
		t.Fatal("want error on expired context")
	}
}
