package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nvoloshin/prepterm/internal/model"
)

func TestLoginReturnsTokenPair(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["email"] != "ada@example.com" || req["password"] != "hunter2" {
			t.Errorf("credentials = %v", req)
		}
		_, _ = w.Write([]byte(`{"access_token": "a1", "refresh_token": "r1"}`))
	}))
	defer server.Close()

	tokens, err := NewClient(server.URL).Login(context.Background(), "ada@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tokens.Access != "a1" || tokens.Refresh != "r1" {
		t.Fatalf("tokens = %+v", tokens)
	}
}

func TestExpiredTokenIsRefreshedAndRetried(t *testing.T) {
	var metricsCalls, refreshCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/metrics":
			metricsCalls++
			if r.Header.Get("Authorization") != "Bearer fresh-access" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"improvementRate": 4.0}`))
		case "/api/auth/refresh":
			refreshCalls++
			var req map[string]string
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode refresh request: %v", err)
			}
			if req["refresh_token"] != "refresh-1" {
				t.Errorf("refresh_token = %q", req["refresh_token"])
			}
			_, _ = w.Write([]byte(`{"access_token": "fresh-access", "refresh_token": "refresh-2"}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	var saved model.TokenPair
	client := NewClient(server.URL,
		WithToken("stale-access"),
		WithRefresh("refresh-1", func(tokens model.TokenPair) { saved = tokens }),
	)

	rate, err := client.FetchImprovementRate(context.Background())
	if err != nil {
		t.Fatalf("fetch after refresh: %v", err)
	}
	if rate != 4.0 {
		t.Fatalf("rate = %v", rate)
	}
	if metricsCalls != 2 || refreshCalls != 1 {
		t.Fatalf("metrics calls = %d, refresh calls = %d", metricsCalls, refreshCalls)
	}
	if saved.Access != "fresh-access" || saved.Refresh != "refresh-2" {
		t.Fatalf("persisted tokens = %+v", saved)
	}
}

func TestFailedRefreshSurfacesOriginalError(t *testing.T) {
	var refreshCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh" {
			refreshCalls++
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL,
		WithToken("stale-access"),
		WithRefresh("refresh-1", nil),
	)
	_, err := client.FetchImprovementRate(context.Background())
	if err == nil || !strings.Contains(err.Error(), "status 401") {
		t.Fatalf("expected the original 401 error, got %v", err)
	}
	if refreshCalls != 1 {
		t.Fatalf("refresh calls = %d, want exactly one attempt", refreshCalls)
	}
}

func TestNoRefreshWithoutRefreshToken(t *testing.T) {
	var refreshCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh" {
			refreshCalls++
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, WithToken("stale-access"))
	if _, err := client.FetchImprovementRate(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if refreshCalls != 0 {
		t.Fatalf("refresh calls = %d, want none", refreshCalls)
	}
}
