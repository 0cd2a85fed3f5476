package webhook

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidURL(t *testing.T) {
	var tests = []struct {
		name string
		url  string
		want bool
	}{
		{"discord.com webhook", "https://discord.com/api/webhooks/123456/abcDEF_token-123", true},
		{"discordapp.com webhook", "https://discordapp.com/api/webhooks/1/a", true},
		{"http scheme", "http://discord.com/api/webhooks/123/abc", false},
		{"wrong host", "https://example.com/api/webhooks/123/abc", false},
		{"missing token", "https://discord.com/api/webhooks/123/", false},
		{"trailing path", "https://discord.com/api/webhooks/123/abc/extra", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidURL(tt.url); got != tt.want {
				t.Errorf("ValidURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestPost(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	res := Post(srv.URL, Payload{Content: "hello"})
	if !res.OK {
		t.Fatalf("Post failed: %v", res.Err)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
}

func TestPostRejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	res := Post(srv.URL, Payload{Content: "hello"})
	if res.OK {
		t.Error("401 should not report OK")
	}
	if res.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d", res.Status)
	}
	if res.Err == nil {
		t.Error("rejected delivery should carry an error")
	}
}
