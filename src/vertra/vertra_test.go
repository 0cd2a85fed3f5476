package vertra

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

func TestValidAction(t *testing.T) {
	var tests = []struct {
		action string
		want   bool
	}{
		{"start", true},
		{"stop", true},
		{"restart", true},
		{"pause", true},
		{"destroy", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			if got := ValidAction(tt.action); got != tt.want {
				t.Errorf("ValidAction(%q) = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

func TestDoUnconfigured(t *testing.T) {
	res := Do(guildconfig.VertraConfig{}, ActionStart)
	if res.OK || res.Err == nil {
		t.Error("unconfigured service must fail")
	}
}

func TestDoUnknownAction(t *testing.T) {
	cfg := guildconfig.VertraConfig{BaseURL: "https://host", ServiceID: "svc", APIKey: "k"}
	res := Do(cfg, "explode")
	if res.OK || res.Err == nil {
		t.Error("unknown action must fail")
	}
}

func TestDo(t *testing.T) {
	var gotPath, gotAuth, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := guildconfig.VertraConfig{BaseURL: srv.URL + "/", ServiceID: "svc-1", APIKey: "secret"}
	res := Do(cfg, ActionRestart)
	if !res.OK {
		t.Fatalf("Do failed: %v", res.Err)
	}
	if gotPath != "/services/svc-1/restart" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q", gotMethod)
	}
}

func TestDoErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := guildconfig.VertraConfig{BaseURL: srv.URL, ServiceID: "svc", APIKey: "k"}
	res := Do(cfg, ActionStop)
	if res.OK {
		t.Error("502 should not report OK")
	}
	if res.Status != http.StatusBadGateway {
		t.Errorf("Status = %d", res.Status)
	}
}
