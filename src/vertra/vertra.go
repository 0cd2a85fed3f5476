// Package vertra drives the hosting provider's service lifecycle API:
// start/stop/restart/pause a service through authenticated POSTs.
package vertra

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

// Valid lifecycle actions.
const (
	ActionStart   = "start"
	ActionStop    = "stop"
	ActionRestart = "restart"
	ActionPause   = "pause"
)

// Result reports one lifecycle call.
type Result struct {
	OK     bool
	Status int
	Err    error
}

var client = &http.Client{Timeout: 30 * time.Second}

// ValidAction reports whether action is one of the supported verbs.
func ValidAction(action string) bool {
	switch action {
	case ActionStart, ActionStop, ActionRestart, ActionPause:
		return true
	}
	return false
}

// Do performs one lifecycle action against the configured service.
func Do(cfg guildconfig.VertraConfig, action string) Result {
	if cfg.BaseURL == "" || cfg.ServiceID == "" || cfg.APIKey == "" {
		return Result{Err: fmt.Errorf("vertra: not configured")}
	}
	if !ValidAction(action) {
		return Result{Err: fmt.Errorf("vertra: unknown action %q", action)}
	}

	url := fmt.Sprintf("%s/services/%s/%s", strings.TrimRight(cfg.BaseURL, "/"), cfg.ServiceID, action)
	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return Result{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return Result{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{Status: resp.StatusCode, Err: fmt.Errorf("vertra: %s returned %d", action, resp.StatusCode)}
	}
	return Result{OK: true, Status: resp.StatusCode}
}
