// Package webhook posts embed payloads to Discord webhooks. Failures come
// back as values, never panics; callers pick the user-facing message.
package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/bwmarrin/discordgo"
)

var urlPattern = regexp.MustCompile(`^https://(discord\.com|discordapp\.com)/api/webhooks/\d+/[a-zA-Z0-9_-]+$`)

// Result reports a webhook delivery attempt.
type Result struct {
	OK     bool
	Status int
	Err    error
}

// Payload is the body posted to the webhook endpoint.
type Payload struct {
	Content string                    `json:"content,omitempty"`
	Embeds  []*discordgo.MessageEmbed `json:"embeds,omitempty"`
}

var client = &http.Client{Timeout: 15 * time.Second}

// ValidURL reports whether s looks like a Discord webhook URL.
func ValidURL(s string) bool {
	return urlPattern.MatchString(s)
}

// Post delivers the payload to url.
func Post(url string, payload Payload) Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Err: err}
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return Result{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{Status: resp.StatusCode, Err: fmt.Errorf("webhook: status %d", resp.StatusCode)}
	}
	return Result{OK: true, Status: resp.StatusCode}
}
