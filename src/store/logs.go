package store

import (
	"encoding/json"
	"errors"
)

// ErrNotFound reports a key with no stored document.
var ErrNotFound = errors.New("store: key not found")

// Audit log keys. Each holds a flat, ever-growing JSON array of timestamped
// records, kept both for diagnostics and as a recovery source for guild
// configuration on cold start.
const (
	LogPanel        = "logs/panel"
	LogCategory     = "logs/category"
	LogSupportRoles = "logs/support_roles"
	LogAutoRoles    = "logs/auto_roles"
	LogWelcome      = "logs/welcome"
	LogLeave        = "logs/leave"
	LogFailures     = "logs/failures"
	LogClaims       = "logs/claims"
	LogTickets      = "logs/tickets"
	LogCommands     = "logs/commands"
)

// AppendLog appends one entry to the JSON array stored at key. A missing or
// malformed array is treated as empty.
func AppendLog(s Store, key string, entry any) error {
	var arr []json.RawMessage
	ReadJSON(s, key, &arr)

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	arr = append(arr, raw)
	return WriteJSON(s, key, arr)
}

// ReadLog decodes the full array stored at key into out (a pointer to a
// slice). Malformed data decodes as empty.
func ReadLog(s Store, key string, out any) {
	ReadJSON(s, key, out)
}
