// Package tasks runs the recurring maintenance jobs: audit log compaction
// and the MongoDB config mirror refresh.
package tasks

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/jasonlvhit/gocron"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/db"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

// maxLogEntries bounds every audit log after compaction.
const maxLogEntries = 500

var dataStore store.Store

// Start registers the maintenance schedule and launches the scheduler
// goroutine.
func Start(s store.Store) {
	dataStore = s

	if err := gocron.Every(1).Day().At("03:00").Do(compactLogs); err != nil {
		log.Printf("[Tasks] schedule compaction: %v", err)
	}
	if err := gocron.Every(1).Hour().Do(refreshMirror); err != nil {
		log.Printf("[Tasks] schedule mirror: %v", err)
	}

	go func() {
		<-gocron.Start()
	}()
	log.Println("[Tasks] maintenance schedule started")
}

// Stop clears the schedule, for shutdown.
func Stop() {
	gocron.Clear()
}

func compactLogs() {
	compact(dataStore)
}

// compact trims every audit log to its newest maxLogEntries entries.
func compact(st store.Store) {
	keys := []string{
		store.LogPanel, store.LogCategory, store.LogSupportRoles,
		store.LogAutoRoles, store.LogWelcome, store.LogLeave,
		store.LogFailures, store.LogClaims, store.LogTickets, store.LogCommands,
	}
	for _, key := range keys {
		var arr []json.RawMessage
		store.ReadLog(st, key, &arr)
		if len(arr) <= maxLogEntries {
			continue
		}
		trimmed := arr[len(arr)-maxLogEntries:]
		if err := store.WriteJSON(st, key, trimmed); err != nil {
			log.Printf("[Tasks] compact %s: %v", key, err)
			continue
		}
		log.Printf("[Tasks] compacted %s: %d -> %d entries", key, len(arr), len(trimmed))
	}
}

func refreshMirror() {
	if !db.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	db.MirrorConfigs(ctx)
}
