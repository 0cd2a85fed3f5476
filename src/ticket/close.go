package ticket

import (
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// CloseDelay is how long a confirmed close waits before the channel goes
// away, so the confirmation is actually visible.
const CloseDelay = 3 * time.Second

var (
	timersMu sync.Mutex
	timers   = make(map[string]*time.Timer)
)

// ScheduleDelete arranges for channelID to be deleted after delay. A second
// schedule for the same channel replaces the first. "Channel already gone"
// counts as success.
func ScheduleDelete(s *discordgo.Session, channelID string, delay time.Duration, reason string) {
	timersMu.Lock()
	defer timersMu.Unlock()

	if t, ok := timers[channelID]; ok {
		t.Stop()
	}
	timers[channelID] = time.AfterFunc(delay, func() {
		timersMu.Lock()
		delete(timers, channelID)
		timersMu.Unlock()

		if _, err := s.ChannelDelete(channelID); err != nil {
			if restErr, ok := err.(*discordgo.RESTError); ok && restErr.Message != nil &&
				restErr.Message.Code == discordgo.ErrCodeUnknownChannel {
				return
			}
			log.Printf("[Ticket] delayed delete of %s (%s): %v", channelID, reason, err)
		}
	})
}

// CancelDelete drops a pending deletion, e.g. when a purchase completed
// before the cart expired. Reports whether a timer was pending.
func CancelDelete(channelID string) bool {
	timersMu.Lock()
	defer timersMu.Unlock()

	t, ok := timers[channelID]
	if ok {
		t.Stop()
		delete(timers, channelID)
	}
	return ok
}

// Forget clears any pending timer for a channel deleted out-of-band.
func Forget(channelID string) {
	CancelDelete(channelID)
}
