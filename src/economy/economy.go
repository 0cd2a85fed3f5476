// Package economy keeps the per-user YC balance ledger: one daily claim every
// 24 hours, a ranking, and administrative adjustments.
package economy

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

// DailyAmount is the fixed grant of one daily claim.
const DailyAmount = 1500

// ClaimCooldown is the window between two daily claims.
const ClaimCooldown = 24 * time.Hour

const usersKey = "users"

// Claim is one append-only ledger entry.
type Claim struct {
	Type      string `json:"type"` // "daily" or "admin_adjust"
	Amount    int    `json:"amount"`
	ServerID  string `json:"serverId"`
	ClaimedAt string `json:"claimedAt"`
}

// UserRecord holds one user's balance and claim history.
type UserRecord struct {
	UserID      string  `json:"userId"`
	Balance     int     `json:"balance"`
	LastClaimAt string  `json:"lastClaimAt,omitempty"`
	Claims      []Claim `json:"claims"`
}

// ClaimResult reports the outcome of a daily claim attempt.
type ClaimResult struct {
	Granted   bool
	Amount    int
	Balance   int
	Remaining time.Duration
}

var (
	mu        sync.Mutex
	users     map[string]*UserRecord
	dataStore store.Store
)

// Init wires the ledger to its backing store and loads the persisted records.
func Init(s store.Store) {
	mu.Lock()
	defer mu.Unlock()
	dataStore = s
	users = make(map[string]*UserRecord)
	store.ReadJSON(s, usersKey, &users)
}

func record(userID string) *UserRecord {
	rec, ok := users[userID]
	if !ok {
		rec = &UserRecord{UserID: userID}
		users[userID] = rec
	}
	return rec
}

func save() {
	if err := store.WriteJSON(dataStore, usersKey, users); err != nil {
		log.Printf("[Economy] save failed: %v", err)
	}
}

// ClaimDaily grants the daily amount if the cooldown has elapsed, otherwise
// reports the remaining wait without mutating anything.
func ClaimDaily(userID, guildID string, now time.Time) ClaimResult {
	mu.Lock()
	defer mu.Unlock()

	rec := record(userID)
	if rec.LastClaimAt != "" {
		last, err := time.Parse(time.RFC3339, rec.LastClaimAt)
		if err == nil {
			if remaining := ClaimCooldown - now.Sub(last); remaining > 0 {
				return ClaimResult{Granted: false, Balance: rec.Balance, Remaining: remaining}
			}
		}
	}

	rec.Balance += DailyAmount
	rec.LastClaimAt = now.UTC().Format(time.RFC3339)
	entry := Claim{Type: "daily", Amount: DailyAmount, ServerID: guildID, ClaimedAt: rec.LastClaimAt}
	rec.Claims = append(rec.Claims, entry)
	save()
	if err := store.AppendLog(dataStore, store.LogClaims, entry); err != nil {
		log.Printf("[Economy] claim log append: %v", err)
	}
	return ClaimResult{Granted: true, Amount: DailyAmount, Balance: rec.Balance}
}

// Balance returns a user's current balance without creating a record.
func Balance(userID string) int {
	mu.Lock()
	defer mu.Unlock()
	if rec, ok := users[userID]; ok {
		return rec.Balance
	}
	return 0
}

// AddBalance applies an administrative adjustment. Amount must be positive.
func AddBalance(userID string, amount int, guildID string) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("economy: invalid amount %d", amount)
	}
	mu.Lock()
	defer mu.Unlock()

	rec := record(userID)
	rec.Balance += amount
	rec.Claims = append(rec.Claims, Claim{
		Type:      "admin_adjust",
		Amount:    amount,
		ServerID:  guildID,
		ClaimedAt: time.Now().UTC().Format(time.RFC3339),
	})
	save()
	return rec.Balance, nil
}

// RankEntry is one row of the balance ranking.
type RankEntry struct {
	UserID  string
	Balance int
}

// Ranking returns the top n users by balance, richest first.
func Ranking(n int) []RankEntry {
	mu.Lock()
	defer mu.Unlock()

	entries := make([]RankEntry, 0, len(users))
	for id, rec := range users {
		entries = append(entries, RankEntry{UserID: id, Balance: rec.Balance})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Balance != entries[j].Balance {
			return entries[i].Balance > entries[j].Balance
		}
		return entries[i].UserID < entries[j].UserID
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// FormatCooldown renders a remaining cooldown the way the bot announces it.
func FormatCooldown(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
