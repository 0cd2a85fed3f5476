package economy

import (
	"testing"
	"time"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

func TestClaimDaily(t *testing.T) {
	Init(store.NewMemory())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	res := ClaimDaily("u1", "g1", now)
	if !res.Granted {
		t.Fatal("first claim should be granted")
	}
	if res.Amount != DailyAmount || res.Balance != DailyAmount {
		t.Errorf("amount/balance = %d/%d", res.Amount, res.Balance)
	}
}

func TestClaimDailyCooldown(t *testing.T) {
	Init(store.NewMemory())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ClaimDaily("u1", "g1", now)

	var tests = []struct {
		name    string
		at      time.Time
		granted bool
	}{
		{"immediately after", now.Add(time.Minute), false},
		{"just inside the window", now.Add(ClaimCooldown - time.Minute), false},
		{"after the window", now.Add(ClaimCooldown + time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Balance("u1")
			res := ClaimDaily("u1", "g1", tt.at)
			if res.Granted != tt.granted {
				t.Fatalf("Granted = %v, want %v", res.Granted, tt.granted)
			}
			if !tt.granted {
				if Balance("u1") != before {
					t.Error("denied claim must not change the balance")
				}
				if res.Remaining <= 0 {
					t.Error("denied claim should report remaining wait")
				}
			}
		})
	}
}

func TestClaimDailyPersists(t *testing.T) {
	st := store.NewMemory()
	Init(st)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ClaimDaily("u1", "g1", now)

	// Restart on the same store.
	Init(st)
	if Balance("u1") != DailyAmount {
		t.Errorf("Balance after reload = %d", Balance("u1"))
	}
	res := ClaimDaily("u1", "g1", now.Add(time.Hour))
	if res.Granted {
		t.Error("cooldown must survive a restart")
	}
}

func TestAddBalance(t *testing.T) {
	Init(store.NewMemory())

	if _, err := AddBalance("u1", 0, "g1"); err == nil {
		t.Error("zero amount should be rejected")
	}
	if _, err := AddBalance("u1", -5, "g1"); err == nil {
		t.Error("negative amount should be rejected")
	}
	got, err := AddBalance("u1", 100, "g1")
	if err != nil {
		t.Fatalf("AddBalance: %v", err)
	}
	if got != 100 {
		t.Errorf("balance = %d", got)
	}
}

func TestRanking(t *testing.T) {
	Init(store.NewMemory())
	AddBalance("low", 10, "g1")
	AddBalance("high", 300, "g1")
	AddBalance("mid", 200, "g1")

	entries := Ranking(2)
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].UserID != "high" || entries[1].UserID != "mid" {
		t.Errorf("order = %v", entries)
	}
}

func TestRankingTieBreaksByUserID(t *testing.T) {
	Init(store.NewMemory())
	AddBalance("b", 100, "g1")
	AddBalance("a", 100, "g1")

	entries := Ranking(10)
	if entries[0].UserID != "a" {
		t.Errorf("tie should order by user ID, got %v", entries)
	}
}

func TestFormatCooldown(t *testing.T) {
	var tests = []struct {
		name string
		d    time.Duration
		want string
	}{
		{"hours minutes seconds", 3*time.Hour + 25*time.Minute + 9*time.Second, "3h 25m 9s"},
		{"seconds only", 42 * time.Second, "0h 0m 42s"},
		{"round full day", 24 * time.Hour, "24h 0m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCooldown(tt.d); got != tt.want {
				t.Errorf("FormatCooldown(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
