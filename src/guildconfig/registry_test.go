package guildconfig

import (
	"strconv"
	"sync"
	"testing"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

func TestGetOrCreateDefaults(t *testing.T) {
	Init(store.NewMemory())

	cfg := GetOrCreate("g1")
	if cfg.Panel.Title != "Support Yoloo Cloud" {
		t.Errorf("Panel.Title = %q", cfg.Panel.Title)
	}
	if cfg.Panel.Color != DefaultColor {
		t.Errorf("Panel.Color = %#x, want %#x", cfg.Panel.Color, DefaultColor)
	}
	if len(cfg.Panel.Options) != 3 {
		t.Fatalf("len(Options) = %d, want 3", len(cfg.Panel.Options))
	}
	if cfg.Panel.Options[0].Value != "compra" {
		t.Errorf("Options[0].Value = %q", cfg.Panel.Options[0].Value)
	}
	if cfg.Products == nil {
		t.Error("Products map not initialized")
	}
}

func TestGetOrCreateReturnsIsolatedCopy(t *testing.T) {
	Init(store.NewMemory())

	a := GetOrCreate("g1")
	a.CategoryID = "123"
	a.Products["stray"] = ProductDefinition{Title: "Stray"}
	a.SupportRoles = append(a.SupportRoles, "r-stray")

	b := GetOrCreate("g1")
	if b.CategoryID != "" {
		t.Error("writes on a GetOrCreate copy leaked into the registry")
	}
	if _, ok := b.Products["stray"]; ok {
		t.Error("Products map is shared between copies")
	}
	if len(b.SupportRoles) != 0 {
		t.Errorf("SupportRoles = %v, want empty", b.SupportRoles)
	}
}

func TestMutatePersistsAndIsVisible(t *testing.T) {
	st := store.NewMemory()
	Init(st)

	Mutate("g1", func(cfg *GuildConfig) {
		cfg.Panel.Title = "Custom Title"
		cfg.SupportRoles = []string{"r1", "r2"}
		cfg.Products["p1"] = ProductDefinition{Title: "VPS", Price: 25, Stock: 3}
	})

	got := GetOrCreate("g1")
	if got.Panel.Title != "Custom Title" {
		t.Errorf("Panel.Title = %q", got.Panel.Title)
	}

	// Simulate a restart on the same store.
	Init(st)
	got = GetOrCreate("g1")
	if got.Panel.Title != "Custom Title" {
		t.Errorf("Panel.Title after reload = %q", got.Panel.Title)
	}
	if len(got.SupportRoles) != 2 {
		t.Errorf("SupportRoles after reload = %v", got.SupportRoles)
	}
	if p, ok := got.Products["p1"]; !ok || p.Price != 25 {
		t.Errorf("Products after reload = %v", got.Products)
	}
}

// Mutations and reads race from gateway handler goroutines; run with -race.
func TestConcurrentMutateAndRead(t *testing.T) {
	Init(store.NewMemory())

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				Mutate("g1", func(cfg *GuildConfig) {
					id := strconv.Itoa(w*100 + n)
					cfg.Products[id] = ProductDefinition{Title: "P" + id}
					cfg.Panel.Title = "T" + id
				})
			}
		}(w)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				cfg := GetOrCreate("g1")
				for range cfg.Products {
				}
				_ = Snapshot()
			}
		}()
	}
	wg.Wait()

	if got := len(GetOrCreate("g1").Products); got != 400 {
		t.Errorf("len(Products) = %d, want 400", got)
	}
}

func TestBackfillFromLogs(t *testing.T) {
	st := store.NewMemory()

	// Seed legacy audit logs for a guild the main document does not know.
	seed := func(key string, entry any) {
		if err := store.AppendLog(st, key, entry); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}
	seed(store.LogPanel, PanelLogEntry{GuildID: "g1", Panel: PanelDefinition{Title: "Old Panel", PanelType: "default"}})
	seed(store.LogPanel, PanelLogEntry{GuildID: "g1", Panel: PanelDefinition{Title: "Newer Panel", PanelType: "default"}})
	seed(store.LogPanel, PanelLogEntry{GuildID: "other", Panel: PanelDefinition{Title: "Not Mine", PanelType: "default"}})
	seed(store.LogCategory, ChannelLogEntry{GuildID: "g1", ChannelID: "cat-1"})
	seed(store.LogSupportRoles, RolesLogEntry{GuildID: "g1", RoleIDs: []string{"r1"}})

	Init(st)
	cfg := GetOrCreate("g1")
	if cfg.Panel.Title != "Newer Panel" {
		t.Errorf("Panel.Title = %q, want latest log entry to win", cfg.Panel.Title)
	}
	if cfg.CategoryID != "cat-1" {
		t.Errorf("CategoryID = %q", cfg.CategoryID)
	}
	if len(cfg.SupportRoles) != 1 || cfg.SupportRoles[0] != "r1" {
		t.Errorf("SupportRoles = %v", cfg.SupportRoles)
	}
}

func TestPatchPanel(t *testing.T) {
	var tests = []struct {
		name  string
		panel PanelDefinition
		check func(t *testing.T, p PanelDefinition)
	}{
		{
			name:  "empty panel gets defaults",
			panel: PanelDefinition{},
			check: func(t *testing.T, p PanelDefinition) {
				if p.PanelType != "default" {
					t.Errorf("PanelType = %q", p.PanelType)
				}
				if p.SimpleButtonLabel != "Abrir Ticket" {
					t.Errorf("SimpleButtonLabel = %q", p.SimpleButtonLabel)
				}
				if p.Color != DefaultColor {
					t.Errorf("Color = %#x", p.Color)
				}
				if len(p.Options) != 3 {
					t.Errorf("len(Options) = %d", len(p.Options))
				}
			},
		},
		{
			name: "existing values survive",
			panel: PanelDefinition{
				PanelType:         "simple",
				SimpleButtonLabel: "Abrir",
				Color:             0x112233,
				Options:           []PanelOption{{Label: "A", Value: "a"}},
			},
			check: func(t *testing.T, p PanelDefinition) {
				if p.PanelType != "simple" || p.SimpleButtonLabel != "Abrir" || p.Color != 0x112233 {
					t.Errorf("patch overwrote populated fields: %+v", p)
				}
				if len(p.Options) != 1 {
					t.Errorf("len(Options) = %d", len(p.Options))
				}
			},
		},
		{
			name: "options truncated to three",
			panel: PanelDefinition{Options: []PanelOption{
				{Value: "1"}, {Value: "2"}, {Value: "3"}, {Value: "4"},
			}},
			check: func(t *testing.T, p PanelDefinition) {
				if len(p.Options) != 3 {
					t.Errorf("len(Options) = %d, want 3", len(p.Options))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.panel
			patchPanel(&p)
			tt.check(t, p)
		})
	}
}
