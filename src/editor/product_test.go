package editor

import (
	"testing"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

func TestSnapshotProductIsolation(t *testing.T) {
	guildconfig.Init(store.NewMemory())

	var id string
	guildconfig.Mutate("g1", func(cfg *guildconfig.GuildConfig) {
		cfg.TempProduct = &guildconfig.ProductDefinition{Title: "VPS Basic", Price: 25, Stock: 3}
		id = snapshotProduct(cfg)
	})
	if id == "" {
		t.Fatal("no product ID assigned")
	}

	// Keep editing the buffer after publishing.
	guildconfig.Mutate("g1", func(cfg *guildconfig.GuildConfig) {
		cfg.TempProduct.Title = "VPS Turbo"
		cfg.TempProduct.Price = 99
	})

	got, ok := guildconfig.GetOrCreate("g1").Products[id]
	if !ok {
		t.Fatalf("product %s missing from catalog", id)
	}
	if got.Title != "VPS Basic" || got.Price != 25 || got.Stock != 3 {
		t.Errorf("published product changed after buffer edits: %+v", got)
	}
}

func TestSnapshotProductDistinctIDs(t *testing.T) {
	guildconfig.Init(store.NewMemory())

	ids := make(map[string]bool)
	guildconfig.Mutate("g1", func(cfg *guildconfig.GuildConfig) {
		cfg.TempProduct = &guildconfig.ProductDefinition{Title: "VPS"}
		for n := 0; n < 5; n++ {
			ids[snapshotProduct(cfg)] = true
		}
	})
	if len(ids) != 5 {
		t.Errorf("got %d distinct IDs, want 5", len(ids))
	}
}
