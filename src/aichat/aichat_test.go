package aichat

import (
	"testing"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

func TestChannelRegistries(t *testing.T) {
	guildconfig.Init(store.NewMemory())

	RegisterAIChannel("g1", "c1")
	RegisterAIChannel("g1", "c1") // duplicate is a no-op
	RegisterUploadChannel("g1", "c2")

	if !IsAIChannel("g1", "c1") {
		t.Error("c1 should be an AI channel")
	}
	if IsAIChannel("g1", "c2") {
		t.Error("c2 is an upload channel, not an AI channel")
	}
	if !IsUploadChannel("g1", "c2") {
		t.Error("c2 should be an upload channel")
	}
	if IsAIChannel("g2", "c1") {
		t.Error("registries must be per guild")
	}

	cfg := guildconfig.GetOrCreate("g1")
	if len(cfg.AIChannels) != 1 {
		t.Errorf("duplicate registration grew the list: %v", cfg.AIChannels)
	}
}

func TestPruneChannel(t *testing.T) {
	guildconfig.Init(store.NewMemory())

	RegisterAIChannel("g1", "c1")
	RegisterAIChannel("g1", "c2")
	RegisterUploadChannel("g1", "c1")

	PruneChannel("g1", "c1")

	if IsAIChannel("g1", "c1") || IsUploadChannel("g1", "c1") {
		t.Error("pruned channel should be gone from both registries")
	}
	if !IsAIChannel("g1", "c2") {
		t.Error("pruning must not touch other channels")
	}

	// Pruning an unknown channel must not mutate anything.
	PruneChannel("g1", "nope")
	if !IsAIChannel("g1", "c2") {
		t.Error("pruning unknown channel changed the registry")
	}
}
