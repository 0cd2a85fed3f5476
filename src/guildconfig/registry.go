package guildconfig

import (
	"log"
	"sync"
	"time"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

const configKey = "guild_configs"

var (
	mu        sync.Mutex
	configs   map[string]*GuildConfig
	dataStore store.Store
)

// Log entry shapes. These match the flat audit files the bot has always
// written, which double as the recovery source when the main document is
// missing a guild.
type PanelLogEntry struct {
	GuildID      string          `json:"guildId"`
	OwnerID      string          `json:"ownerId"`
	ConfiguredBy string          `json:"configuredBy"`
	Panel        PanelDefinition `json:"panel"`
	Timestamp    string          `json:"timestamp"`
}

type ChannelLogEntry struct {
	UserID    string `json:"userId,omitempty"`
	GuildID   string `json:"guildId"`
	ChannelID string `json:"channelId"`
	Timestamp string `json:"timestamp"`
}

type RolesLogEntry struct {
	UserID    string   `json:"userId,omitempty"`
	GuildID   string   `json:"guildId"`
	RoleIDs   []string `json:"roleIds"`
	Timestamp string   `json:"timestamp"`
}

// Init wires the registry to its backing store and loads the persisted map.
// Must run before any GetOrCreate call.
func Init(s store.Store) {
	mu.Lock()
	defer mu.Unlock()
	dataStore = s
	configs = make(map[string]*GuildConfig)
	store.ReadJSON(s, configKey, &configs)
	log.Printf("[GuildConfig] loaded %d guild configuration(s)", len(configs))
}

// getOrCreateLocked returns the live aggregate for guildID, creating and
// backfilling it from the audit logs on first reference. Caller holds mu.
func getOrCreateLocked(guildID string) *GuildConfig {
	cfg, ok := configs[guildID]
	if !ok {
		cfg = newConfig(guildID)
		configs[guildID] = cfg
	}
	patchPanel(&cfg.Panel)
	if cfg.Products == nil {
		cfg.Products = make(map[string]ProductDefinition)
	}
	return cfg
}

// GetOrCreate returns an isolated copy of the guild's aggregate for reading
// and rendering. Gateway handlers run concurrently, so the live aggregate
// never leaves the lock; all writes go through Mutate.
func GetOrCreate(guildID string) *GuildConfig {
	mu.Lock()
	defer mu.Unlock()
	return getOrCreateLocked(guildID).clone()
}

// Mutate runs fn on the live aggregate under the registry lock and persists
// the whole map before releasing it, so a restart loses nothing and no
// marshal ever observes a concurrent write.
func Mutate(guildID string, fn func(*GuildConfig)) {
	mu.Lock()
	defer mu.Unlock()
	fn(getOrCreateLocked(guildID))
	persistLocked()
}

func persistLocked() {
	if err := store.WriteJSON(dataStore, configKey, configs); err != nil {
		log.Printf("[GuildConfig] save failed: %v", err)
	}
}

// GuildIDs lists every known guild, for admin exports.
func GuildIDs() []string {
	mu.Lock()
	defer mu.Unlock()
	ids := make([]string, 0, len(configs))
	for id := range configs {
		ids = append(ids, id)
	}
	return ids
}

// Snapshot returns an isolated copy of the full map for export.
func Snapshot() map[string]GuildConfig {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]GuildConfig, len(configs))
	for id, cfg := range configs {
		out[id] = *cfg.clone()
	}
	return out
}

func newConfig(guildID string) *GuildConfig {
	cfg := &GuildConfig{
		SupportRoles: []string{},
		AutoRoles:    []string{},
		Panel:        DefaultPanel(),
		Products:     make(map[string]ProductDefinition),
	}

	// Overlay the most recent matching entry from each legacy log. Highest
	// index wins; absent logs simply leave the defaults.
	var panels []PanelLogEntry
	store.ReadLog(dataStore, store.LogPanel, &panels)
	for _, e := range panels {
		if e.GuildID == guildID {
			cfg.Panel = e.Panel
		}
	}

	var channels []ChannelLogEntry
	store.ReadLog(dataStore, store.LogCategory, &channels)
	for _, e := range channels {
		if e.GuildID == guildID {
			cfg.CategoryID = e.ChannelID
		}
	}

	var roles []RolesLogEntry
	store.ReadLog(dataStore, store.LogSupportRoles, &roles)
	for _, e := range roles {
		if e.GuildID == guildID {
			cfg.SupportRoles = e.RoleIDs
		}
	}

	roles = nil
	store.ReadLog(dataStore, store.LogAutoRoles, &roles)
	for _, e := range roles {
		if e.GuildID == guildID {
			cfg.AutoRoles = e.RoleIDs
		}
	}

	channels = nil
	store.ReadLog(dataStore, store.LogWelcome, &channels)
	for _, e := range channels {
		if e.GuildID == guildID {
			cfg.WelcomeChannelID = e.ChannelID
		}
	}

	channels = nil
	store.ReadLog(dataStore, store.LogLeave, &channels)
	for _, e := range channels {
		if e.GuildID == guildID {
			cfg.LeaveChannelID = e.ChannelID
		}
	}

	return cfg
}

// patchPanel fills in fields that older persisted panels predate. Schema
// migration by presence check, applied on every access.
func patchPanel(p *PanelDefinition) {
	if p.PanelType == "" {
		p.PanelType = "default"
	}
	if p.SimpleButtonLabel == "" {
		p.SimpleButtonLabel = "Abrir Ticket"
	}
	if p.Color == 0 {
		p.Color = DefaultColor
	}
	if len(p.Options) == 0 {
		p.Options = DefaultPanel().Options
	}
	if len(p.Options) > 3 {
		p.Options = p.Options[:3]
	}
}

// AppendFailure records a failed operation for diagnostics.
func AppendFailure(command, userID, guildID, reason string) {
	entry := map[string]string{
		"command":   command,
		"userId":    userID,
		"guildId":   guildID,
		"reason":    reason,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if err := store.AppendLog(dataStore, store.LogFailures, entry); err != nil {
		log.Printf("[GuildConfig] failure log append: %v", err)
	}
}

// AppendLog forwards to the backing store so feature packages do not need a
// second store handle.
func AppendLog(key string, entry any) {
	if err := store.AppendLog(dataStore, key, entry); err != nil {
		log.Printf("[GuildConfig] log append %s: %v", key, err)
	}
}
