// Package admin implements the owner-only control panel: server exports,
// command usage stats, broadcast, guild removal and the hosting lifecycle
// buttons. Everything here is gated on the configured owner ID.
package admin

import (
	"log"
	"sort"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/config"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

const (
	usageKey  = "command_usage"
	adminsKey = "yc_admins"
)

var (
	mu        sync.Mutex
	usage     map[string]int
	admins    []string
	dataStore store.Store
)

// Init wires the package to its backing store.
func Init(s store.Store) {
	mu.Lock()
	defer mu.Unlock()
	dataStore = s
	usage = make(map[string]int)
	store.ReadJSON(s, usageKey, &usage)
	store.ReadJSON(s, adminsKey, &admins)
}

// IsOwner reports whether userID is the configured bot owner.
func IsOwner(userID string) bool {
	return config.OwnerID != "" && userID == config.OwnerID
}

// Track counts one use of a command.
func Track(command string) {
	mu.Lock()
	defer mu.Unlock()
	usage[command]++
	if err := store.WriteJSON(dataStore, usageKey, usage); err != nil {
		log.Printf("[Admin] usage save: %v", err)
	}
}

// UsageEntry is one row of the command usage report.
type UsageEntry struct {
	Command string
	Count   int
}

// TopCommands returns usage sorted by count, then name.
func TopCommands() []UsageEntry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]UsageEntry, 0, len(usage))
	for cmd, n := range usage {
		out = append(out, UsageEntry{Command: cmd, Count: n})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Command < out[b].Command
	})
	return out
}

// AddAdmin records a trusted staff user ID. Duplicates are ignored.
func AddAdmin(userID string) bool {
	mu.Lock()
	defer mu.Unlock()
	for _, id := range admins {
		if id == userID {
			return false
		}
	}
	admins = append(admins, userID)
	if err := store.WriteJSON(dataStore, adminsKey, admins); err != nil {
		log.Printf("[Admin] admins save: %v", err)
	}
	return true
}

// Admins returns the trusted staff list.
func Admins() []string {
	mu.Lock()
	defer mu.Unlock()
	return append([]string(nil), admins...)
}

func panelEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🛠️ Painel Administrativo",
		Description: "Controles restritos ao dono do bot.",
		Color:       guildconfig.DefaultColor,
	}
}

func panelComponents() []discordgo.MessageComponent {
	row := func(buttons ...discordgo.MessageComponent) discordgo.ActionsRow {
		return discordgo.ActionsRow{Components: buttons}
	}
	return []discordgo.MessageComponent{
		row(
			discordgo.Button{CustomID: "admin-export-servers", Label: "Exportar Servidores", Style: discordgo.PrimaryButton, Emoji: &discordgo.ComponentEmoji{Name: "📤"}},
			discordgo.Button{CustomID: "admin-top-command", Label: "Top Comandos", Style: discordgo.PrimaryButton, Emoji: &discordgo.ComponentEmoji{Name: "📊"}},
			discordgo.Button{CustomID: "admin-list-owners", Label: "Listar Donos", Style: discordgo.PrimaryButton, Emoji: &discordgo.ComponentEmoji{Name: "👑"}},
		),
		row(
			discordgo.Button{CustomID: "admin-broadcast", Label: "Broadcast", Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "📢"}},
			discordgo.Button{CustomID: "admin-remove", Label: "Remover Servidor", Style: discordgo.DangerButton, Emoji: &discordgo.ComponentEmoji{Name: "🗑️"}},
			discordgo.Button{CustomID: "admin-clean-spam", Label: "Limpar Spam", Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "🧹"}},
		),
		row(
			discordgo.Button{CustomID: "admin-advanced-config", Label: "Config Avançada", Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "⚙️"}},
			discordgo.Button{CustomID: "admin-add-yc", Label: "Adicionar YC", Style: discordgo.SuccessButton, Emoji: &discordgo.ComponentEmoji{Name: "💰"}},
		),
		row(
			discordgo.Button{CustomID: "vertra-start", Label: "Iniciar", Style: discordgo.SuccessButton, Emoji: &discordgo.ComponentEmoji{Name: "▶️"}},
			discordgo.Button{CustomID: "vertra-stop", Label: "Parar", Style: discordgo.DangerButton, Emoji: &discordgo.ComponentEmoji{Name: "⏹️"}},
			discordgo.Button{CustomID: "vertra-restart", Label: "Reiniciar", Style: discordgo.PrimaryButton, Emoji: &discordgo.ComponentEmoji{Name: "🔄"}},
			discordgo.Button{CustomID: "vertra-pause", Label: "Pausar", Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "⏸️"}},
		),
	}
}

// HandleAdminMessage answers the !admin prefix command for the bot owner:
// a hidden channel with the control panel, visible only to the owner.
func HandleAdminMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if !IsOwner(m.Author.ID) {
		return
	}
	botID := ""
	if s.State.User != nil {
		botID = s.State.User.ID
	}

	ch, err := s.GuildChannelCreateComplex(m.GuildID, discordgo.GuildChannelCreateData{
		Name: "yoloo-admin",
		Type: discordgo.ChannelTypeGuildText,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			{ID: m.GuildID, Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionViewChannel},
			{ID: m.Author.ID, Type: discordgo.PermissionOverwriteTypeMember, Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages},
			{ID: botID, Type: discordgo.PermissionOverwriteTypeMember, Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages},
		},
	})
	if err != nil {
		log.Printf("[Admin] channel create: %v", err)
		return
	}

	_, err = s.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{panelEmbed()},
		Components: panelComponents(),
	})
	if err != nil {
		log.Printf("[Admin] panel message: %v", err)
	}
}
