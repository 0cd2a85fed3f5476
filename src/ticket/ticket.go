// Package ticket creates and tears down the private support channels: regular
// tickets opened from the panel and cart channels opened by a purchase.
package ticket

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
	petname "github.com/dustinkirkland/golang-petname"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// Slug lowercases s, strips everything outside [a-z0-9] and truncates to max.
// An empty result gets a generated pet name so the channel still has an
// identity.
func Slug(s string, max int) string {
	s = nonAlnum.ReplaceAllString(strings.ToLower(s), "")
	if s == "" {
		s = petname.Generate(2, "")
	}
	r := []rune(s)
	if len(r) > max {
		return string(r[:max])
	}
	return s
}

// ChannelName computes a ticket channel name from the requester and reason.
func ChannelName(username, reason string) string {
	return Slug(username, 12) + "-" + Slug(reason, 12)
}

// CartChannelName computes a cart channel name.
func CartChannelName(username, product string) string {
	return "🛒-" + Slug(username, 15) + "-" + Slug(product, 15)
}

// BuildOverwrites computes the access list for a fresh ticket: deny the
// default role, allow the requester, the bot, every support role and every
// cached non-bot administrator. Recomputed on every call since membership
// changes between tickets.
func BuildOverwrites(guild *discordgo.Guild, userID, botID string, cfg *guildconfig.GuildConfig) []*discordgo.PermissionOverwrite {
	memberPerms := int64(discordgo.PermissionViewChannel |
		discordgo.PermissionSendMessages |
		discordgo.PermissionReadMessageHistory |
		discordgo.PermissionAttachFiles)

	overwrites := []*discordgo.PermissionOverwrite{
		{ID: guild.ID, Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionViewChannel},
		{ID: userID, Type: discordgo.PermissionOverwriteTypeMember, Allow: memberPerms},
		{ID: botID, Type: discordgo.PermissionOverwriteTypeMember, Allow: memberPerms},
	}

	for _, roleID := range cfg.SupportRoles {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID: roleID, Type: discordgo.PermissionOverwriteTypeRole, Allow: memberPerms,
		})
	}

	adminRoles := make(map[string]bool)
	for _, role := range guild.Roles {
		if role.Permissions&discordgo.PermissionAdministrator != 0 {
			adminRoles[role.ID] = true
		}
	}
	seen := map[string]bool{userID: true, botID: true}
	for _, m := range guild.Members {
		if m.User == nil || m.User.Bot || seen[m.User.ID] {
			continue
		}
		isAdmin := m.User.ID == guild.OwnerID
		for _, r := range m.Roles {
			if adminRoles[r] {
				isAdmin = true
				break
			}
		}
		if isAdmin {
			seen[m.User.ID] = true
			overwrites = append(overwrites, &discordgo.PermissionOverwrite{
				ID: m.User.ID, Type: discordgo.PermissionOverwriteTypeMember, Allow: memberPerms,
			})
		}
	}
	return overwrites
}

func resolveCategory(s *discordgo.Session, categoryID string) (*discordgo.Channel, error) {
	if categoryID == "" {
		return nil, fmt.Errorf("categoria de tickets não configurada, use /config-channel")
	}
	ch, err := s.State.Channel(categoryID)
	if err != nil {
		ch, err = s.Channel(categoryID)
	}
	if err != nil || ch == nil {
		return nil, fmt.Errorf("a categoria configurada não existe mais, use /config-channel")
	}
	if ch.Type != discordgo.ChannelTypeGuildCategory {
		return nil, fmt.Errorf("o canal configurado não é uma categoria")
	}
	return ch, nil
}

// Open creates a ticket channel under the configured category. The category
// must exist and be a category channel; otherwise a descriptive error comes
// back and nothing is created.
func Open(s *discordgo.Session, guild *discordgo.Guild, user *discordgo.User, reason string, cfg *guildconfig.GuildConfig) (*discordgo.Channel, error) {
	category, err := resolveCategory(s, cfg.CategoryID)
	if err != nil {
		return nil, err
	}

	channel, err := s.GuildChannelCreateComplex(guild.ID, discordgo.GuildChannelCreateData{
		Name:                 ChannelName(user.Username, reason),
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             category.ID,
		PermissionOverwrites: BuildOverwrites(guild, user.ID, s.State.User.ID, cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao criar o canal do ticket: %w", err)
	}
	log.Printf("[Ticket] opened %s for %s (%s)", channel.Name, user.Username, reason)
	return channel, nil
}

// OpenCart creates a cart channel for a purchase. Same access computation as
// a ticket; the caller schedules the expiry.
func OpenCart(s *discordgo.Session, guild *discordgo.Guild, user *discordgo.User, productTitle string, cfg *guildconfig.GuildConfig, fallbackParentID string) (*discordgo.Channel, error) {
	parentID := cfg.CategoryID
	if _, err := resolveCategory(s, parentID); err != nil {
		parentID = fallbackParentID
	}

	channel, err := s.GuildChannelCreateComplex(guild.ID, discordgo.GuildChannelCreateData{
		Name:                 CartChannelName(user.Username, productTitle),
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             parentID,
		PermissionOverwrites: BuildOverwrites(guild, user.ID, s.State.User.ID, cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao criar o carrinho: %w", err)
	}
	log.Printf("[Ticket] opened cart %s for %s", channel.Name, user.Username)
	return channel, nil
}
