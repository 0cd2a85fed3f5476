// Package events handles the gateway events outside the interaction flow:
// member joins and leaves, channel deletions and the message traffic of the
// registered AI and upload channels.
package events

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/divan/num2words"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/aichat"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/gofile"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/ticket"
)

const uploadChannelDeleteDelay = 5 * time.Second

// botHighestRolePosition finds how high the bot can reach in the role
// hierarchy; roles at or above it cannot be assigned.
func botHighestRolePosition(g *discordgo.Guild, botID string) int {
	var member *discordgo.Member
	for _, m := range g.Members {
		if m.User != nil && m.User.ID == botID {
			member = m
			break
		}
	}
	if member == nil {
		return 0
	}

	highest := 0
	for _, roleID := range member.Roles {
		for _, role := range g.Roles {
			if role.ID == roleID && role.Position > highest {
				highest = role.Position
			}
		}
	}
	return highest
}

// assignableRoles filters the configured auto-roles down to the ones the bot
// can actually grant.
func assignableRoles(g *discordgo.Guild, botID string, roleIDs []string) []string {
	limit := botHighestRolePosition(g, botID)
	var out []string
	for _, id := range roleIDs {
		for _, role := range g.Roles {
			if role.ID != id || role.Managed || role.Position >= limit {
				continue
			}
			out = append(out, id)
		}
	}
	return out
}

// HandleGuildMemberAdd posts the welcome embed and applies auto-roles.
func HandleGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.User == nil || m.User.Bot {
		return
	}
	cfg := guildconfig.GetOrCreate(m.GuildID)

	g, err := s.State.Guild(m.GuildID)
	if err != nil {
		g, err = s.Guild(m.GuildID)
		if err != nil {
			return
		}
	}

	botID := ""
	if s.State.User != nil {
		botID = s.State.User.ID
	}
	for _, roleID := range assignableRoles(g, botID, cfg.AutoRoles) {
		if err := s.GuildMemberRoleAdd(m.GuildID, m.User.ID, roleID); err != nil {
			log.Printf("[Events] auto role %s: %v", roleID, err)
		}
	}

	if cfg.WelcomeChannelID == "" {
		return
	}

	created := "desconhecida"
	if ts, err := discordgo.SnowflakeTimestamp(m.User.ID); err == nil {
		created = fmt.Sprintf("<t:%d:R>", ts.Unix())
	}
	embed := &discordgo.MessageEmbed{
		Title:       "👋 Bem-vindo(a)!",
		Description: fmt.Sprintf("Olá <@%s>, seja bem-vindo(a) ao **%s**!", m.User.ID, g.Name),
		Color:       guildconfig.DefaultColor,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: m.User.AvatarURL("")},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📅 Conta criada", Value: created, Inline: true},
			{Name: "👥 Membros", Value: fmt.Sprintf("%d (%s)", g.MemberCount, num2words.Convert(g.MemberCount)), Inline: true},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := s.ChannelMessageSendEmbed(cfg.WelcomeChannelID, embed); err != nil {
		log.Printf("[Events] welcome message: %v", err)
	}
}

// HandleGuildMemberRemove posts the leave embed and tries a farewell DM.
func HandleGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	if m.User == nil || m.User.Bot {
		return
	}
	cfg := guildconfig.GetOrCreate(m.GuildID)
	if cfg.LeaveChannelID != "" {
		embed := &discordgo.MessageEmbed{
			Title:       "😢 Até logo",
			Description: fmt.Sprintf("**%s** saiu do servidor.", m.User.Username),
			Color:       0xff0000,
			Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: m.User.AvatarURL("")},
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}
		if _, err := s.ChannelMessageSendEmbed(cfg.LeaveChannelID, embed); err != nil {
			log.Printf("[Events] leave message: %v", err)
		}
	}

	// Best effort. Most departed users have DMs closed to the bot.
	if dm, err := s.UserChannelCreate(m.User.ID); err == nil {
		_, _ = s.ChannelMessageSend(dm.ID, "Sentiremos sua falta! Volte quando quiser. 💚")
	}
}

// HandleChannelDelete drops deleted channels from the AI and upload
// registries and forgets any pending deletion timer.
func HandleChannelDelete(s *discordgo.Session, c *discordgo.ChannelDelete) {
	if c.Channel == nil || c.GuildID == "" {
		return
	}
	aichat.PruneChannel(c.GuildID, c.ID)
	ticket.Forget(c.ID)
}

// HandleUploadMessage mirrors attachments posted in an upload channel to the
// file host, DMs the author the links and then retires the channel.
func HandleUploadMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if len(m.Attachments) == 0 {
		_, _ = s.ChannelMessageSend(m.ChannelID, "📎 Envie um arquivo para fazer o upload.")
		return
	}

	var links []string
	for _, att := range m.Attachments {
		data, err := downloadAttachment(att.URL)
		if err != nil {
			log.Printf("[Events] attachment download: %v", err)
			continue
		}
		res := gofile.Upload(data, att.Filename)
		if !res.OK {
			log.Printf("[Events] upload %s: %v", att.Filename, res.Err)
			continue
		}
		links = append(links, res.URL)
	}

	if len(links) == 0 {
		_, _ = s.ChannelMessageSend(m.ChannelID, "❌ Não consegui fazer o upload dos arquivos.")
		return
	}

	if dm, err := s.UserChannelCreate(m.Author.ID); err == nil {
		content := "📤 Seus arquivos estão prontos:\n"
		for _, l := range links {
			content += l + "\n"
		}
		_, _ = s.ChannelMessageSend(dm.ID, content)
	}

	_, _ = s.ChannelMessageSend(m.ChannelID, "✅ Upload concluído! Os links foram enviados no seu privado. Este canal será removido em instantes.")
	ticket.ScheduleDelete(s, m.ChannelID, uploadChannelDeleteDelay, "upload finished")
}

func downloadAttachment(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("events: attachment status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 50<<20))
}

// HandleAIMessage answers a message posted in a registered AI channel.
func HandleAIMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	_ = s.ChannelTyping(m.ChannelID)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	answer, err := aichat.Answer(ctx, m.Content)
	if err != nil {
		if err == aichat.ErrNoBackend {
			_, _ = s.ChannelMessageSendEmbed(m.ChannelID, aichat.BuildPlaceholderEmbed())
			return
		}
		log.Printf("[Events] ai answer: %v", err)
		_, _ = s.ChannelMessageSend(m.ChannelID, "❌ Não consegui gerar uma resposta agora. Tente novamente.")
		return
	}
	_, _ = s.ChannelMessageSendEmbed(m.ChannelID, aichat.BuildReplyEmbed(answer))
}
