package ticket

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/panel"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

func replyEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("[Ticket] ephemeral reply: %v", err)
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// reasonLabel resolves a select value to its option label for display.
func reasonLabel(p guildconfig.PanelDefinition, value string) string {
	for _, opt := range p.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// HandleOpen creates a ticket from the live panel, for both the select menu
// and the simple button.
func HandleOpen(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil {
		return
	}
	cfg := guildconfig.GetOrCreate(i.GuildID)

	reason := ""
	if data := i.MessageComponentData(); data.ComponentType == discordgo.SelectMenuComponent && len(data.Values) > 0 {
		reason = reasonLabel(cfg.Panel, data.Values[0])
	}

	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		guild, err = s.Guild(i.GuildID)
	}
	if err != nil {
		replyEphemeral(s, i, "❌ Não consegui carregar os dados do servidor.")
		return
	}

	ch, err := Open(s, guild, user, reason, cfg)
	if err != nil {
		guildconfig.AppendFailure("ticket-open", user.ID, i.GuildID, err.Error())
		replyEphemeral(s, i, "❌ "+err.Error())
		return
	}

	botAvatar := ""
	if s.State.User != nil {
		botAvatar = s.State.User.AvatarURL("")
	}
	_, err = s.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Content:    fmt.Sprintf("<@%s>", user.ID),
		Embeds:     []*discordgo.MessageEmbed{panel.BuildTicketOpenEmbed(user.ID, user.Username, botAvatar, cfg.Panel, reason)},
		Components: panel.TicketControls(),
	})
	if err != nil {
		log.Printf("[Ticket] welcome message: %v", err)
	}

	replyEphemeral(s, i, fmt.Sprintf("✅ Seu ticket foi criado: <#%s>", ch.ID))
}

// HandleClose asks for confirmation before anything is scheduled.
func HandleClose(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Tem certeza que deseja fechar este ticket?",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{CustomID: "ticket-close-confirm", Label: "Sim, fechar", Style: discordgo.DangerButton},
				discordgo.Button{CustomID: "ticket-close-cancel", Label: "Cancelar", Style: discordgo.SecondaryButton},
			}}},
		},
	})
	if err != nil {
		log.Printf("[Ticket] close prompt: %v", err)
	}
}

// HandleCloseConfirm announces the countdown and schedules the deletion.
func HandleCloseConfirm(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	userTag := ""
	if user != nil {
		userTag = user.Username
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       "🔒 Ticket Fechado",
				Description: fmt.Sprintf("Este canal será excluído em %d segundos.\nFechado por **%s**.", int(CloseDelay.Seconds()), userTag),
				Color:       0xff0000,
			}},
		},
	})
	if err != nil {
		log.Printf("[Ticket] close confirm: %v", err)
	}

	if user != nil {
		guildconfig.AppendLog(store.LogTickets, guildconfig.ChannelLogEntry{
			UserID:    user.ID,
			GuildID:   i.GuildID,
			ChannelID: i.ChannelID,
			Timestamp: timestamp(),
		})
	}
	ScheduleDelete(s, i.ChannelID, CloseDelay, "ticket closed")
}

// HandleCloseCancel aborts the confirmation prompt.
func HandleCloseCancel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    "Operação cancelada.",
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Printf("[Ticket] close cancel: %v", err)
	}
}

// HandleReschedule cancels a pending deletion so the conversation can go on.
func HandleReschedule(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !CancelDelete(i.ChannelID) {
		replyEphemeral(s, i, "Este ticket não tem exclusão pendente.")
		return
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       "🔓 Ticket Reaberto",
				Description: "A exclusão agendada foi cancelada. O atendimento continua neste canal.",
				Color:       guildconfig.DefaultColor,
			}},
		},
	})
	if err != nil {
		log.Printf("[Ticket] reschedule: %v", err)
	}
}
