package editor

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/config"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/ticket"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/webhook"
)

var (
	orderIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8,64}$`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// HandleFreekey runs the redemption entry points. The panel button opens a
// dedicated ticket with the instructions; the button inside that ticket opens
// the redemption form.
func HandleFreekey(s *discordgo.Session, i *discordgo.InteractionCreate, act Action) {
	if act.Target == "form" {
		showModal(s, i, "modal-freekey", "Resgatar Chave",
			textInput("order", "ID do Pedido", "ex: a1b2c3d4e5f6", "", discordgo.TextInputShort, true, 64),
			textInput("email", "E-mail da Compra", "voce@exemplo.com", "", discordgo.TextInputShort, true, 254))
		return
	}

	user := interactionUser(i)
	if user == nil {
		return
	}
	g := getGuild(s, i.GuildID)
	if g == nil {
		replyEphemeral(s, i, "❌ Não consegui carregar o servidor. Tente novamente.")
		return
	}
	cfg := guildconfig.GetOrCreate(i.GuildID)

	ch, err := ticket.Open(s, g, user, "Resgatar Chave", cfg)
	if err != nil {
		log.Printf("[Editor] freekey ticket: %v", err)
		replyEphemeral(s, i, "❌ "+err.Error())
		return
	}

	_, err = s.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s>", user.ID),
		Embeds: []*discordgo.MessageEmbed{{
			Title: "🔑 Resgate de Chave",
			Description: "Para resgatar sua chave, clique no botão abaixo e informe " +
				"o ID do pedido e o e-mail usado na compra. Nossa equipe valida os " +
				"dados e envia a chave neste ticket.",
			Color: guildconfig.DefaultColor,
		}},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: "freekey-form",
				Label:    "Preencher Dados",
				Style:    discordgo.SuccessButton,
				Emoji:    &discordgo.ComponentEmoji{Name: "🔑"},
			},
			discordgo.Button{CustomID: "ticket-close", Label: "Fechar Ticket", Style: discordgo.DangerButton},
		}}},
	})
	if err != nil {
		log.Printf("[Editor] freekey instructions: %v", err)
	}

	replyEphemeral(s, i, fmt.Sprintf("✅ Seu ticket de resgate foi criado: <#%s>", ch.ID))
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// HandleFreekeyModal validates the order data, notifies the fulfillment
// webhook and posts the request summary in the ticket.
func HandleFreekeyModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	values := modalValues(i.ModalSubmitData())
	if len(values) < 2 {
		return
	}
	orderID := strings.TrimSpace(values[0])
	email := strings.TrimSpace(values[1])

	if !orderIDPattern.MatchString(orderID) {
		guildconfig.AppendFailure("freekey", userID(i), i.GuildID, "invalid order id")
		replyEphemeral(s, i, "❌ ID de pedido inválido. Use apenas caracteres hexadecimais (8 a 64).")
		return
	}
	if !emailPattern.MatchString(email) {
		guildconfig.AppendFailure("freekey", userID(i), i.GuildID, "invalid email")
		replyEphemeral(s, i, "❌ E-mail inválido.")
		return
	}

	if config.FreekeyWebhookURL != "" {
		res := webhook.Post(config.FreekeyWebhookURL, webhook.Payload{
			Content: "Novo resgate de chave",
			Embeds: []*discordgo.MessageEmbed{{
				Title: "🔑 Resgate de Chave",
				Color: guildconfig.DefaultColor,
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Pedido", Value: orderID, Inline: true},
					{Name: "E-mail", Value: email, Inline: true},
					{Name: "Usuário", Value: "<@" + userID(i) + ">", Inline: true},
					{Name: "Servidor", Value: i.GuildID, Inline: true},
				},
			}},
		})
		if !res.OK {
			log.Printf("[Editor] freekey webhook: %v", res.Err)
		}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       "🔑 Resgate Registrado",
				Description: "Sua solicitação foi registrada. Nossa equipe vai validar o pedido e enviar a chave neste ticket.",
				Color:       guildconfig.DefaultColor,
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Pedido", Value: orderID, Inline: true},
					{Name: "E-mail", Value: email, Inline: true},
				},
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			}},
		},
	})
	if err != nil {
		log.Printf("[Editor] freekey summary: %v", err)
	}
}
