package ticket

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/config"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/panel"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/payments"
)

// CartExpiry returns how long an idle cart stays open before deletion.
func CartExpiry() time.Duration {
	if d, err := str2duration.ParseDuration(config.CartExpiry); err == nil && d > 0 {
		return d
	}
	return 10 * time.Minute
}

// HandleBuy opens a cart channel for the pressed product. Purchases require
// an enabled payment configuration with at least one gateway.
func HandleBuy(s *discordgo.Session, i *discordgo.InteractionCreate, productID string) {
	user := interactionUser(i)
	if user == nil {
		return
	}
	cfg := guildconfig.GetOrCreate(i.GuildID)

	product, ok := cfg.Products[productID]
	if !ok {
		replyEphemeral(s, i, "❌ Este produto não está mais disponível.")
		return
	}
	if !cfg.PaymentConfig.Enabled || (cfg.PaymentConfig.MPToken == "" && cfg.PaymentConfig.PixKey == "") {
		guildconfig.AppendFailure("product-buy", user.ID, i.GuildID, "payments not configured")
		replyEphemeral(s, i, "❌ O sistema de pagamentos deste servidor ainda não foi configurado. Avise um administrador.")
		return
	}
	if product.Stock == 0 {
		replyEphemeral(s, i, "❌ Este produto está esgotado.")
		return
	}

	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		guild, err = s.Guild(i.GuildID)
	}
	if err != nil {
		replyEphemeral(s, i, "❌ Não consegui carregar os dados do servidor.")
		return
	}

	fallbackParent := ""
	if ch, err := s.Channel(i.ChannelID); err == nil {
		fallbackParent = ch.ParentID
	}

	cart, err := OpenCart(s, guild, user, product.Title, cfg, fallbackParent)
	if err != nil {
		guildconfig.AppendFailure("product-buy", user.ID, i.GuildID, err.Error())
		replyEphemeral(s, i, "❌ "+err.Error())
		return
	}

	// Best effort. DMs closed is not an error.
	if dm, err := s.UserChannelCreate(user.ID); err == nil {
		_, _ = s.ChannelMessageSendEmbed(dm.ID, &discordgo.MessageEmbed{
			Title:       "🛒 Carrinho Criado",
			Description: fmt.Sprintf("Seu carrinho para **%s** foi aberto em **%s**. Conclua o pagamento em <#%s>.", product.Title, guild.Name, cart.ID),
			Color:       guildconfig.DefaultColor,
		})
	}

	embed := panel.BuildProductEmbed(&product)
	embed.Title = "🛒 " + embed.Title
	_, err = s.ChannelMessageSendComplex(cart.ID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s>", user.ID),
		Embeds:  []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: "generate-payment-" + productID,
				Label:    "Gerar Pagamento",
				Style:    discordgo.SuccessButton,
				Emoji:    &discordgo.ComponentEmoji{Name: "💸"},
			},
			discordgo.Button{CustomID: "ticket-close", Label: "Cancelar Compra", Style: discordgo.DangerButton},
		}}},
	})
	if err != nil {
		log.Printf("[Ticket] cart message: %v", err)
	}

	ScheduleDelete(s, cart.ID, CartExpiry(), "cart expired")
	replyEphemeral(s, i, fmt.Sprintf("✅ Seu carrinho foi criado: <#%s>", cart.ID))
}

// HandleGeneratePayment posts the charge for the cart's product and disables
// the generate button. The cart keeps its expiry window from this moment.
func HandleGeneratePayment(s *discordgo.Session, i *discordgo.InteractionCreate, productID string) {
	cfg := guildconfig.GetOrCreate(i.GuildID)

	product, ok := cfg.Products[productID]
	if !ok {
		replyEphemeral(s, i, "❌ Este produto não está mais disponível.")
		return
	}

	txID := payments.NewTransactionID()
	var embed *discordgo.MessageEmbed
	if cfg.PaymentConfig.MPToken != "" {
		embed = payments.BuildMercadoPagoEmbed(product, txID)
	} else {
		embed = payments.BuildPixEmbed(cfg.PaymentConfig, product, txID)
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: "noop-payment-generated",
					Label:    "Pagamento Gerado",
					Style:    discordgo.SecondaryButton,
					Disabled: true,
				},
				discordgo.Button{CustomID: "ticket-close", Label: "Cancelar Compra", Style: discordgo.DangerButton},
			}}},
		},
	})
	if err != nil {
		log.Printf("[Ticket] disable payment row: %v", err)
	}

	if _, err := s.ChannelMessageSendEmbed(i.ChannelID, embed); err != nil {
		log.Printf("[Ticket] payment embed: %v", err)
	}

	ScheduleDelete(s, i.ChannelID, CartExpiry(), "cart expired")
}
