package editor

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/panel"
)

func paymentEmbed(pc guildconfig.PaymentConfig) *discordgo.MessageEmbed {
	status := "❌ Desativados"
	if pc.Enabled {
		status = "✅ Ativados"
	}
	gateway := "Nenhum"
	switch {
	case pc.MPToken != "":
		gateway = "Mercado Pago"
	case pc.PixKey != "":
		gateway = "Pix Manual"
	}
	return &discordgo.MessageEmbed{
		Title:       "⚙️ Configuração de Pagamentos",
		Description: "Ative os pagamentos e escolha entre Mercado Pago ou Pix manual.",
		Color:       guildconfig.DefaultColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: status, Inline: true},
			{Name: "Gateway", Value: gateway, Inline: true},
		},
	}
}

// ShowPaymentPanel opens the payment configuration panel.
func ShowPaymentPanel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg := guildconfig.GetOrCreate(i.GuildID)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{paymentEmbed(cfg.PaymentConfig)},
			Components: panel.BuildPaymentPanelComponents(cfg.PaymentConfig),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("[Editor] open payment panel: %v", err)
	}
}

// HandlePaymentToggle flips the payment master switch.
func HandlePaymentToggle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var pc guildconfig.PaymentConfig
	guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
		cfg.PaymentConfig.Enabled = !cfg.PaymentConfig.Enabled
		pc = cfg.PaymentConfig
	})
	updateMessage(s, i, paymentEmbed(pc), panel.BuildPaymentPanelComponents(pc))
}

// HandlePaymentConfig opens the gateway configuration modals.
func HandlePaymentConfig(s *discordgo.Session, i *discordgo.InteractionCreate, act Action) {
	cfg := guildconfig.GetOrCreate(i.GuildID)

	switch act.Target {
	case "mp":
		showModal(s, i, "modal-config-mp", "Mercado Pago",
			textInput("token", "Access Token", "APP_USR-...", cfg.PaymentConfig.MPToken, discordgo.TextInputShort, true, 0))
	case "pix":
		showModal(s, i, "modal-config-pix", "Pix Manual",
			textInput("type", "Tipo de Chave", "cpf, cnpj, email, phone ou random", cfg.PaymentConfig.PixType, discordgo.TextInputShort, true, 16),
			textInput("key", "Chave Pix", "", cfg.PaymentConfig.PixKey, discordgo.TextInputShort, true, 140),
			textInput("mode", "Modo (text ou qrcode_static)", "text", cfg.PaymentConfig.PixMode, discordgo.TextInputShort, false, 16))
	}
}

// HandlePaymentModal commits a gateway configuration.
func HandlePaymentModal(s *discordgo.Session, i *discordgo.InteractionCreate, act Action) {
	data := i.ModalSubmitData()
	var pc guildconfig.PaymentConfig

	switch act.Target {
	case "mp":
		token := strings.TrimSpace(firstModalValue(data))
		if token == "" {
			replyEphemeral(s, i, "❌ Token vazio.")
			return
		}
		guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
			cfg.PaymentConfig.MPToken = token
			pc = cfg.PaymentConfig
		})

	case "pix":
		values := modalValues(data)
		if len(values) < 2 {
			return
		}
		pixType := strings.ToLower(strings.TrimSpace(values[0]))
		switch pixType {
		case "cpf", "cnpj", "email", "phone", "random":
		default:
			guildconfig.AppendFailure("config-pix", userID(i), i.GuildID, "invalid pix key type")
			replyEphemeral(s, i, "❌ Tipo de chave inválido. Use cpf, cnpj, email, phone ou random.")
			return
		}
		key := strings.TrimSpace(values[1])
		if key == "" {
			replyEphemeral(s, i, "❌ Chave Pix vazia.")
			return
		}
		mode := "text"
		if len(values) > 2 && strings.TrimSpace(values[2]) != "" {
			mode = strings.ToLower(strings.TrimSpace(values[2]))
		}
		if mode != "text" && mode != "qrcode_static" {
			replyEphemeral(s, i, "❌ Modo inválido. Use `text` ou `qrcode_static`.")
			return
		}
		guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
			cfg.PaymentConfig.PixType = pixType
			cfg.PaymentConfig.PixKey = key
			cfg.PaymentConfig.PixMode = mode
			pc = cfg.PaymentConfig
		})

	default:
		return
	}

	updateMessage(s, i, paymentEmbed(pc), panel.BuildPaymentPanelComponents(pc))
}
