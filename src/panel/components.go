package panel

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	emutil "github.com/post04/discordgo-emoji-util"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/config"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

func row(buttons ...discordgo.MessageComponent) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: buttons}
}

// BuildPanelEditorComponents maps a panel's panelType/advancedConfig flags to
// the editor control rows:
//
//	default + basic    -> basic edits, toggles, media edits, save
//	default + advanced -> + options edit and theme row
//	simple             -> basic edits, toggles (advanced disabled), button label, save
func BuildPanelEditorComponents(p guildconfig.PanelDefinition) []discordgo.MessageComponent {
	var components []discordgo.MessageComponent

	components = append(components, row(
		discordgo.Button{CustomID: "edit-title", Label: "Editar Título", Style: discordgo.PrimaryButton},
		discordgo.Button{CustomID: "edit-desc", Label: "Editar Descrição", Style: discordgo.PrimaryButton},
	))

	simpleStyle := discordgo.DangerButton
	simpleLabel := "Desligado"
	if p.PanelType == "simple" {
		simpleStyle = discordgo.SuccessButton
		simpleLabel = "Ligado"
	}
	advStyle := discordgo.DangerButton
	advLabel := "Desligado"
	if p.AdvancedConfig {
		advStyle = discordgo.SuccessButton
		advLabel = "Ligado"
	}
	components = append(components, row(
		discordgo.Button{CustomID: "toggle-panel-type", Label: "Ticket Simples: " + simpleLabel, Style: simpleStyle},
		discordgo.Button{
			CustomID: "toggle-advanced-config",
			Label:    "Avançado: " + advLabel,
			Style:    advStyle,
			Disabled: p.PanelType == "simple",
		},
	))

	if p.PanelType == "default" {
		components = append(components, row(
			discordgo.Button{CustomID: "edit-color", Label: "Editar Cor (hex)", Style: discordgo.SecondaryButton},
			discordgo.Button{CustomID: "edit-banner", Label: "Editar Banner (URL)", Style: discordgo.SecondaryButton},
			discordgo.Button{CustomID: "edit-thumb", Label: "Editar Miniatura (URL)", Style: discordgo.SecondaryButton},
			discordgo.Button{CustomID: "edit-footer", Label: "Editar Footer", Style: discordgo.SecondaryButton},
		))
		if p.AdvancedConfig {
			components = append(components, row(
				discordgo.Button{CustomID: "edit-selects", Label: "Editar Opções (Select)", Style: discordgo.PrimaryButton},
				discordgo.Button{CustomID: "edit-emojis", Label: "Editar Emojis", Style: discordgo.PrimaryButton},
				discordgo.Button{
					CustomID: "ready-panel",
					Label:    "Painel Pronto",
					Style:    discordgo.SuccessButton,
					Emoji:    &discordgo.ComponentEmoji{Name: "✨"},
				},
			))
		}
	} else {
		components = append(components, row(
			discordgo.Button{CustomID: "edit-simple-label", Label: "Editar Nome do Botão", Style: discordgo.PrimaryButton},
		))
	}

	components = append(components, row(
		discordgo.Button{CustomID: "save-panel", Label: "Salvar Alterações", Style: discordgo.SuccessButton},
	))
	return components
}

// BuildLivePanelComponents renders the deployment row of the panel: a single
// open button in simple mode, a reason select menu otherwise. Option emojis
// resolve against the guild's custom emojis by name; unknown names render
// without an emoji.
func BuildLivePanelComponents(p guildconfig.PanelDefinition, guildEmojis []*discordgo.Emoji) []discordgo.MessageComponent {
	if p.PanelType == "simple" {
		label := p.SimpleButtonLabel
		if label == "" {
			label = "Abrir Ticket"
		}
		components := []discordgo.MessageComponent{row(
			discordgo.Button{CustomID: "simple-ticket-open", Label: label, Style: discordgo.PrimaryButton},
		)}
		return appendFreekeyRow(components)
	}

	var options []discordgo.SelectMenuOption
	for _, opt := range p.Options {
		o := discordgo.SelectMenuOption{
			Label:       opt.Label,
			Description: opt.Description,
			Value:       opt.Value,
		}
		if opt.Emoji != "" {
			if e := emutil.FindEmoji(guildEmojis, opt.Emoji, false); e != nil {
				o.Emoji = &discordgo.ComponentEmoji{ID: e.ID, Name: e.Name}
			}
		}
		options = append(options, o)
	}
	if len(options) == 0 {
		return nil
	}

	return appendFreekeyRow([]discordgo.MessageComponent{row(
		discordgo.SelectMenu{
			CustomID:    "ticket-select",
			Placeholder: "Selecione o motivo do seu ticket...",
			Options:     options,
		},
	)})
}

// appendFreekeyRow adds the key-redemption button when a freekey webhook is
// configured for this deployment.
func appendFreekeyRow(components []discordgo.MessageComponent) []discordgo.MessageComponent {
	if config.FreekeyWebhookURL == "" {
		return components
	}
	return append(components, row(
		discordgo.Button{
			CustomID: "freekey",
			Label:    "Resgatar Chave",
			Style:    discordgo.SecondaryButton,
			Emoji:    &discordgo.ComponentEmoji{Name: "🔑"},
		},
	))
}

// BuildProductEditorComponents renders the control rows of the product editor.
func BuildProductEditorComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		row(
			discordgo.Button{CustomID: "edit-prod-title", Label: "Título", Style: discordgo.PrimaryButton},
			discordgo.Button{CustomID: "edit-prod-desc", Label: "Descrição", Style: discordgo.PrimaryButton},
			discordgo.Button{CustomID: "edit-prod-color", Label: "Cor (hex)", Style: discordgo.SecondaryButton},
		),
		row(
			discordgo.Button{CustomID: "edit-prod-price", Label: "Preço (ex: 19.99)", Style: discordgo.SuccessButton},
			discordgo.Button{CustomID: "edit-prod-stock", Label: "Estoque (ex: 10 ou -1)", Style: discordgo.SuccessButton},
		),
		row(
			discordgo.Button{CustomID: "edit-prod-banner", Label: "Banner (URL)", Style: discordgo.SecondaryButton},
			discordgo.Button{CustomID: "edit-prod-thumb", Label: "Miniatura (URL)", Style: discordgo.SecondaryButton},
			discordgo.Button{CustomID: "edit-prod-footer", Label: "Footer", Style: discordgo.SecondaryButton},
		),
		row(
			discordgo.Button{CustomID: "send-product", Label: "Enviar Produto", Style: discordgo.SuccessButton},
		),
	}
}

// BuildEmbedEditorComponents renders the control rows of the /embed editor.
func BuildEmbedEditorComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		row(
			discordgo.Button{CustomID: "edit-embed-title", Label: "Título", Style: discordgo.PrimaryButton},
			discordgo.Button{CustomID: "edit-embed-desc", Label: "Descrição", Style: discordgo.PrimaryButton},
			discordgo.Button{CustomID: "edit-embed-color", Label: "Cor (hex)", Style: discordgo.SecondaryButton},
		),
		row(
			discordgo.Button{CustomID: "edit-embed-banner", Label: "Banner", Style: discordgo.SecondaryButton},
			discordgo.Button{CustomID: "edit-embed-thumb", Label: "Miniatura", Style: discordgo.SecondaryButton},
			discordgo.Button{CustomID: "edit-embed-footer", Label: "Footer", Style: discordgo.SecondaryButton},
		),
		row(
			discordgo.Button{CustomID: "edit-embed-field1", Label: "Campo 1", Style: discordgo.SuccessButton},
			discordgo.Button{CustomID: "edit-embed-field2", Label: "Campo 2", Style: discordgo.SuccessButton},
			discordgo.Button{CustomID: "edit-embed-field3", Label: "Campo 3", Style: discordgo.SuccessButton},
			discordgo.Button{CustomID: "edit-embed-clear-fields", Label: "Limpar Campos", Style: discordgo.DangerButton},
		),
		row(
			discordgo.Button{CustomID: "post-embed", Label: "Postar Embed", Style: discordgo.SuccessButton},
			discordgo.Button{CustomID: "post-embed-webhook", Label: "Postar Webhook", Style: discordgo.SecondaryButton},
			discordgo.Button{CustomID: "export-embed", Label: "Exportar JSON", Style: discordgo.PrimaryButton},
			discordgo.Button{CustomID: "import-embed", Label: "Importar JSON", Style: discordgo.PrimaryButton},
		),
	}
}

// BuildPaymentPanelComponents renders the !configpay control rows.
func BuildPaymentPanelComponents(pc guildconfig.PaymentConfig) []discordgo.MessageComponent {
	toggleLabel := "Pagamentos: Desativados"
	toggleStyle := discordgo.DangerButton
	if pc.Enabled {
		toggleLabel = "Pagamentos: Ativados"
		toggleStyle = discordgo.SuccessButton
	}
	components := []discordgo.MessageComponent{row(
		discordgo.Button{CustomID: "toggle-payment", Label: toggleLabel, Style: toggleStyle},
	)}

	if pc.Enabled {
		components = append(components, row(
			discordgo.Button{
				CustomID: "config-mp", Label: "Configurar Mercado Pago",
				Style: discordgo.PrimaryButton, Emoji: &discordgo.ComponentEmoji{Name: "💳"},
			},
			discordgo.Button{
				CustomID: "config-pix", Label: "Configurar Pix Manual",
				Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "🔑"},
			},
		))
		modeText := "Texto"
		if pc.PixMode == "qrcode_static" {
			modeText = "QR CODE Estático"
		}
		components = append(components, row(
			discordgo.Button{
				CustomID: "noop-pix-mode-display",
				Label:    fmt.Sprintf("Modo Pix Manual: %s", modeText),
				Style:    discordgo.SecondaryButton,
				Disabled: true,
			},
		))
	}
	return components
}

// TicketControls is the close/reschedule pair posted inside every ticket.
func TicketControls() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{row(
		discordgo.Button{CustomID: "ticket-close", Label: "Fechar Ticket", Style: discordgo.DangerButton},
		discordgo.Button{CustomID: "ticket-reschedule", Label: "Remarcar Ticket", Style: discordgo.SecondaryButton},
	)}
}
