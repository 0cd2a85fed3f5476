package panel

import (
	"fmt"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

// PanelTemplate returns the ready-made panel for a named theme, personalized
// with the guild name and icon. Unknown themes fall back to the stock panel.
func PanelTemplate(theme, guildName, guildIcon string) guildconfig.PanelDefinition {
	switch theme {
	case "gta":
		return guildconfig.PanelDefinition{
			Title:             fmt.Sprintf("🎮 %s - Suporte", guildName),
			Description:       "Abrir ticket de suporte para problemas, denúncias ou sugestões.",
			Color:             0xFF6B6B,
			ThumbnailURL:      guildIcon,
			FooterText:        fmt.Sprintf("%s - Sistema de Tickets", guildName),
			FooterIcon:        guildIcon,
			PanelType:         "default",
			SimpleButtonLabel: "Abrir Ticket",
			Options: []guildconfig.PanelOption{
				{Label: "🚗 Reportar Bug/Sugestão", Description: "Problemas técnicos ou melhorias", Value: "bug", Emoji: "bug"},
				{Label: "🛡️ Reportar Jogador", Description: "Denunciar comportamento inadequado", Value: "denuncia", Emoji: "shield"},
				{Label: "💬 Outros Assuntos", Description: "Dúvidas gerais sobre o servidor", Value: "geral", Emoji: "chat"},
			},
		}
	case "community":
		return guildconfig.PanelDefinition{
			Title:             fmt.Sprintf("👥 %s - Central de Ajuda", guildName),
			Description:       "Selecione o motivo do seu atendimento abaixo.",
			Color:             0x4A90E2,
			ThumbnailURL:      guildIcon,
			FooterText:        fmt.Sprintf("%s © Todos os direitos reservados", guildName),
			FooterIcon:        guildIcon,
			PanelType:         "default",
			SimpleButtonLabel: "Solicitar Ajuda",
			Options: []guildconfig.PanelOption{
				{Label: "❓ Dúvidas Gerais", Description: "Perguntas sobre regras e comandos", Value: "duvidas", Emoji: "question"},
				{Label: "🎯 Aplicar para Cargo", Description: "Candidatura para cargos especiais", Value: "cargo", Emoji: "medal"},
				{Label: "📢 Suporte Técnico", Description: "Problemas com bots ou configurações", Value: "tecnico", Emoji: "wrench"},
			},
		}
	case "friends":
		return guildconfig.PanelDefinition{
			Title:             fmt.Sprintf("🤝 %s - Suporte aos Amigos", guildName),
			Description:       "Precisa de ajuda? Abra um ticket e nossa equipe irá te atender!",
			Color:             0x32CD32,
			ThumbnailURL:      guildIcon,
			FooterText:        fmt.Sprintf("%s - Feito com ❤️", guildName),
			FooterIcon:        guildIcon,
			PanelType:         "default",
			SimpleButtonLabel: "Preciso de Ajuda",
			Options: []guildconfig.PanelOption{
				{Label: "💬 Chat e Conversação", Description: "Dúvidas sobre conversas e canais", Value: "chat", Emoji: "chat"},
				{Label: "🎮 Atividades", Description: "Sugestões e feedback sobre eventos", Value: "atividades", Emoji: "game"},
				{Label: "❤️ Elogios e Feedback", Description: "Compartilhe sua opinião conosco", Value: "feedback", Emoji: "heart"},
			},
		}
	case "dev":
		return guildconfig.PanelDefinition{
			Title:             fmt.Sprintf("💻 %s - Suporte Dev", guildName),
			Description:       "Sistema de tickets para desenvolvedores e programadores.",
			Color:             0x7289DA,
			ThumbnailURL:      guildIcon,
			FooterText:        fmt.Sprintf("%s - Powered by Yoloo Cloud", guildName),
			FooterIcon:        guildIcon,
			PanelType:         "default",
			SimpleButtonLabel: "Abrir Ticket Dev",
			Options: []guildconfig.PanelOption{
				{Label: "🐛 Reportar Bug", Description: "Erros encontrados no código", Value: "bug", Emoji: "bug"},
				{Label: "💡 Sugestão de Feature", Description: "Ideias para melhorias", Value: "feature", Emoji: "bulb"},
				{Label: "🤝 Colaboração", Description: "Quer contribuir com o projeto?", Value: "collab", Emoji: "handshake"},
			},
		}
	default:
		return guildconfig.DefaultPanel()
	}
}

// ApplyTemplate merges a theme's visual fields into the panel while keeping
// the structural flags (panelType, advancedConfig) the guild already chose.
func ApplyTemplate(p *guildconfig.PanelDefinition, tpl guildconfig.PanelDefinition) {
	p.Title = tpl.Title
	p.Description = tpl.Description
	p.Color = tpl.Color
	p.BannerURL = tpl.BannerURL
	p.ThumbnailURL = tpl.ThumbnailURL
	p.FooterText = tpl.FooterText
	p.FooterIcon = tpl.FooterIcon
	p.SimpleButtonLabel = tpl.SimpleButtonLabel
	p.Options = tpl.Options
}
