package editor

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

var languageNames = map[string]string{
	"pt-BR": "Português (Brasil)",
	"en-US": "English (US)",
	"es-ES": "Español",
	"hi-IN": "हिन्दी",
	"zh-CN": "中文 (简体)",
}

func languageEmbed(selected string) *discordgo.MessageEmbed {
	current := "Português (Brasil)"
	if n, ok := languageNames[selected]; ok {
		current = n
	}
	return &discordgo.MessageEmbed{
		Title:       "🌐 Idioma do Servidor",
		Description: "Escolha o idioma e clique em salvar para confirmar.",
		Color:       guildconfig.DefaultColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Selecionado", Value: current, Inline: true},
		},
	}
}

func languageComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    "select-language",
				Placeholder: "Selecione o idioma...",
				Options: []discordgo.SelectMenuOption{
					{Label: "Português (Brasil)", Value: "pt-BR", Emoji: &discordgo.ComponentEmoji{Name: "🇧🇷"}},
					{Label: "English (US)", Value: "en-US", Emoji: &discordgo.ComponentEmoji{Name: "🇺🇸"}},
					{Label: "Español", Value: "es-ES", Emoji: &discordgo.ComponentEmoji{Name: "🇪🇸"}},
					{Label: "हिन्दी", Value: "hi-IN", Emoji: &discordgo.ComponentEmoji{Name: "🇮🇳"}},
					{Label: "中文 (简体)", Value: "zh-CN", Emoji: &discordgo.ComponentEmoji{Name: "🇨🇳"}},
				},
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{CustomID: "save-language", Label: "Salvar Idioma", Style: discordgo.SuccessButton},
		}},
	}
}

// ShowLanguagePicker opens the language selection panel.
func ShowLanguagePicker(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg := guildconfig.GetOrCreate(i.GuildID)
	selected := cfg.TempLanguage
	if selected == "" {
		selected = cfg.Language
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{languageEmbed(selected)},
			Components: languageComponents(),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("[Editor] open language picker: %v", err)
	}
}

// HandleLanguageSelect stages a language choice without committing it.
func HandleLanguageSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return
	}
	guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
		cfg.TempLanguage = values[0]
	})
	updateMessage(s, i, languageEmbed(values[0]), languageComponents())
}

// HandleLanguageSave commits the staged language.
func HandleLanguageSave(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var saved string
	guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
		if cfg.TempLanguage == "" {
			return
		}
		cfg.Language = cfg.TempLanguage
		cfg.TempLanguage = ""
		saved = cfg.Language
	})
	if saved == "" {
		replyEphemeral(s, i, "❌ Selecione um idioma antes de salvar.")
		return
	}
	replyEphemeral(s, i, "✅ Idioma salvo: "+languageNames[saved])
}
