package editor

import (
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/panel"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

func getGuild(s *discordgo.Session, guildID string) *discordgo.Guild {
	if g, err := s.State.Guild(guildID); err == nil {
		return g
	}
	g, err := s.Guild(guildID)
	if err != nil {
		return nil
	}
	return g
}

// ShowPanelEditor opens the panel editor as an ephemeral preview.
func ShowPanelEditor(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg := guildconfig.GetOrCreate(i.GuildID)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{panel.BuildPanelEmbed(cfg)},
			Components: panel.BuildPanelEditorComponents(cfg.Panel),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("[Editor] open panel editor: %v", err)
	}
}

// HandlePanelEdit opens the modal for one panel field.
func HandlePanelEdit(s *discordgo.Session, i *discordgo.InteractionCreate, act Action) {
	cfg := guildconfig.GetOrCreate(i.GuildID)
	p := cfg.Panel

	switch act.Target {
	case "title":
		showModal(s, i, "modal-edit-title", "Editar Título",
			textInput("value", "Título", "", p.Title, discordgo.TextInputShort, true, panel.MaxTitle))
	case "desc":
		showModal(s, i, "modal-edit-desc", "Editar Descrição",
			textInput("value", "Descrição", "", p.Description, discordgo.TextInputParagraph, true, panel.MaxDesc))
	case "color":
		showModal(s, i, "modal-edit-color", "Editar Cor",
			textInput("value", "Cor (hex)", "Ex: 32cd32 ou #32cd32", "", discordgo.TextInputShort, true, 7))
	case "banner":
		showModal(s, i, "modal-edit-banner", "Editar Banner",
			textInput("value", "URL do Banner", "https://...", p.BannerURL, discordgo.TextInputShort, false, 0))
	case "thumb":
		showModal(s, i, "modal-edit-thumb", "Editar Miniatura",
			textInput("value", "URL da Miniatura", "https://...", p.ThumbnailURL, discordgo.TextInputShort, false, 0))
	case "footer":
		showModal(s, i, "modal-edit-footer", "Editar Footer",
			textInput("value", "Texto do Footer", "", p.FooterText, discordgo.TextInputShort, false, panel.MaxFooter))
	case "simple-label":
		showModal(s, i, "modal-edit-simple-label", "Nome do Botão",
			textInput("value", "Nome do Botão", "", p.SimpleButtonLabel, discordgo.TextInputShort, true, 80))
	case "selects":
		rows := make([]discordgo.ActionsRow, 0, 3)
		for idx, opt := range p.Options {
			rows = append(rows, textInput(
				"option", "Opção "+string(rune('1'+idx)),
				"Nome | Descrição", opt.Label+" | "+opt.Description,
				discordgo.TextInputShort, false, 150))
		}
		showModal(s, i, "modal-edit-selects", "Editar Opções", rows...)
	case "emojis":
		rows := make([]discordgo.ActionsRow, 0, 3)
		for idx, opt := range p.Options {
			rows = append(rows, textInput(
				"emoji", "Emoji da Opção "+string(rune('1'+idx)),
				"nome do emoji do servidor", opt.Emoji,
				discordgo.TextInputShort, false, 64))
		}
		showModal(s, i, "modal-edit-emojis", "Editar Emojis", rows...)
	}
}

// HandlePanelModal applies a submitted panel field and refreshes the editor.
func HandlePanelModal(s *discordgo.Session, i *discordgo.InteractionCreate, act Action) {
	data := i.ModalSubmitData()

	var color int
	if act.Target == "color" {
		v, ok := ParseHexColor(firstModalValue(data))
		if !ok {
			guildconfig.AppendFailure("edit-color", userID(i), i.GuildID, "invalid hex color")
			replyEphemeral(s, i, "❌ Cor inválida. Use o formato hexadecimal, ex: `32cd32`.")
			return
		}
		color = v
	}

	guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
		switch act.Target {
		case "title":
			cfg.Panel.Title = panel.Clamp(firstModalValue(data), panel.MaxTitle)
		case "desc":
			cfg.Panel.Description = panel.Clamp(firstModalValue(data), panel.MaxDesc)
		case "color":
			cfg.Panel.Color = color
		case "banner":
			cfg.Panel.BannerURL = strings.TrimSpace(firstModalValue(data))
		case "thumb":
			cfg.Panel.ThumbnailURL = strings.TrimSpace(firstModalValue(data))
		case "footer":
			cfg.Panel.FooterText = panel.Clamp(firstModalValue(data), panel.MaxFooter)
		case "simple-label":
			cfg.Panel.SimpleButtonLabel = panel.Clamp(firstModalValue(data), 80)
		case "selects":
			for idx, raw := range modalValues(data) {
				if idx >= len(cfg.Panel.Options) || strings.TrimSpace(raw) == "" {
					continue
				}
				label, desc := splitOption(raw)
				cfg.Panel.Options[idx].Label = label
				cfg.Panel.Options[idx].Description = desc
			}
		case "emojis":
			for idx, raw := range modalValues(data) {
				if idx >= len(cfg.Panel.Options) {
					continue
				}
				cfg.Panel.Options[idx].Emoji = strings.TrimSpace(raw)
			}
		}
	})

	cfg := guildconfig.GetOrCreate(i.GuildID)
	updateMessage(s, i, panel.BuildPanelEmbed(cfg), panel.BuildPanelEditorComponents(cfg.Panel))
}

// splitOption parses "Label | Description". A missing separator keeps the
// whole text as the label.
func splitOption(raw string) (label, desc string) {
	parts := strings.SplitN(raw, "|", 2)
	label = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		desc = strings.TrimSpace(parts[1])
	}
	return label, desc
}

// HandlePanelToggle flips panel type or the advanced flag. Simple mode always
// clears advanced; the advanced rows have no meaning without a select menu.
func HandlePanelToggle(s *discordgo.Session, i *discordgo.InteractionCreate, act Action) {
	guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
		switch act.Target {
		case "panel-type":
			if cfg.Panel.PanelType == "simple" {
				cfg.Panel.PanelType = "default"
			} else {
				cfg.Panel.PanelType = "simple"
				cfg.Panel.AdvancedConfig = false
			}
		case "advanced-config":
			if cfg.Panel.PanelType != "simple" {
				cfg.Panel.AdvancedConfig = !cfg.Panel.AdvancedConfig
			}
		}
	})

	cfg := guildconfig.GetOrCreate(i.GuildID)
	updateMessage(s, i, panel.BuildPanelEmbed(cfg), panel.BuildPanelEditorComponents(cfg.Panel))
}

// HandleReadyPanel swaps the editor for the theme picker.
func HandleReadyPanel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg := guildconfig.GetOrCreate(i.GuildID)
	menu := []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.SelectMenu{
			CustomID:    "select-theme",
			Placeholder: "Escolha um tema pronto...",
			Options: []discordgo.SelectMenuOption{
				{Label: "GTA / Roleplay", Value: "gta", Emoji: &discordgo.ComponentEmoji{Name: "🎮"}},
				{Label: "Comunidade", Value: "community", Emoji: &discordgo.ComponentEmoji{Name: "🌐"}},
				{Label: "Amigos", Value: "friends", Emoji: &discordgo.ComponentEmoji{Name: "🎉"}},
				{Label: "Desenvolvimento", Value: "dev", Emoji: &discordgo.ComponentEmoji{Name: "💻"}},
			},
		},
	}}}
	updateMessage(s, i, panel.BuildPanelEmbed(cfg), menu)
}

// HandleThemeSelect applies a template to the visual fields and returns to
// the editor. Panel type and the advanced flag survive the merge.
func HandleThemeSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return
	}

	guildName, guildIcon := "", ""
	if g := getGuild(s, i.GuildID); g != nil {
		guildName = g.Name
		guildIcon = g.IconURL("")
	}
	tpl := panel.PanelTemplate(values[0], guildName, guildIcon)
	guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
		panel.ApplyTemplate(&cfg.Panel, tpl)
	})

	cfg := guildconfig.GetOrCreate(i.GuildID)
	updateMessage(s, i, panel.BuildPanelEmbed(cfg), panel.BuildPanelEditorComponents(cfg.Panel))
}

// HandleSavePanel commits the panel, appends the audit entry and deploys the
// live panel message in the current channel.
func HandleSavePanel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg := guildconfig.GetOrCreate(i.GuildID)
	g := getGuild(s, i.GuildID)

	ownerID := ""
	var emojis []*discordgo.Emoji
	if g != nil {
		ownerID = g.OwnerID
		emojis = g.Emojis
	}
	guildconfig.AppendLog(store.LogPanel, guildconfig.PanelLogEntry{
		GuildID:      i.GuildID,
		OwnerID:      ownerID,
		ConfiguredBy: userID(i),
		Panel:        cfg.Panel,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})

	_, err := s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{panel.BuildPanelEmbed(cfg)},
		Components: panel.BuildLivePanelComponents(cfg.Panel, emojis),
	})
	if err != nil {
		log.Printf("[Editor] deploy panel: %v", err)
		replyEphemeral(s, i, "❌ Não consegui publicar o painel neste canal.")
		return
	}
	replyEphemeral(s, i, "✅ Painel salvo e publicado com sucesso!")
}

func userID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
