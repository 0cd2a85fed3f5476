package editor

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/panel"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/webhook"
)

// ShowEmbedEditor opens the embed editor over the guild's scratch buffer.
func ShowEmbedEditor(s *discordgo.Session, i *discordgo.InteractionCreate) {
	e := tempEmbed(i.GuildID)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{panel.BuildEditorEmbed(e)},
			Components: panel.BuildEmbedEditorComponents(),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("[Editor] open embed editor: %v", err)
	}
}

// tempEmbed makes sure the scratch buffer exists and returns a copy of it.
func tempEmbed(guildID string) *guildconfig.EmbedData {
	guildconfig.Mutate(guildID, func(cfg *guildconfig.GuildConfig) {
		if cfg.TempEmbed == nil {
			cfg.TempEmbed = guildconfig.DefaultEmbed()
		}
	})
	return guildconfig.GetOrCreate(guildID).TempEmbed
}

// embedPoster is the slice of the session API needed to refresh a posted
// embed in place.
type embedPoster interface {
	ChannelMessageEditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// refreshPostedEmbed pushes the current buffer into the last message posted
// with "post". Best effort; the message may have been deleted.
func refreshPostedEmbed(api embedPoster, cfg *guildconfig.GuildConfig) {
	if cfg.TempEmbed == nil || cfg.TempEmbedChannelID == "" || cfg.TempEmbedMessageID == "" {
		return
	}
	_, err := api.ChannelMessageEditEmbed(cfg.TempEmbedChannelID, cfg.TempEmbedMessageID, panel.BuildEditorEmbed(cfg.TempEmbed))
	if err != nil {
		log.Printf("[Editor] refresh posted embed: %v", err)
	}
}

// HandleEmbedEdit opens the modal for one embed field.
func HandleEmbedEdit(s *discordgo.Session, i *discordgo.InteractionCreate, act Action) {
	e := tempEmbed(i.GuildID)

	switch act.Target {
	case "title":
		showModal(s, i, "modal-edit-embed-title", "Editar Título",
			textInput("value", "Título", "", e.Title, discordgo.TextInputShort, true, panel.MaxTitle))
	case "desc":
		showModal(s, i, "modal-edit-embed-desc", "Editar Descrição",
			textInput("value", "Descrição", "", e.Description, discordgo.TextInputParagraph, true, panel.MaxDesc))
	case "color":
		showModal(s, i, "modal-edit-embed-color", "Editar Cor",
			textInput("value", "Cor (hex)", "Ex: 32cd32 ou #32cd32", "", discordgo.TextInputShort, true, 7))
	case "banner":
		showModal(s, i, "modal-edit-embed-banner", "Editar Banner",
			textInput("value", "URL do Banner", "https://...", e.ImageURL, discordgo.TextInputShort, false, 0))
	case "thumb":
		showModal(s, i, "modal-edit-embed-thumb", "Editar Miniatura",
			textInput("value", "URL da Miniatura", "https://...", e.ThumbnailURL, discordgo.TextInputShort, false, 0))
	case "footer":
		showModal(s, i, "modal-edit-embed-footer", "Editar Footer",
			textInput("value", "Texto do Footer", "", e.FooterText, discordgo.TextInputShort, false, panel.MaxFooter))
	case "field1", "field2", "field3":
		idx := int(act.Target[len(act.Target)-1] - '1')
		var f guildconfig.EmbedField
		if idx < len(e.Fields) {
			f = e.Fields[idx]
		}
		inline := "nao"
		if f.Inline {
			inline = "sim"
		}
		showModal(s, i, "modal-"+i.MessageComponentData().CustomID, "Editar Campo "+act.Target[len(act.Target)-1:],
			textInput("name", "Nome do Campo", "", f.Name, discordgo.TextInputShort, true, panel.MaxFieldName),
			textInput("value", "Valor do Campo", "", f.Value, discordgo.TextInputParagraph, true, panel.MaxFieldValue),
			textInput("inline", "Na mesma linha? (sim/nao)", "sim ou nao", inline, discordgo.TextInputShort, false, 3))
	}
}

// HandleEmbedModal applies a submitted embed field and refreshes the editor
// plus any posted copy of the embed.
func HandleEmbedModal(s *discordgo.Session, i *discordgo.InteractionCreate, act Action) {
	data := i.ModalSubmitData()

	var color int
	if act.Target == "color" {
		v, ok := ParseHexColor(firstModalValue(data))
		if !ok {
			guildconfig.AppendFailure("edit-embed-color", userID(i), i.GuildID, "invalid hex color")
			replyEphemeral(s, i, "❌ Cor inválida. Use o formato hexadecimal, ex: `32cd32`.")
			return
		}
		color = v
	}

	guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
		if cfg.TempEmbed == nil {
			cfg.TempEmbed = guildconfig.DefaultEmbed()
		}
		e := cfg.TempEmbed
		switch act.Target {
		case "title":
			e.Title = panel.Clamp(firstModalValue(data), panel.MaxTitle)
		case "desc":
			e.Description = panel.Clamp(firstModalValue(data), panel.MaxDesc)
		case "color":
			e.Color = color
		case "banner":
			e.ImageURL = strings.TrimSpace(firstModalValue(data))
		case "thumb":
			e.ThumbnailURL = strings.TrimSpace(firstModalValue(data))
		case "footer":
			e.FooterText = panel.Clamp(firstModalValue(data), panel.MaxFooter)
		case "field1", "field2", "field3":
			idx := int(act.Target[len(act.Target)-1] - '1')
			values := modalValues(data)
			if len(values) < 2 {
				return
			}
			for len(e.Fields) <= idx {
				e.Fields = append(e.Fields, guildconfig.EmbedField{})
			}
			e.Fields[idx].Name = panel.Clamp(values[0], panel.MaxFieldName)
			e.Fields[idx].Value = panel.Clamp(values[1], panel.MaxFieldValue)
			if len(values) > 2 {
				e.Fields[idx].Inline = strings.EqualFold(strings.TrimSpace(values[2]), "sim")
			}
		}
	})

	cfg := guildconfig.GetOrCreate(i.GuildID)
	updateMessage(s, i, panel.BuildEditorEmbed(cfg.TempEmbed), panel.BuildEmbedEditorComponents())
	refreshPostedEmbed(s, cfg)
}

// HandleEmbedOp handles the non-modal embed operations and the two modal
// launchers (webhook post and JSON import).
func HandleEmbedOp(s *discordgo.Session, i *discordgo.InteractionCreate, act Action) {
	e := tempEmbed(i.GuildID)

	switch act.Target {
	case "clear-fields":
		guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
			if cfg.TempEmbed != nil {
				cfg.TempEmbed.Fields = nil
			}
		})
		cfg := guildconfig.GetOrCreate(i.GuildID)
		updateMessage(s, i, panel.BuildEditorEmbed(cfg.TempEmbed), panel.BuildEmbedEditorComponents())
		refreshPostedEmbed(s, cfg)

	case "post":
		msg, err := s.ChannelMessageSendEmbed(i.ChannelID, panel.BuildEditorEmbed(e))
		if err != nil {
			log.Printf("[Editor] post embed: %v", err)
			replyEphemeral(s, i, "❌ Não consegui postar a embed neste canal.")
			return
		}
		guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
			cfg.TempEmbedMessageID = msg.ID
			cfg.TempEmbedChannelID = i.ChannelID
		})
		replyEphemeral(s, i, "✅ Embed postada com sucesso!")

	case "webhook":
		showModal(s, i, "modal-post-embed-webhook", "Postar via Webhook",
			textInput("value", "URL do Webhook", "https://discord.com/api/webhooks/...", "", discordgo.TextInputShort, true, 0))

	case "export":
		raw, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			replyEphemeral(s, i, "❌ Falha ao exportar a embed.")
			return
		}
		out := string(raw)
		if len(out) > 1900 {
			out = out[:1900]
		}
		replyEphemeral(s, i, "```json\n"+out+"\n```")

	case "import":
		showModal(s, i, "modal-import-embed", "Importar JSON",
			textInput("value", "JSON da Embed", "{ \"title\": ... }", "", discordgo.TextInputParagraph, true, 4000))
	}
}

// HandleEmbedOpModal finishes the webhook post and JSON import flows.
func HandleEmbedOpModal(s *discordgo.Session, i *discordgo.InteractionCreate, act Action) {
	data := i.ModalSubmitData()

	switch act.Target {
	case "webhook":
		url := strings.TrimSpace(firstModalValue(data))
		if !webhook.ValidURL(url) {
			guildconfig.AppendFailure("post-embed-webhook", userID(i), i.GuildID, "invalid webhook url")
			replyEphemeral(s, i, "❌ URL de webhook inválida.")
			return
		}
		res := webhook.Post(url, webhook.Payload{
			Embeds: []*discordgo.MessageEmbed{panel.BuildEditorEmbed(tempEmbed(i.GuildID))},
		})
		if !res.OK {
			log.Printf("[Editor] webhook post: %v", res.Err)
			replyEphemeral(s, i, "❌ O webhook recusou a embed.")
			return
		}
		replyEphemeral(s, i, "✅ Embed enviada pelo webhook!")

	case "import":
		var imported guildconfig.EmbedData
		if err := json.Unmarshal([]byte(firstModalValue(data)), &imported); err != nil {
			guildconfig.AppendFailure("import-embed", userID(i), i.GuildID, "invalid embed json")
			replyEphemeral(s, i, "❌ JSON inválido.")
			return
		}
		if len(imported.Fields) > panel.MaxFields {
			imported.Fields = imported.Fields[:panel.MaxFields]
		}
		guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
			cfg.TempEmbed = &imported
		})
		cfg := guildconfig.GetOrCreate(i.GuildID)
		updateMessage(s, i, panel.BuildEditorEmbed(cfg.TempEmbed), panel.BuildEmbedEditorComponents())
		refreshPostedEmbed(s, cfg)
	}
}
