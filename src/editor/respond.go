package editor

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

var hexPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// ParseHexColor accepts "32cd32" or "#32cd32" and returns the color value.
func ParseHexColor(s string) (int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !hexPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func replyEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("[Editor] ephemeral reply: %v", err)
	}
}

func updateMessage(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		log.Printf("[Editor] update message: %v", err)
	}
}

func textInput(id, label, placeholder, value string, style discordgo.TextInputStyle, required bool, maxLength int) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.TextInput{
			CustomID:    id,
			Label:       label,
			Placeholder: placeholder,
			Value:       value,
			Style:       style,
			Required:    required,
			MaxLength:   maxLength,
		},
	}}
}

func showModal(s *discordgo.Session, i *discordgo.InteractionCreate, customID, title string, rows ...discordgo.ActionsRow) {
	components := make([]discordgo.MessageComponent, len(rows))
	for idx, r := range rows {
		components[idx] = r
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      title,
			Components: components,
		},
	})
	if err != nil {
		log.Printf("[Editor] show modal: %v", err)
	}
}

// modalValues flattens a modal submission into its text inputs, in row order.
func modalValues(data discordgo.ModalSubmitInteractionData) []string {
	var values []string
	for _, comp := range data.Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok || len(row.Components) == 0 {
			continue
		}
		if in, ok := row.Components[0].(*discordgo.TextInput); ok {
			values = append(values, in.Value)
		}
	}
	return values
}

func firstModalValue(data discordgo.ModalSubmitInteractionData) string {
	if v := modalValues(data); len(v) > 0 {
		return v[0]
	}
	return ""
}
