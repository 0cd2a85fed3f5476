// Package panel renders every embed and component layout the bot shows:
// the live ticket panel, the config editors, product listings and ticket
// notices. Builders are pure; the same aggregate always renders the same
// message.
package panel

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

// Discord hard limits.
const (
	MaxTitle      = 256
	MaxDesc       = 4000
	MaxFooter     = 2048
	MaxFieldName  = 256
	MaxFieldValue = 1024
	MaxFields     = 3
)

// Clamp trims s and truncates it to max runes. Whitespace-only input clamps
// to empty, which renders as unset.
func Clamp(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) > max {
		return string(r[:max])
	}
	return s
}

// BuildPanelEmbed renders the live ticket panel for a guild.
func BuildPanelEmbed(cfg *guildconfig.GuildConfig) *discordgo.MessageEmbed {
	p := cfg.Panel

	title := Clamp(p.Title, MaxTitle)
	if title == "" {
		title = "Support"
	}
	desc := Clamp(p.Description, MaxDesc)
	if desc == "" {
		desc = "Abra um ticket"
	}
	color := p.Color
	if color == 0 {
		color = guildconfig.DefaultColor
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: desc,
		Color:       color,
	}
	if ft := Clamp(p.FooterText, MaxFooter); ft != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: ft, IconURL: p.FooterIcon}
	}
	if p.BannerURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: p.BannerURL}
	}
	if p.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: p.ThumbnailURL}
	}
	return embed
}

// BuildEditorEmbed renders the embed-editor preview from its scratch buffer.
func BuildEditorEmbed(e *guildconfig.EmbedData) *discordgo.MessageEmbed {
	if e == nil {
		e = guildconfig.DefaultEmbed()
	}

	title := Clamp(e.Title, MaxTitle)
	if title == "" {
		title = "Embed de Exemplo"
	}
	desc := Clamp(e.Description, MaxDesc)
	if desc == "" {
		desc = "Use os botões para editar o conteúdo."
	}
	color := e.Color
	if color == 0 {
		color = guildconfig.DefaultColor
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: desc,
		Color:       color,
	}
	if ft := Clamp(e.FooterText, MaxFooter); ft != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: ft, IconURL: strings.TrimSpace(e.FooterIcon)}
	}
	if strings.TrimSpace(e.ImageURL) != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: e.ImageURL}
	}
	if strings.TrimSpace(e.ThumbnailURL) != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.ThumbnailURL}
	}

	fields := e.Fields
	if len(fields) > MaxFields {
		fields = fields[:MaxFields]
	}
	for _, f := range fields {
		name := Clamp(f.Name, MaxFieldName)
		if name == "" {
			name = "Campo"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  Clamp(f.Value, MaxFieldValue),
			Inline: f.Inline,
		})
	}
	return embed
}

// StockLabel renders a product stock count ("-1" is the unlimited sentinel).
func StockLabel(stock int) string {
	if stock == -1 {
		return "Ilimitado"
	}
	return fmt.Sprintf("%d unidades", stock)
}

// PriceLabel renders a product price in the store currency.
func PriceLabel(price float64) string {
	return fmt.Sprintf("R$ %.2f", price)
}

// BuildProductEmbed renders a product listing with price and stock fields.
func BuildProductEmbed(p *guildconfig.ProductDefinition) *discordgo.MessageEmbed {
	if p == nil {
		p = guildconfig.DefaultProduct()
	}

	title := Clamp(p.Title, MaxTitle)
	if title == "" {
		title = "Nome do Produto"
	}
	desc := Clamp(p.Description, MaxDesc)
	if desc == "" {
		desc = "Descrição do produto."
	}
	color := p.Color
	if color == 0 {
		color = guildconfig.DefaultColor
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: desc,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Preço", Value: PriceLabel(p.Price), Inline: true},
			{Name: "Estoque", Value: StockLabel(p.Stock), Inline: true},
		},
	}
	if ft := Clamp(p.FooterText, MaxFooter); ft != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: ft, IconURL: p.FooterIcon}
	}
	if p.BannerURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: p.BannerURL}
	}
	if p.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: p.ThumbnailURL}
	}
	return embed
}

// BuildTicketOpenEmbed renders the first message posted inside a fresh ticket.
func BuildTicketOpenEmbed(userID, userTag, botAvatarURL string, p guildconfig.PanelDefinition, reason string) *discordgo.MessageEmbed {
	if reason == "" {
		reason = "Suporte Geral"
	}
	title := p.Title
	if title == "" {
		title = "Support"
	}
	color := p.Color
	if color == 0 {
		color = guildconfig.DefaultColor
	}

	embed := &discordgo.MessageEmbed{
		Title: Clamp("✅ Ticket Aberto "+title, MaxTitle),
		Description: fmt.Sprintf("Olá <@%s>, seu ticket foi criado com sucesso.\n\n"+
			"Enquanto aguarda, por favor, detalhe seu problema ou dúvida para que nossa equipe possa te ajudar o mais rápido possível.", userID),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👤 Usuário", Value: userTag, Inline: true},
			{Name: "📋 Motivo", Value: Clamp(reason, MaxFieldValue), Inline: true},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if ft := Clamp(p.FooterText, MaxFooter); ft != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: ft, IconURL: p.FooterIcon}
	}
	if p.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: p.ThumbnailURL}
	} else if botAvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: botAvatarURL}
	}
	return embed
}
