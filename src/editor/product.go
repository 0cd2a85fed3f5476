package editor

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/xid"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/panel"
)

// ShowProductEditor opens the product editor over the guild's scratch buffer.
func ShowProductEditor(s *discordgo.Session, i *discordgo.InteractionCreate) {
	p := tempProduct(i.GuildID)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{panel.BuildProductEmbed(p)},
			Components: panel.BuildProductEditorComponents(),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("[Editor] open product editor: %v", err)
	}
}

// tempProduct makes sure the scratch buffer exists and returns a copy of it.
func tempProduct(guildID string) *guildconfig.ProductDefinition {
	guildconfig.Mutate(guildID, func(cfg *guildconfig.GuildConfig) {
		if cfg.TempProduct == nil {
			cfg.TempProduct = guildconfig.DefaultProduct()
		}
	})
	return guildconfig.GetOrCreate(guildID).TempProduct
}

// HandleProductEdit opens the modal for one product field.
func HandleProductEdit(s *discordgo.Session, i *discordgo.InteractionCreate, act Action) {
	p := tempProduct(i.GuildID)

	switch act.Target {
	case "title":
		showModal(s, i, "modal-edit-prod-title", "Editar Título",
			textInput("value", "Título", "", p.Title, discordgo.TextInputShort, true, panel.MaxTitle))
	case "desc":
		showModal(s, i, "modal-edit-prod-desc", "Editar Descrição",
			textInput("value", "Descrição", "", p.Description, discordgo.TextInputParagraph, true, panel.MaxDesc))
	case "color":
		showModal(s, i, "modal-edit-prod-color", "Editar Cor",
			textInput("value", "Cor (hex)", "Ex: 32cd32 ou #32cd32", "", discordgo.TextInputShort, true, 7))
	case "price":
		showModal(s, i, "modal-edit-prod-price", "Editar Preço",
			textInput("value", "Preço", "Ex: 19.99", fmt.Sprintf("%.2f", p.Price), discordgo.TextInputShort, true, 12))
	case "stock":
		showModal(s, i, "modal-edit-prod-stock", "Editar Estoque",
			textInput("value", "Estoque (-1 = ilimitado)", "Ex: 10 ou -1", strconv.Itoa(p.Stock), discordgo.TextInputShort, true, 8))
	case "banner":
		showModal(s, i, "modal-edit-prod-banner", "Editar Banner",
			textInput("value", "URL do Banner", "https://...", p.BannerURL, discordgo.TextInputShort, false, 0))
	case "thumb":
		showModal(s, i, "modal-edit-prod-thumb", "Editar Miniatura",
			textInput("value", "URL da Miniatura", "https://...", p.ThumbnailURL, discordgo.TextInputShort, false, 0))
	case "footer":
		showModal(s, i, "modal-edit-prod-footer", "Editar Footer",
			textInput("value", "Texto do Footer", "", p.FooterText, discordgo.TextInputShort, false, panel.MaxFooter))
	}
}

// HandleProductModal applies a submitted product field and refreshes the
// editor. Price and stock reject malformed numbers without mutating.
func HandleProductModal(s *discordgo.Session, i *discordgo.InteractionCreate, act Action) {
	data := i.ModalSubmitData()
	value := strings.TrimSpace(firstModalValue(data))

	var (
		color, stock int
		price        float64
	)
	switch act.Target {
	case "color":
		v, ok := ParseHexColor(value)
		if !ok {
			guildconfig.AppendFailure("edit-prod-color", userID(i), i.GuildID, "invalid hex color")
			replyEphemeral(s, i, "❌ Cor inválida. Use o formato hexadecimal, ex: `32cd32`.")
			return
		}
		color = v
	case "price":
		v, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
		if err != nil || v < 0 {
			guildconfig.AppendFailure("edit-prod-price", userID(i), i.GuildID, "invalid price")
			replyEphemeral(s, i, "❌ Preço inválido. Use um número, ex: `19.99`.")
			return
		}
		price = v
	case "stock":
		v, err := strconv.Atoi(value)
		if err != nil || v < -1 {
			guildconfig.AppendFailure("edit-prod-stock", userID(i), i.GuildID, "invalid stock")
			replyEphemeral(s, i, "❌ Estoque inválido. Use um inteiro >= 0 ou `-1` para ilimitado.")
			return
		}
		stock = v
	}

	guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
		if cfg.TempProduct == nil {
			cfg.TempProduct = guildconfig.DefaultProduct()
		}
		p := cfg.TempProduct
		switch act.Target {
		case "title":
			p.Title = panel.Clamp(value, panel.MaxTitle)
		case "desc":
			p.Description = panel.Clamp(value, panel.MaxDesc)
		case "color":
			p.Color = color
		case "price":
			p.Price = price
		case "stock":
			p.Stock = stock
		case "banner":
			p.BannerURL = value
		case "thumb":
			p.ThumbnailURL = value
		case "footer":
			p.FooterText = panel.Clamp(value, panel.MaxFooter)
		}
	})

	p := guildconfig.GetOrCreate(i.GuildID).TempProduct
	updateMessage(s, i, panel.BuildProductEmbed(p), panel.BuildProductEditorComponents())
}

// snapshotProduct copies the scratch buffer into the catalog under a fresh
// product ID. Later edits to the buffer never touch the published copy.
func snapshotProduct(cfg *guildconfig.GuildConfig) string {
	if cfg.TempProduct == nil {
		cfg.TempProduct = guildconfig.DefaultProduct()
	}
	id := xid.New().String()
	cfg.Products[id] = *cfg.TempProduct
	return id
}

// HandleSendProduct snapshots the scratch buffer under a fresh product ID and
// posts the listing with its buy button.
func HandleSendProduct(s *discordgo.Session, i *discordgo.InteractionCreate) {
	p := tempProduct(i.GuildID)

	var productID string
	guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
		productID = snapshotProduct(cfg)
	})

	_, err := s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{panel.BuildProductEmbed(p)},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: "product-buy-" + productID,
				Label:    "Comprar",
				Style:    discordgo.SuccessButton,
				Emoji:    &discordgo.ComponentEmoji{Name: "🛒"},
			},
		}}},
	})
	if err != nil {
		log.Printf("[Editor] send product: %v", err)
		replyEphemeral(s, i, "❌ Não consegui publicar o produto neste canal.")
		return
	}
	replyEphemeral(s, i, "✅ Produto publicado com sucesso!")
}
